package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/quizgen/quizgen/internal/database"
	"github.com/quizgen/quizgen/internal/dto"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Live is the root liveness probe.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.SendString("QuizGen backend is running")
}

// Check reports service and database health.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unreachable"
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
	})
}
