package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/quizgen/quizgen/internal/dto"
	"github.com/quizgen/quizgen/internal/middleware"
	"github.com/quizgen/quizgen/internal/models"
	"github.com/quizgen/quizgen/internal/repositories"
	"gorm.io/datatypes"
)

type AnalyticsHandler struct {
	analytics repositories.AnalyticsRepository
}

func NewAnalyticsHandler(analytics repositories.AnalyticsRepository) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Report stores a telemetry event. Submissions without consent are rejected;
// nothing is persisted for them.
func (h *AnalyticsHandler) Report(c *fiber.Ctx) error {
	var req dto.AnalyticsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	if !req.Consent {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Consent required",
		})
	}

	event := models.AnalyticsEvent{
		UserID:      middleware.OptionalUserID(c),
		AgeRange:    req.AgeRange,
		Country:     req.Country,
		City:        req.City,
		DeviceType:  req.DeviceType,
		ActiveHours: req.ActiveHours,
		Interests:   req.Interests,
	}
	if len(req.Engagement) > 0 {
		event.Engagement = datatypes.JSON(req.Engagement)
	}

	if err := h.analytics.Create(&event); err != nil {
		slog.Error("analytics save failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Database error",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
