package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/quizgen/quizgen/internal/dto"
	"github.com/quizgen/quizgen/internal/middleware"
	"github.com/quizgen/quizgen/internal/services"
)

// AccountHandler serves backup ingestion, usage reporting and class section
// creation.
type AccountHandler struct {
	usageService *services.UsageService
	classService *services.ClassService
}

func NewAccountHandler(usageService *services.UsageService, classService *services.ClassService) *AccountHandler {
	return &AccountHandler{usageService: usageService, classService: classService}
}

func (h *AccountHandler) Backup(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authenticated",
		})
	}

	var req dto.BackupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	added, err := h.usageService.IngestBackup(userID, &req)
	if err != nil {
		slog.Error("backup save failed", "error", err, "user_id", userID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Database error",
		})
	}

	return c.JSON(dto.BackupResponse{Success: true, AddedBytes: added})
}

func (h *AccountHandler) Usage(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authenticated",
		})
	}

	usage, err := h.usageService.GetUsage(userID)
	if err != nil {
		slog.Error("usage fetch failed", "error", err, "user_id", userID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Database error",
		})
	}

	return c.JSON(dto.UsageResponse{Success: true, Usage: usage})
}

func (h *AccountHandler) CreateClass(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Success: false, Error: "Not authenticated",
		})
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Name required",
		})
	}

	section, err := h.classService.CreateSection(userID, req.Name)
	if err != nil {
		if errors.Is(err, services.ErrPlanLimit) {
			return c.Status(fiber.StatusPaymentRequired).JSON(dto.ErrorResponse{
				Success: false, Error: "Plan limit reached; please upgrade",
			})
		}
		slog.Error("class create failed", "error", err, "user_id", userID)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Server error",
		})
	}

	return c.JSON(dto.CreateClassResponse{
		Success: true,
		Section: dto.ClassSectionResponse{
			ID:        section.ID,
			OwnerID:   section.OwnerID,
			Name:      section.Name,
			CreatedAt: section.CreatedAt,
		},
	})
}
