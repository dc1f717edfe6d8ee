package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/quizgen/quizgen/internal/dto"
	"github.com/quizgen/quizgen/internal/middleware"
	"github.com/quizgen/quizgen/internal/models"
	"github.com/quizgen/quizgen/internal/repositories"
)

type ContactHandler struct {
	contacts repositories.ContactRepository
}

func NewContactHandler(contacts repositories.ContactRepository) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit stores a contact-form submission. All fields are optional and the
// user id is attached only when the caller carried a valid token.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid request body",
		})
	}

	contact := models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		UserID:  middleware.OptionalUserID(c),
	}

	if err := h.contacts.Create(&contact); err != nil {
		slog.Error("contact save failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Database error",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
