package handlers

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quizgen/quizgen/internal/dto"
	"github.com/quizgen/quizgen/internal/repositories"
)

type AdminHandler struct {
	users repositories.UserRepository
}

func NewAdminHandler(users repositories.UserRepository) *AdminHandler {
	return &AdminHandler{users: users}
}

// ListUsers returns all users' public fields.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.users.List()
	if err != nil {
		slog.Error("user list failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Server error",
		})
	}

	resp := dto.UsersResponse{Success: true, Users: make([]dto.UserResponse, 0, len(users))}
	for i := range users {
		resp.Users = append(resp.Users, publicUser(&users[i]))
	}
	return c.JSON(resp)
}

// DeleteUser removes a user by numeric id, unconditionally.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Success: false, Error: "Invalid user id",
		})
	}

	if err := h.users.Delete(uint(id)); err != nil {
		slog.Error("user delete failed", "error", err, "user_id", id)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Success: false, Error: "Server error",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
