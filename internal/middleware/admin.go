package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/quizgen/quizgen/internal/config"
	"github.com/quizgen/quizgen/internal/dto"
	"github.com/quizgen/quizgen/internal/repositories"
)

// AdminRequired allows callers whose email is in the configured admin list or
// whose user row carries the admin role. It runs after JWTProtected.
func AdminRequired(users repositories.UserRepository, cfg *config.Config) fiber.Handler {
	adminEmails := parseCSV(cfg.AdminEmails)

	return func(c *fiber.Ctx) error {
		userID, err := CurrentUserID(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Success: false, Error: "Not authenticated",
			})
		}

		user, err := users.ByID(userID)
		if err == nil {
			if contains(adminEmails, user.Email) || user.Role == "admin" {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Success: false, Error: "Admin only",
		})
	}
}

func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func contains(list []string, val string) bool {
	for _, item := range list {
		if item == val {
			return true
		}
	}
	return false
}
