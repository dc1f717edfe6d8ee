package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// CurrentUserID extracts the authenticated user's id from JWT claims in the
// Fiber context.
func CurrentUserID(c *fiber.Ctx) (uint, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return 0, errors.New("no token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return 0, errors.New("missing userId claim")
	}

	return uint(userID), nil
}

// OptionalUserID returns the caller's id when a valid token was attached and
// nil for anonymous requests.
func OptionalUserID(c *fiber.Ctx) *uint {
	id, err := CurrentUserID(c)
	if err != nil {
		return nil
	}
	return &id
}
