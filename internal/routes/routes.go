package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/quizgen/quizgen/internal/config"
	"github.com/quizgen/quizgen/internal/handlers"
	"github.com/quizgen/quizgen/internal/middleware"
	"github.com/quizgen/quizgen/internal/repositories"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	users repositories.UserRepository,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	accountHandler *handlers.AccountHandler,
	adminHandler *handlers.AdminHandler,
	contactHandler *handlers.ContactHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", healthHandler.Live)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP.
	// Attached per-route because register/login live at the API root.
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/register", authLimiter, authHandler.Register)
	api.Post("/login", authLimiter, authHandler.Login)

	// Protected routes (JWT required) - apply middleware to individual routes
	// so public routes stay unaffected
	api.Get("/profile", middleware.JWTProtected(cfg), profileHandler.Get)
	api.Put("/profile", middleware.JWTProtected(cfg), profileHandler.Update)
	api.Post("/backup", middleware.JWTProtected(cfg), accountHandler.Backup)
	api.Get("/account/usage", middleware.JWTProtected(cfg), accountHandler.Usage)
	api.Post("/class/create", middleware.JWTProtected(cfg), accountHandler.CreateClass)

	// Optional-bearer routes: identity attached when present, anonymous otherwise
	api.Post("/contact", middleware.OptionalJWT(cfg), contactHandler.Submit)
	api.Post("/analytics", middleware.OptionalJWT(cfg), analyticsHandler.Report)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(users, cfg))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
}
