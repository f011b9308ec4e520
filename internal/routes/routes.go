package routes

import (
	"time"

	"github.com/JasminHed/project-final-sub000/internal/handlers"
	"github.com/JasminHed/project-final-sub000/internal/middleware"
	"github.com/JasminHed/project-final-sub000/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	goalHandler *handlers.GoalHandler,
	communityHandler *handlers.CommunityHandler,
	chatHandler *handlers.ChatHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Registration and login get a stricter limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	app.Post("/users", authLimiter, authHandler.Register)
	app.Post("/sessions", authLimiter, authHandler.Login)

	protected := middleware.Protected(authService)

	app.Get("/users/me", protected, authHandler.Me)
	app.Patch("/users/public-status", protected, authHandler.SetPublicStatus)

	app.Post("/goals", protected, goalHandler.Create)
	app.Get("/goals", protected, goalHandler.List)
	app.Patch("/goals/:id", protected, goalHandler.Update)
	app.Post("/goals/:id/share", protected, goalHandler.Share)

	// Community feed reads are public; mutations require auth.
	app.Get("/community-posts", communityHandler.ListPosts)
	app.Post("/community-posts/:id/like", protected, communityHandler.Like)
	app.Post("/community-posts/:id/comments", protected, communityHandler.AddComment)
	app.Delete("/messages/:id", protected, communityHandler.DeleteComment)

	// Chat relay is unauthenticated, matching the observed client behavior.
	app.Post("/api/chat", chatHandler.Relay)
}
