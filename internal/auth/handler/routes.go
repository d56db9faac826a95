package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, d *DetectHandler) {
	app.Post("/api/v1/signup", h.Signup)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/oauth/callback", h.OAuthCallback)

	app.Get("/api/v1/me", h.RequireAuth, h.Me)

	app.Post("/api/v1/voice-detect", d.Analyze)
	app.Get("/api/v1/voice-detect", d.Describe)

	// Admin-only endpoints
	admin := app.Group("/api/v1/admin", h.RequireAuth)
	admin.Get("/signins", h.Signins)
}
