package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mistrimandi/mistri/internal/session"
)

// RegisterAuthRoutes wires session lifecycle endpoints. The dev-login bypass
// route only exists when the flag is on; disabled builds 404 it.
func RegisterAuthRoutes(r fiber.Router, h *session.Handler, rateLimiter fiber.Handler, devLogin bool) {
	r.Get("/session", h.Current)

	group := r.Group("/auth")
	if rateLimiter != nil {
		group.Post("/otp/send", rateLimiter, h.SendOTP)
	} else {
		group.Post("/otp/send", h.SendOTP)
	}
	group.Post("/otp/verify", h.VerifyOTP)
	group.Post("/logout", h.Logout)

	if devLogin {
		group.Post("/dev-login", h.DevLogin)
	}
}
