package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mistrimandi/mistri/internal/notification"
)

// RegisterNotificationRoutes wires badge counter endpoints.
func RegisterNotificationRoutes(r fiber.Router, h *notification.Handler) {
	r.Get("/notifications", h.Get)
	r.Post("/notifications/:kind/reset", h.Reset)
}
