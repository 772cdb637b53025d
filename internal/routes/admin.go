package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mistrimandi/mistri/internal/verification"
)

// RegisterAdminRoutes wires the admin verification queue endpoints.
func RegisterAdminRoutes(r fiber.Router, h *verification.Handler) {
	group := r.Group("/admin/verifications")
	group.Get("/", h.List)
	group.Get("/count", h.Count)
	group.Post("/", h.Submit)
	group.Post("/:id/approve", h.Approve)
	group.Post("/:id/reject", h.Reject)
}
