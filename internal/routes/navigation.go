package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mistrimandi/mistri/internal/routing"
)

// RegisterNavigationRoutes wires the navigation collaborator endpoints used
// to exercise the routing guard.
func RegisterNavigationRoutes(r fiber.Router, h *routing.Handler) {
	r.Get("/navigation", h.Current)
	r.Post("/navigation/visit", h.Visit)
}
