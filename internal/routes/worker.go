package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mistrimandi/mistri/internal/worker"
)

// RegisterWorkerRoutes wires worker availability endpoints.
func RegisterWorkerRoutes(r fiber.Router, h *worker.Handler) {
	r.Get("/worker/availability", h.Get)
	r.Post("/worker/availability/toggle", h.Toggle)
}
