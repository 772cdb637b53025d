package worker

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes worker availability over HTTP for the dev harness.
type Handler struct {
	availability *Store
}

// NewHandler builds an availability HTTP handler.
func NewHandler(availability *Store) *Handler {
	return &Handler{availability: availability}
}

// Get returns the current availability.
func (h *Handler) Get(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": string(h.availability.Status())})
}

// Toggle flips availability and returns the new status.
func (h *Handler) Toggle(c *fiber.Ctx) error {
	next := h.availability.Toggle()
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": string(next)})
}
