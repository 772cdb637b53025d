package notification

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes badge counters over HTTP for the dev harness.
type Handler struct {
	counters *Counters
}

// NewHandler builds a counters HTTP handler.
func NewHandler(counters *Counters) *Handler {
	return &Handler{counters: counters}
}

// Get returns every badge count plus the total.
func (h *Handler) Get(c *fiber.Ctx) error {
	snap := h.counters.Snapshot()
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"counts": snap,
		"total":  Total(snap),
	})
}

// Reset clears the badge count for one kind.
func (h *Handler) Reset(c *fiber.Ctx) error {
	h.counters.Reset(c.Params("kind"))
	return c.Status(http.StatusOK).JSON(fiber.Map{"counts": h.counters.Snapshot()})
}
