package verification

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mistrimandi/mistri/internal/identity"
	"github.com/mistrimandi/mistri/internal/notification"
)

// Handler exposes the admin verification queue over HTTP for the dev
// harness. Queue changes keep the admin badge counter in step.
type Handler struct {
	queue    *Queue
	counters *notification.Counters
}

// NewHandler builds a verification HTTP handler.
func NewHandler(queue *Queue, counters *notification.Counters) *Handler {
	return &Handler{queue: queue, counters: counters}
}

// List returns pending submissions, oldest first.
func (h *Handler) List(c *fiber.Ctx) error {
	snap := h.queue.Snapshot()
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"entries": Pending(snap),
		"count":   PendingCount(snap),
	})
}

// Count returns the pending badge count only.
func (h *Handler) Count(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"count": PendingCount(h.queue.Snapshot())})
}

type submitRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// Submit enqueues a worker identity submission.
func (h *Handler) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Phone == "" {
		return fiber.NewError(http.StatusBadRequest, "phone is required")
	}
	role := identity.Role(req.Role)
	if !role.Valid() {
		return fiber.NewError(http.StatusBadRequest, "unknown role")
	}

	entry := h.queue.Submit(req.Phone, req.Name, role)
	h.counters.Increment(notification.KindVerification)
	return c.Status(http.StatusCreated).JSON(entry)
}

// Approve consumes one pending submission.
func (h *Handler) Approve(c *fiber.Ctx) error {
	return h.consume(c, h.queue.Approve, "approved")
}

// Reject consumes one pending submission.
func (h *Handler) Reject(c *fiber.Ctx) error {
	return h.consume(c, h.queue.Reject, "rejected")
}

func (h *Handler) consume(c *fiber.Ctx, take func(string) (Entry, bool), outcome string) error {
	entry, ok := take(c.Params("id"))
	if !ok {
		return fiber.NewError(http.StatusNotFound, "submission not found")
	}

	h.counters.Decrement(notification.KindVerification)
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": outcome, "entry": entry})
}
