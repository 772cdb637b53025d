package cart

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes cart operations over HTTP for the dev harness.
type Handler struct {
	carts *Store
}

// NewHandler builds a cart HTTP handler.
func NewHandler(carts *Store) *Handler {
	return &Handler{carts: carts}
}

type cartResponse struct {
	Entries   []Entry `json:"entries"`
	Total     int64   `json:"total"`
	ItemCount int     `json:"item_count"`
}

func (h *Handler) respond(c *fiber.Ctx) error {
	snap := h.carts.Snapshot()
	entries := make([]Entry, 0, len(snap.Entries))
	for _, e := range snap.Entries {
		entries = append(entries, e)
	}
	return c.Status(http.StatusOK).JSON(cartResponse{
		Entries:   entries,
		Total:     Total(snap),
		ItemCount: ItemCount(snap),
	})
}

// Get returns the cart with its derived totals.
func (h *Handler) Get(c *fiber.Ctx) error {
	return h.respond(c)
}

// AddItem inserts or merges a line entry.
func (h *Handler) AddItem(c *fiber.Ctx) error {
	var entry Entry
	if err := c.BodyParser(&entry); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if entry.Key == "" {
		return fiber.NewError(http.StatusBadRequest, "key is required")
	}

	h.carts.AddItem(entry)
	return h.respond(c)
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateQuantity sets the quantity for one entry; zero or less removes it.
func (h *Handler) UpdateQuantity(c *fiber.Ctx) error {
	var req quantityRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	h.carts.UpdateQuantity(c.Params("key"), req.Quantity)
	return h.respond(c)
}

// RemoveItem deletes one entry.
func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	h.carts.RemoveItem(c.Params("key"))
	return h.respond(c)
}

// Clear empties the cart.
func (h *Handler) Clear(c *fiber.Ctx) error {
	h.carts.Clear()
	return h.respond(c)
}
