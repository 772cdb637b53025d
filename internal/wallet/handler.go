package wallet

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the wallet projection over HTTP for the dev harness.
type Handler struct {
	wallets *Store
}

// NewHandler builds a wallet HTTP handler.
func NewHandler(wallets *Store) *Handler {
	return &Handler{wallets: wallets}
}

// Get returns the current projection.
func (h *Handler) Get(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(h.wallets.Snapshot())
}

// Replace installs fresh figures. This is the payment collaborator's
// surface, exposed here so the dev harness can simulate it.
func (h *Handler) Replace(c *fiber.Ctx) error {
	var snap Snapshot
	if err := c.BodyParser(&snap); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	h.wallets.Replace(snap)
	return c.Status(http.StatusOK).JSON(h.wallets.Snapshot())
}
