package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mistrimandi/mistri/internal/cart"
)

// RegisterCartRoutes wires cart endpoints.
func RegisterCartRoutes(r fiber.Router, h *cart.Handler) {
	r.Get("/cart", h.Get)
	r.Post("/cart/items", h.AddItem)
	r.Patch("/cart/items/:key", h.UpdateQuantity)
	r.Delete("/cart/items/:key", h.RemoveItem)
	r.Delete("/cart", h.Clear)
}
