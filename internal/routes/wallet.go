package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mistrimandi/mistri/internal/wallet"
)

// RegisterWalletRoutes wires the wallet projection endpoints. PUT is the
// payment collaborator's surface, not a screen's.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler) {
	r.Get("/wallet", h.Get)
	r.Put("/wallet", h.Replace)
}
