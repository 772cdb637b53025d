package routing

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the navigation collaborator over HTTP so the guard loop is
// observable in the dev harness.
type Handler struct {
	nav   *MemoryNavigator
	guard *Guard
}

// NewHandler builds a navigation HTTP handler.
func NewHandler(nav *MemoryNavigator, guard *Guard) *Handler {
	return &Handler{nav: nav, guard: guard}
}

// Current returns the active screen group.
func (h *Handler) Current(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(fiber.Map{"group": string(h.nav.CurrentGroup())})
}

type visitRequest struct {
	Group string `json:"group"`
}

// Visit simulates a user navigation and lets the guard enforce its rule
// table. The response reports where navigation actually landed.
func (h *Handler) Visit(c *fiber.Ctx) error {
	var req visitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	group := Group(req.Group)
	if !group.Valid() {
		return fiber.NewError(http.StatusBadRequest, "unknown screen group")
	}

	h.nav.Visit(group)
	redirected := h.guard.Apply(c.UserContext())
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"requested":  string(group),
		"group":      string(h.nav.CurrentGroup()),
		"redirected": redirected,
	})
}
