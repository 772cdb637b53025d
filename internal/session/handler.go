package session

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/mistrimandi/mistri/internal/identity"
)

// Handler exposes the session lifecycle over HTTP for the dev harness.
type Handler struct {
	sessions *Manager
}

// NewHandler builds a session HTTP handler.
func NewHandler(sessions *Manager) *Handler {
	return &Handler{sessions: sessions}
}

type sessionResponse struct {
	State    string             `json:"state"`
	Loading  bool               `json:"loading"`
	Identity *identity.Identity `json:"identity,omitempty"`
}

// Current reports the session snapshot.
func (h *Handler) Current(c *fiber.Ctx) error {
	sess := h.sessions.Current()
	return c.Status(http.StatusOK).JSON(sessionResponse{
		State:    sess.State().String(),
		Loading:  sess.Loading,
		Identity: sess.Identity,
	})
}

type phoneRequest struct {
	Phone string `json:"phone"`
}

// SendOTP issues a one-time code for a registered phone.
func (h *Handler) SendOTP(c *fiber.Ctx) error {
	var req phoneRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Phone == "" {
		return fiber.NewError(http.StatusBadRequest, "phone is required")
	}

	if err := h.sessions.SendOTP(c.UserContext(), req.Phone); err != nil {
		return authError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "otp_sent"})
}

type verifyRequest struct {
	Phone string `json:"phone"`
	Code  string `json:"code"`
}

// VerifyOTP checks the code and establishes the session on success.
func (h *Handler) VerifyOTP(c *fiber.Ctx) error {
	var req verifyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	id, err := h.sessions.VerifyOTP(c.UserContext(), req.Phone, req.Code)
	if err != nil {
		return authError(err)
	}
	return c.Status(http.StatusOK).JSON(sessionResponse{
		State:    StateAuthenticated.String(),
		Identity: &id,
	})
}

// DevLogin is the OTP-skipping path. The route is only registered in builds
// where dev login is enabled.
func (h *Handler) DevLogin(c *fiber.Ctx) error {
	var req phoneRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	id, err := h.sessions.Login(c.UserContext(), req.Phone)
	if err != nil {
		return authError(err)
	}
	return c.Status(http.StatusOK).JSON(sessionResponse{
		State:    StateAuthenticated.String(),
		Identity: &id,
	})
}

// Logout erases the session. Safe to call repeatedly.
func (h *Handler) Logout(c *fiber.Ctx) error {
	if err := h.sessions.Logout(c.UserContext()); err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "logged_out"})
}

func authError(err error) error {
	switch {
	case errors.Is(err, identity.ErrNotRegistered):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrUnknownUser):
		return fiber.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCode):
		return fiber.NewError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrDevLoginDisabled):
		return fiber.NewError(http.StatusForbidden, err.Error())
	default:
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
}
