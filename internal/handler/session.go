package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Autonomanetwork/arcadify-test/internal/service"
)

// SessionHandler serves interactive swap sessions. Each session is one
// client's swap form; the session's orchestrator recomputes the quote in the
// background as input changes land.
type SessionHandler struct {
	BaseHandler
	sessions *service.SessionService
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(logger *slog.Logger, sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{
		BaseHandler: BaseHandler{logger: logger},
		sessions:    sessions,
	}
}

// InputRequest is the body shape for PUT /swap/sessions/:id/input.
type InputRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// Create starts a new session.
func (h *SessionHandler) Create() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := h.sessions.Create()
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
	}
}

// Get returns the session's published quote state.
func (h *SessionHandler) Get() fiber.Handler {
	return func(c fiber.Ctx) error {
		snap, err := h.sessions.Snapshot(c.Params("id"))
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(snap)
	}
}

// UpdateInput applies pair and amount changes to the session's form.
func (h *SessionHandler) UpdateInput() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req InputRequest
		if err := c.Bind().Body(&req); err != nil {
			h.logger.Debug("failed to bind request body", "err", err)
			return ErrInvalidRequestBody
		}

		snap, err := h.sessions.Update(c.Params("id"), req.From, req.To, req.Amount)
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(snap)
	}
}

// Flip exchanges the session's from/to selections and clears the amounts.
func (h *SessionHandler) Flip() fiber.Handler {
	return func(c fiber.Ctx) error {
		snap, err := h.sessions.Flip(c.Params("id"))
		if err != nil {
			return h.handleServiceError(err)
		}
		return c.JSON(snap)
	}
}

func (h *SessionHandler) handleServiceError(err error) error {
	switch err {
	case service.ErrSessionNotFound:
		return ErrSessionNotFound
	default:
		h.logger.Error("session operation failed", "err", err)
		return ErrQuoteFailedInternal
	}
}
