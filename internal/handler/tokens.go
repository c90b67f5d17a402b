package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Autonomanetwork/arcadify-test/internal/token"
)

// TokensHandler serves the tradable-token catalog.
type TokensHandler struct {
	BaseHandler
	registry token.Registry
}

// NewTokensHandler constructs a TokensHandler.
func NewTokensHandler(logger *slog.Logger, registry token.Registry) *TokensHandler {
	return &TokensHandler{
		BaseHandler: BaseHandler{logger: logger},
		registry:    registry,
	}
}

// Handle returns the full catalog. An empty catalog means the registry never
// loaded, which the swap form shows as a full-panel error.
func (h *TokensHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		list := h.registry.List()
		if len(list) == 0 {
			return ErrRegistryUnavailable
		}
		return c.JSON(fiber.Map{"tokens": list})
	}
}
