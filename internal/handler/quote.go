package handler

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/Autonomanetwork/arcadify-test/internal/pool"
	"github.com/Autonomanetwork/arcadify-test/internal/service"
	"github.com/Autonomanetwork/arcadify-test/internal/token"
	"github.com/Autonomanetwork/arcadify-test/pkg/display"
)

// QuoteHandler serves one-shot swap quotes.
type QuoteHandler struct {
	BaseHandler
	service *service.QuoteService
}

// NewQuoteHandler constructs a QuoteHandler.
func NewQuoteHandler(logger *slog.Logger, svc *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// QuoteRequest is the query shape for GET /swap/quote.
type QuoteRequest struct {
	From   string `query:"from" json:"from"`
	To     string `query:"to" json:"to"`
	Amount string `query:"amount" json:"amount"`
}

func (h *QuoteHandler) Handle() fiber.Handler {
	return func(c fiber.Ctx) error {
		var req QuoteRequest
		if err := c.Bind().Query(&req); err != nil {
			h.logger.Debug("failed to bind query parameters", "err", err)
			return ErrInvalidQueryParameters
		}

		if req.From == "" {
			return NewTokenRequired("from")
		}
		if req.To == "" {
			return NewTokenRequired("to")
		}
		if req.Amount == "" {
			return ErrAmountRequired
		}

		res, err := h.service.Quote(context.Background(), req.From, req.To, req.Amount)
		if err != nil {
			return h.handleServiceError(err)
		}

		h.logger.Debug("quote served", "from", req.From, "to", req.To, "out", res.Output)
		return c.JSON(res)
	}
}

func (h *QuoteHandler) handleServiceError(err error) error {
	switch err {
	case service.ErrSameToken:
		return ErrSameTokenBadRequest
	case token.ErrUnknownToken:
		return ErrUnknownTokenBadRequest
	case display.ErrInvalidAmount:
		return ErrInvalidAmountBadRequest
	case pool.ErrPoolUnavailable:
		return ErrPoolUnavailableBadRequest
	default:
		h.logger.Error("service quote failed", "err", err)
		return ErrQuoteFailedInternal
	}
}
