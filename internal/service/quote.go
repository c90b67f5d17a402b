package service

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/Autonomanetwork/arcadify-test/internal/pool"
	"github.com/Autonomanetwork/arcadify-test/internal/token"
	"github.com/Autonomanetwork/arcadify-test/pkg/cpamm"
	"github.com/Autonomanetwork/arcadify-test/pkg/display"
)

// QuoteService produces one-shot swap quotes: fresh reserves from the
// provider, constant-product math, display formatting.
type QuoteService struct {
	BaseService
	registry token.Registry
	provider pool.Provider
}

// NewQuoteService constructs a QuoteService.
func NewQuoteService(logger *slog.Logger, registry token.Registry, provider pool.Provider) *QuoteService {
	return &QuoteService{
		BaseService: BaseService{logger: logger},
		registry:    registry,
		provider:    provider,
	}
}

// QuoteResult is a fully formatted quote. Output and Fee are output-token
// amounts; Price is output per one input token.
type QuoteResult struct {
	FromSymbol string `json:"from_symbol"`
	ToSymbol   string `json:"to_symbol"`
	Input      string `json:"input"`
	Output     string `json:"output"`
	Price      string `json:"price"`
	Fee        string `json:"fee"`
}

// Quote validates the pair, fetches a reserve snapshot and computes the
// output for amountText of the from-token.
func (s *QuoteService) Quote(ctx context.Context, fromID, toID, amountText string) (*QuoteResult, error) {
	s.logger.Debug("quoting swap", "from", fromID, "to", toID, "amount", amountText)

	if fromID == toID {
		return nil, ErrSameToken
	}

	from, ok := s.registry.ByID(fromID)
	if !ok {
		return nil, token.ErrUnknownToken
	}
	to, ok := s.registry.ByID(toID)
	if !ok {
		return nil, token.ErrUnknownToken
	}

	amountIn, err := display.ParseAmount(amountText, from.Decimals)
	if err != nil {
		return nil, err
	}
	if amountIn.Sign() <= 0 {
		return nil, display.ErrInvalidAmount
	}

	reserves, err := s.provider.Reserves(ctx, from.ID, to.ID)
	if err != nil {
		return nil, err
	}

	q, err := cpamm.Compute(reserves, amountIn)
	if err != nil {
		return nil, err
	}

	outDec := decimal.NewFromBigInt(q.AmountOut, -to.Decimals)
	inDec := decimal.NewFromBigInt(amountIn, -from.Decimals)

	res := &QuoteResult{
		FromSymbol: from.Symbol,
		ToSymbol:   to.Symbol,
		Input:      display.Amount(amountIn, from.Decimals),
		Output:     display.Amount(q.AmountOut, to.Decimals),
		Price:      outDec.Div(inDec).StringFixed(display.AmountDigits),
		Fee:        display.Amount(q.FeeAmount, to.Decimals),
	}
	s.logger.Debug("quote computed", "from", fromID, "to", toID, "out", res.Output)
	return res, nil
}
