package service

import (
	"context"
	"io"
	"log/slog"
	"math/big"
	"testing"

	"github.com/Autonomanetwork/arcadify-test/internal/pool"
	"github.com/Autonomanetwork/arcadify-test/internal/token"
	"github.com/Autonomanetwork/arcadify-test/pkg/display"
)

const (
	arcID = "ArcadMint1111111111111111111111111111111111"
	usdID = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	solID = "So11111111111111111111111111111111111111112"
)

type fakeRegistry map[string]token.Token

func (r fakeRegistry) List() []token.Token {
	out := make([]token.Token, 0, len(r))
	for _, t := range r {
		out = append(out, t)
	}
	return out
}

func (r fakeRegistry) ByID(id string) (token.Token, bool) {
	t, ok := r[id]
	return t, ok
}

func testRegistry() fakeRegistry {
	return fakeRegistry{
		arcID: {ID: arcID, Symbol: "ARCAD", Decimals: 6},
		usdID: {ID: usdID, Symbol: "USDC", Decimals: 6},
		solID: {ID: solID, Symbol: "SOL", Decimals: 9},
	}
}

func testProvider() pool.Provider {
	return pool.NewStaticProvider([]pool.Spec{{
		Base:         arcID,
		Quote:        usdID,
		ReserveBase:  big.NewInt(1_000_000),
		ReserveQuote: big.NewInt(500_000),
		FeeBps:       30,
	}})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQuoteService_Quote(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(discardLogger(), testRegistry(), testProvider())

	res, err := svc.Quote(context.Background(), arcID, usdID, "0.001")
	if err != nil {
		t.Fatalf("Quote error: %v", err)
	}
	if res.FromSymbol != "ARCAD" || res.ToSymbol != "USDC" {
		t.Fatalf("unexpected symbols: %+v", res)
	}
	if res.Output != "0.000498" {
		t.Fatalf("unexpected output: %q", res.Output)
	}
	if res.Price != "0.498000" {
		t.Fatalf("unexpected price: %q", res.Price)
	}
	if res.Fee != "0.000001" {
		t.Fatalf("unexpected fee: %q", res.Fee)
	}
}

func TestQuoteService_SameToken(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(discardLogger(), testRegistry(), testProvider())

	if _, err := svc.Quote(context.Background(), arcID, arcID, "1"); err != ErrSameToken {
		t.Fatalf("expected ErrSameToken, got %v", err)
	}
}

func TestQuoteService_UnknownToken(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(discardLogger(), testRegistry(), testProvider())

	if _, err := svc.Quote(context.Background(), "missing", usdID, "1"); err != token.ErrUnknownToken {
		t.Fatalf("expected ErrUnknownToken, got %v", err)
	}
	if _, err := svc.Quote(context.Background(), arcID, "missing", "1"); err != token.ErrUnknownToken {
		t.Fatalf("expected ErrUnknownToken, got %v", err)
	}
}

func TestQuoteService_InvalidAmount(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(discardLogger(), testRegistry(), testProvider())

	for _, bad := range []string{"", "abc", "0", "-1", "0.0000001"} {
		if _, err := svc.Quote(context.Background(), arcID, usdID, bad); err != display.ErrInvalidAmount {
			t.Fatalf("amount %q: expected ErrInvalidAmount, got %v", bad, err)
		}
	}
}

func TestQuoteService_PoolUnavailable(t *testing.T) {
	t.Parallel()

	svc := NewQuoteService(discardLogger(), testRegistry(), testProvider())

	if _, err := svc.Quote(context.Background(), arcID, solID, "1"); err != pool.ErrPoolUnavailable {
		t.Fatalf("expected ErrPoolUnavailable, got %v", err)
	}
}
