package pool

import (
	"context"
	"math/big"

	"github.com/Autonomanetwork/arcadify-test/pkg/cpamm"
)

// StaticProvider serves reserves from configured pool definitions. It backs
// the API when no RPC endpoint is configured.
type StaticProvider struct {
	specs []Spec
}

// NewStaticProvider builds a provider over the given pool specs.
func NewStaticProvider(specs []Spec) *StaticProvider {
	return &StaticProvider{specs: specs}
}

// Reserves returns a copy of the configured reserves oriented for the
// requested direction.
func (p *StaticProvider) Reserves(ctx context.Context, tokenInID, tokenOutID string) (cpamm.Reserves, error) {
	if err := ctx.Err(); err != nil {
		return cpamm.Reserves{}, err
	}

	for _, s := range p.specs {
		var in, out *big.Int
		switch {
		case s.Base == tokenInID && s.Quote == tokenOutID:
			in, out = s.ReserveBase, s.ReserveQuote
		case s.Quote == tokenInID && s.Base == tokenOutID:
			in, out = s.ReserveQuote, s.ReserveBase
		default:
			continue
		}
		if in.Sign() == 0 || out.Sign() == 0 {
			return cpamm.Reserves{}, ErrPoolUnavailable
		}
		// Copies keep each quote's snapshot independent of the spec set.
		return cpamm.Reserves{
			In:     new(big.Int).Set(in),
			Out:    new(big.Int).Set(out),
			FeeBps: s.FeeBps,
		}, nil
	}
	return cpamm.Reserves{}, ErrPoolUnavailable
}
