// Package pool supplies liquidity-pool reserve snapshots for token pairs.
package pool

import (
	"context"
	"errors"

	"github.com/Autonomanetwork/arcadify-test/pkg/cpamm"
)

// ErrPoolUnavailable indicates no pool backs the requested pair, or the pool
// holds no liquidity.
var ErrPoolUnavailable = errors.New("no pool available for pair")

// Provider fetches the current reserves for an ordered token pair. Results
// are point-in-time snapshots: reserves move with every trade, so callers
// must fetch per quote and never cache.
type Provider interface {
	Reserves(ctx context.Context, tokenInID, tokenOutID string) (cpamm.Reserves, error)
}
