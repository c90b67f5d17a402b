// Package quote keeps a swap form's published quote consistent with its most
// recent input while reserve lookups resolve asynchronously.
package quote

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Autonomanetwork/arcadify-test/internal/pool"
	"github.com/Autonomanetwork/arcadify-test/internal/token"
	"github.com/Autonomanetwork/arcadify-test/pkg/cpamm"
	"github.com/Autonomanetwork/arcadify-test/pkg/display"
)

// DefaultTimeout bounds a single reserve fetch so the form can never sit in
// Computing forever.
const DefaultTimeout = 5 * time.Second

// State is the lifecycle phase of the published quote.
type State int

const (
	// StateIdle: no pair selected or no usable amount entered.
	StateIdle State = iota
	// StateComputing: a request is in flight for the current input.
	StateComputing
	// StateResolved: the published quote matches the latest input.
	StateResolved
	// StateFailed: the latest request errored; Err carries the message.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateComputing:
		return "computing"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the state by name so API clients see "computing"
// rather than an enum ordinal.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Snapshot is one coherent view of the form. Output, Price and Fee are
// display strings in output-token units; they are set only in StateResolved.
type Snapshot struct {
	State  State  `json:"state"`
	FromID string `json:"from"`
	ToID   string `json:"to"`
	Input  string `json:"input"`
	Output string `json:"output"`
	Price  string `json:"price"`
	Fee    string `json:"fee"`
	Err    string `json:"error,omitempty"`
	Busy   bool   `json:"busy"`
}

// Orchestrator owns the request lifecycle for one swap form. Each input
// change issues a request under a fresh sequence number; a result is applied
// only if its number is still the latest when it lands, so the published
// state follows issue order, never arrival order. The mutex makes the
// sequence check and the publication a single step.
type Orchestrator struct {
	logger   *slog.Logger
	registry token.Registry
	provider pool.Provider
	timeout  time.Duration

	mu   sync.Mutex
	seq  uint64
	snap Snapshot
}

// New builds an orchestrator in the Idle state. A non-positive timeout falls
// back to DefaultTimeout.
func New(logger *slog.Logger, registry token.Registry, provider pool.Provider, timeout time.Duration) *Orchestrator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Orchestrator{
		logger:   logger,
		registry: registry,
		provider: provider,
		timeout:  timeout,
	}
}

// Snapshot returns the current published view.
func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.snap
}

// SetPair selects the from/to tokens and recomputes against the current
// amount.
func (o *Orchestrator) SetPair(fromID, toID string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snap.FromID, o.snap.ToID = fromID, toID
	o.recomputeLocked()
}

// SetAmount replaces the entered amount text and recomputes.
func (o *Orchestrator) SetAmount(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snap.Input = text
	o.recomputeLocked()
}

// Update applies pair and amount in one step, issuing a single request.
func (o *Orchestrator) Update(fromID, toID, text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snap.FromID, o.snap.ToID = fromID, toID
	o.snap.Input = text
	o.recomputeLocked()
}

// Flip exchanges the from/to selections and clears both amounts. Reserves
// are direction-specific, so the previous quote is never reused.
func (o *Orchestrator) Flip() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.snap.FromID, o.snap.ToID = o.snap.ToID, o.snap.FromID
	o.snap.Input = ""
	o.recomputeLocked()
}

// recomputeLocked re-evaluates the form after any input change. It always
// bumps the sequence number first, so results for the previous input can no
// longer be applied even if the form goes Idle. The previously displayed
// quote is cleared immediately rather than shown against the new input.
func (o *Orchestrator) recomputeLocked() {
	o.seq++
	o.snap.Output, o.snap.Price, o.snap.Fee, o.snap.Err = "", "", "", ""
	o.snap.Busy = false

	if o.snap.FromID == "" || o.snap.ToID == "" || o.snap.Input == "" {
		o.snap.State = StateIdle
		return
	}

	if o.snap.FromID == o.snap.ToID {
		o.failLocked(pool.ErrPoolUnavailable.Error())
		return
	}

	from, ok := o.registry.ByID(o.snap.FromID)
	if !ok {
		o.failLocked(token.ErrUnknownToken.Error())
		return
	}
	to, ok := o.registry.ByID(o.snap.ToID)
	if !ok {
		o.failLocked(token.ErrUnknownToken.Error())
		return
	}

	// Partial or non-numeric entry is expected while the user types; it
	// clears the output without raising an error.
	amountIn, err := display.ParseAmount(o.snap.Input, from.Decimals)
	if err != nil || amountIn.Sign() <= 0 {
		o.snap.State = StateIdle
		return
	}

	o.snap.State = StateComputing
	o.snap.Busy = true
	go o.run(o.seq, from, to, amountIn)
}

func (o *Orchestrator) failLocked(msg string) {
	o.snap.State = StateFailed
	o.snap.Err = msg
	o.snap.Busy = false
}

// run fetches reserves and computes the quote for one request, then applies
// the result if the request is still the latest. Stale results are dropped
// without touching published state, success or failure.
func (o *Orchestrator) run(seq uint64, from, to token.Token, amountIn *big.Int) {
	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	reserves, err := o.provider.Reserves(ctx, from.ID, to.ID)
	var q cpamm.Quote
	if err == nil {
		q, err = cpamm.Compute(reserves, amountIn)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if seq != o.seq {
		o.logger.Debug("stale quote discarded", "seq", seq, "latest", o.seq, "from", from.ID, "to", to.ID)
		return
	}

	if err != nil {
		msg := err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			msg = "quote request timed out"
		}
		o.logger.Error("quote failed", "from", from.ID, "to", to.ID, "err", err)
		o.failLocked(msg)
		return
	}

	outDec := decimal.NewFromBigInt(q.AmountOut, -to.Decimals)
	inDec := decimal.NewFromBigInt(amountIn, -from.Decimals)

	o.snap.Output = display.Amount(q.AmountOut, to.Decimals)
	o.snap.Price = outDec.Div(inDec).StringFixed(display.AmountDigits)
	o.snap.Fee = display.Amount(q.FeeAmount, to.Decimals)
	o.snap.Err = ""
	o.snap.State = StateResolved
	o.snap.Busy = false
	o.logger.Debug("quote resolved", "from", from.ID, "to", to.ID, "in", amountIn.String(), "out", q.AmountOut.String())
}
