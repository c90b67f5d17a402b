// Package cpamm implements constant-product AMM swap math with a
// basis-point fee taken from the input side.
package cpamm

import (
	"errors"
	"math/big"
)

// BpsDenominator is the fee scale: feeBps of 30 means a 0.30% fee.
const BpsDenominator = 10_000

var (
	ErrNonPositiveAmount = errors.New("amount must be greater than zero")
	ErrEmptyReserves     = errors.New("empty reserves")
	ErrFeeOutOfRange     = errors.New("fee bps out of range")
)

var bpsDen = big.NewInt(BpsDenominator)

// Reserves is a snapshot of a pool oriented for one swap direction.
// In and Out are base units of the respective tokens.
type Reserves struct {
	In     *big.Int
	Out    *big.Int
	FeeBps int64
}

// Quote is the result of a single constant-product quote. AmountOut and
// FeeAmount are base units of the output token. Values are never mutated
// after creation.
type Quote struct {
	AmountOut *big.Int
	FeeAmount *big.Int
}

// AmountOut computes the constant-product output for amountIn given oriented
// reserves and a fee in basis points, writing the result into dst. t1 and t2
// are caller-provided temporaries so hot paths can avoid allocations.
//
//	out = in*(10000-fee)*reserveOut / (reserveIn*10000 + in*(10000-fee))
//
// Division floors, so the caller can never be promised more than the pool
// would pay.
func AmountOut(dst, t1, t2 *big.Int, amountIn, reserveIn, reserveOut *big.Int, feeBps int64) *big.Int {
	// t1 = amountIn * (10000 - feeBps)
	t1.SetInt64(BpsDenominator - feeBps)
	t1.Mul(t1, amountIn)
	// t2 = reserveIn * 10000
	t2.Mul(reserveIn, bpsDen)
	// t2 = t2 + t1  (denominator)
	t2.Add(t2, t1)
	// dst = t1 * reserveOut (numerator)
	dst.Mul(t1, reserveOut)
	// dst = dst / t2  (avoid aliasing z==y)
	return dst.Div(dst, t2)
}

// Compute validates its inputs and returns a full Quote for swapping amountIn
// against the given reserves. Pure: identical arguments always produce an
// identical Quote.
//
// FeeAmount is the input retained by the pool expressed in output-token
// units at the pre-trade reserve ratio, matching the fee line the swap form
// displays. A zero AmountOut for a dust-sized input is a valid quote, not an
// error.
func Compute(reserves Reserves, amountIn *big.Int) (Quote, error) {
	if reserves.FeeBps < 0 || reserves.FeeBps >= BpsDenominator {
		return Quote{}, ErrFeeOutOfRange
	}
	if amountIn == nil || amountIn.Sign() <= 0 {
		return Quote{}, ErrNonPositiveAmount
	}
	if reserves.In == nil || reserves.Out == nil || reserves.In.Sign() == 0 || reserves.Out.Sign() == 0 {
		return Quote{}, ErrEmptyReserves
	}

	var out, t1, t2 big.Int
	AmountOut(&out, &t1, &t2, amountIn, reserves.In, reserves.Out, reserves.FeeBps)

	// feeIn = amountIn - amountIn*(10000-fee)/10000, i.e. the slice of the
	// input the pool keeps.
	effIn := new(big.Int).SetInt64(BpsDenominator - reserves.FeeBps)
	effIn.Mul(effIn, amountIn)
	effIn.Div(effIn, bpsDen)
	feeIn := new(big.Int).Sub(amountIn, effIn)

	// Convert to output units at the spot ratio reserveOut/reserveIn.
	feeOut := new(big.Int).Mul(feeIn, reserves.Out)
	feeOut.Div(feeOut, reserves.In)

	return Quote{AmountOut: &out, FeeAmount: feeOut}, nil
}
