// Package display converts raw token quantities into the strings the
// dashboard renders. Raw amounts are integers scaled by the token's decimals;
// conversion to human decimals happens here and nowhere else.
package display

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount indicates user input that is not a positive decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// AmountDigits is the fixed fractional precision for token amounts.
const AmountDigits = 6

// Amount renders raw base units as a decimal string with six fractional
// digits. Rounding is always toward zero so an amount is never overstated.
// Nil and negative values render as zero.
func Amount(raw *big.Int, decimals int32) string {
	if raw == nil || raw.Sign() < 0 {
		raw = new(big.Int)
	}
	return decimal.NewFromBigInt(raw, -decimals).Truncate(AmountDigits).StringFixed(AmountDigits)
}

// Currency renders raw base units valued at unitPrice as a grouped dollar
// figure, e.g. "5,000,000.00".
func Currency(raw *big.Int, decimals int32, unitPrice decimal.Decimal) string {
	if raw == nil || raw.Sign() < 0 {
		raw = new(big.Int)
	}
	v := decimal.NewFromBigInt(raw, -decimals).Mul(unitPrice)
	return group(v.StringFixed(2))
}

// PercentOfTotal renders value/total as a percentage with one fractional
// digit. A zero total yields "0.0%" rather than a division by zero.
func PercentOfTotal(value, total decimal.Decimal) string {
	if total.IsZero() {
		return "0.0%"
	}
	return value.Div(total).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// HoursMinutes renders a countdown as "7h 59m". Elapsed durations render as
// "0h 0m".
func HoursMinutes(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d.Minutes())
	return fmt.Sprintf("%dh %dm", mins/60, mins%60)
}

// ParseAmount converts user-entered text into base units of a token with the
// given decimals, truncating precision beyond what the token can represent.
// Non-numeric or non-positive text fails with ErrInvalidAmount.
func ParseAmount(text string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return nil, ErrInvalidAmount
	}
	if d.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	return d.Shift(decimals).Truncate(0).BigInt(), nil
}

// group inserts thousands separators into the integer part of a fixed-point
// decimal string.
func group(s string) string {
	intPart, frac, _ := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if neg {
		out = "-" + out
	}
	if frac != "" {
		out += "." + frac
	}
	return out
}
