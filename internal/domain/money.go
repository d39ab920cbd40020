package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MaxAmount bounds every balance and amount: the largest value a 96-bit decimal
// mantissa can carry. decimal.Decimal itself is unbounded, so the bound is enforced
// by CheckedAdd and CheckedSub.
var MaxAmount = decimal.RequireFromString("79228162514264337593543950335")

// AmountScale is the number of fractional digits used when rendering amounts.
const AmountScale = 4

// MaxScale is the largest number of fractional digits an input amount may carry.
const MaxScale = 28

// ParseAmount parses an input amount. Amounts outside [-MaxAmount, MaxAmount] or
// with more than MaxScale fractional digits are malformed.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount: %v", ErrMalformedRecord, err)
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}

	// The exponent must be bounded before any comparison: comparing rescales
	// both operands to the smaller exponent.
	if exp := d.Exponent(); exp < -MaxScale || exp > MaxScale {
		return decimal.Zero, fmt.Errorf("%w: amount %q out of range", ErrMalformedRecord, s)
	}
	if d.Abs().GreaterThan(MaxAmount) {
		return decimal.Zero, fmt.Errorf("%w: amount %q out of range", ErrMalformedRecord, s)
	}

	return d, nil
}

// CheckedAdd returns a+b, or ErrOverflow / ErrUnderflow if the sum leaves
// [-MaxAmount, MaxAmount].
func CheckedAdd(a, b decimal.Decimal) (decimal.Decimal, error) {
	return bounded(a.Add(b))
}

// CheckedSub returns a-b, or ErrOverflow / ErrUnderflow if the difference leaves
// [-MaxAmount, MaxAmount].
func CheckedSub(a, b decimal.Decimal) (decimal.Decimal, error) {
	return bounded(a.Sub(b))
}

func bounded(d decimal.Decimal) (decimal.Decimal, error) {
	if d.GreaterThan(MaxAmount) {
		return decimal.Zero, ErrOverflow
	}
	if d.LessThan(MaxAmount.Neg()) {
		return decimal.Zero, ErrUnderflow
	}
	return d, nil
}

// FormatAmount renders an amount with AmountScale fractional digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(AmountScale)
}
