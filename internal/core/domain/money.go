package domain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Money is an amount in minor units (cents). All settlement arithmetic is
// done on this type; decimal is only used at the parsing/printing boundary.
type Money int64

// MinorUnitScale is the number of fractional digits carried by Money.
const MinorUnitScale = 2

// Cents builds a Money from a minor-unit count.
func Cents(c int64) Money {
	return Money(c)
}

// ParseMoney parses a base-10 string such as "33.34".
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %s is not a decimal number", ErrInvalidArgument, quoteAmount(s))
	}
	m, err := MoneyFromDecimal(d)
	if err != nil {
		return 0, fmt.Errorf("amount %s: %w", quoteAmount(s), err)
	}
	return m, nil
}

// MustParseMoney is ParseMoney for constants and tests.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

const (
	// int64 cents hold at most 19 digits, so any non-zero coefficient with a
	// larger exponent is out of range.
	maxAmountExponent = 18
	// Smallest exponent accepted before shifting; longer fractions are rejected
	// without expanding them.
	minAmountExponent = -(MinorUnitScale + 18)
	// Coefficients wider than this cannot fit in int64 cents at any accepted exponent.
	maxCoefficientBits = 128

	maxQuotedAmount = 32
)

// MoneyFromDecimal converts d to minor units. It rejects values with more than
// two fractional digits and values that do not fit in int64 cents. The
// exponent is checked before any expansion so that inputs such as 1e99999999
// are refused in constant time.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsZero() {
		return 0, nil
	}
	exp := d.Exponent()
	switch {
	case exp > maxAmountExponent:
		return 0, fmt.Errorf("%w: out of range", ErrInvalidArgument)
	case exp < minAmountExponent:
		return 0, fmt.Errorf("%w: more than %d decimal places", ErrInvalidArgument, MinorUnitScale)
	case d.Coefficient().BitLen() > maxCoefficientBits:
		return 0, fmt.Errorf("%w: out of range", ErrInvalidArgument)
	}

	shifted := d.Shift(MinorUnitScale)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("%w: more than %d decimal places", ErrInvalidArgument, MinorUnitScale)
	}
	bi := shifted.BigInt()
	if !bi.IsInt64() {
		return 0, fmt.Errorf("%w: out of range", ErrInvalidArgument)
	}
	return Money(bi.Int64()), nil
}

// quoteAmount quotes raw client input for error messages, truncated.
func quoteAmount(raw string) string {
	if len(raw) > maxQuotedAmount {
		raw = raw[:maxQuotedAmount] + "..."
	}
	return strconv.Quote(raw)
}

// Decimal returns the amount as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -MinorUnitScale)
}

// Cents returns the raw minor-unit count.
func (m Money) Cents() int64 {
	return int64(m)
}

func (m Money) String() string {
	return m.Decimal().StringFixed(MinorUnitScale)
}

// IsPositive reports whether m > 0.
func (m Money) IsPositive() bool { return m > 0 }

// IsNegative reports whether m < 0.
func (m Money) IsNegative() bool { return m < 0 }

// AddChecked returns m+o, or false if the sum overflows int64.
func (m Money) AddChecked(o Money) (Money, bool) {
	if o > 0 && m > math.MaxInt64-o {
		return 0, false
	}
	if o < 0 && m < math.MinInt64-o {
		return 0, false
	}
	return m + o, true
}

// MarshalJSON writes the amount as a JSON number with two fractional digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string. null and ""
// decode to zero, matching a blank payment row on the form.
func (m *Money) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		*m = 0
		return nil
	}

	raw := quoteAmount(string(bytes.Trim(trimmed, `"`)))
	var d decimal.Decimal
	if err := d.UnmarshalJSON(trimmed); err != nil {
		return fmt.Errorf("%w: amount %s is not a decimal number", ErrInvalidArgument, raw)
	}
	v, err := MoneyFromDecimal(d)
	if err != nil {
		return fmt.Errorf("amount %s: %w", raw, err)
	}
	*m = v
	return nil
}
