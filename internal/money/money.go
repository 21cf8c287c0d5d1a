// Package money implements the exact two-decimal euro amount used
// everywhere in the ledger. An Amount is an immutable count of cents;
// arithmetic never leaves the cent grid, and rounding happens only when
// a scalar multiplication or division produces a fraction of a cent.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = errors.New("money: division by zero")

// Amount is a euro value stored as a count of cents.
type Amount struct {
	cents int64
}

// Zero returns the zero amount.
func Zero() Amount {
	return Amount{}
}

// FromCents builds an Amount from a raw cent count.
func FromCents(cents int64) Amount {
	return Amount{cents: cents}
}

// FromInt builds an Amount from whole euros: FromInt(10) is 10.00.
func FromInt(euros int64) Amount {
	return Amount{cents: euros * 100}
}

// FromFloat builds an Amount from a float, rounding half away from zero
// to the nearest cent.
func FromFloat(f float64) Amount {
	return FromDecimal(decimal.NewFromFloat(f))
}

// FromDecimal builds an Amount from a decimal, rounding to the nearest cent.
func FromDecimal(d decimal.Decimal) Amount {
	return Amount{cents: d.Shift(2).Round(0).IntPart()}
}

// Parse converts text into an Amount. Currency symbols and spacing are
// stripped and a comma decimal separator is accepted ("1 050,50" parses
// as 1050.50). Empty input parses as zero.
func Parse(s string) (Amount, error) {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', ' ', ' ', '€':
			return -1
		case ',':
			return '.'
		}
		return r
	}, strings.TrimSpace(s))
	if clean == "" {
		return Zero(), nil
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Zero(), fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// MustParse is Parse for trusted literals; it panics on error.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Cents returns the raw cent count.
func (a Amount) Cents() int64 {
	return a.cents
}

// Decimal returns the amount as an exact two-decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(a.cents, -2)
}

// Add returns a+b.
func (a Amount) Add(b Amount) Amount {
	return Amount{cents: a.cents + b.cents}
}

// Sub returns a-b.
func (a Amount) Sub(b Amount) Amount {
	return Amount{cents: a.cents - b.cents}
}

// Neg returns -a.
func (a Amount) Neg() Amount {
	return Amount{cents: -a.cents}
}

// Abs returns the absolute value.
func (a Amount) Abs() Amount {
	if a.cents < 0 {
		return Amount{cents: -a.cents}
	}
	return a
}

// Mul multiplies by a plain scalar, rounding the product to the nearest cent.
func (a Amount) Mul(scalar float64) Amount {
	return a.MulDecimal(decimal.NewFromFloat(scalar))
}

// MulDecimal multiplies by a decimal scalar, rounding to the nearest cent.
func (a Amount) MulDecimal(d decimal.Decimal) Amount {
	return Amount{cents: decimal.New(a.cents, 0).Mul(d).Round(0).IntPart()}
}

// Div divides by a scalar, rounding to the nearest cent. A zero divisor
// returns ErrDivisionByZero.
func (a Amount) Div(scalar float64) (Amount, error) {
	if scalar == 0 {
		return Zero(), ErrDivisionByZero
	}
	d := decimal.New(a.cents, 0).DivRound(decimal.NewFromFloat(scalar), 0)
	return Amount{cents: d.IntPart()}, nil
}

// Cmp compares a and b: -1 if a<b, 0 if equal, +1 if a>b.
func (a Amount) Cmp(b Amount) int {
	switch {
	case a.cents < b.cents:
		return -1
	case a.cents > b.cents:
		return 1
	default:
		return 0
	}
}

// Equal reports whether a and b hold the same cent count.
func (a Amount) Equal(b Amount) bool {
	return a.cents == b.cents
}

// LessThan reports a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.cents < b.cents
}

// GreaterThan reports a > b.
func (a Amount) GreaterThan(b Amount) bool {
	return a.cents > b.cents
}

// IsZero reports whether the amount is exactly zero.
func (a Amount) IsZero() bool {
	return a.cents == 0
}

// IsNegative reports whether the amount is below zero.
func (a Amount) IsNegative() bool {
	return a.cents < 0
}

// Min returns the smaller of a and b.
func Min(a, b Amount) Amount {
	if a.cents < b.cents {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Amount) Amount {
	if a.cents > b.cents {
		return a
	}
	return b
}

// String renders the machine form: two decimals, dot separator ("1234.56").
func (a Amount) String() string {
	return a.Decimal().StringFixed(2)
}

// Display renders the French form: two decimals, comma separator ("1234,56").
func (a Amount) Display() string {
	return strings.Replace(a.String(), ".", ",", 1)
}

// MarshalYAML writes the machine string form.
func (a Amount) MarshalYAML() (interface{}, error) {
	return a.String(), nil
}

// UnmarshalYAML accepts anything Parse accepts, plus bare YAML numbers.
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := Parse(value.Value)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
