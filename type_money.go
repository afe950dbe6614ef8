package taxes

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// All amounts handled by this package are Brazilian real.
const currencyCode = money.BRL

// Money represents a monetary value in Brazilian real.
//
// The value is kept as an exact decimal for the whole cost-basis
// arithmetic; rounding to cents happens only at presentation
// boundaries, through Monetary.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// currency returns the full BRL currency definition.
func currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, currencyCode).Currency()
}

// String returns the string representation of the money value, in cents.
func (m Money) String() string {
	cur := currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// Monetary returns the value rounded to cents, half up on the decimal
// representation (0.999 -> 1.00, 0.991 -> 0.99). It is idempotent.
func (m Money) Monetary() Money {
	return Money{value: m.value.Round(int32(currency().Fraction))}
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Mul(n Quantity) Money            { return Money{value: m.value.Mul(n.value)} }
func (m Money) Div(n Quantity) Money            { return Money{value: m.value.Div(n.value)} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.Round(int32(currency().Fraction)).MarshalJSON()
}

func (m *Money) UnmarshalJSON(decimalBytes []byte) error {
	return m.value.UnmarshalJSON(decimalBytes)
}
