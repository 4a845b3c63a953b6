package tickerwatch

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a price observation: a decimal amount and an optional
// currency code. Quote services do not always report a currency, so the empty
// code is valid and simply renders without a symbol.
type Money struct {
	value decimal.Decimal
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	}
	return decimal.Decimal{}
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Amount returns the decimal value.
func (m Money) Amount() decimal.Decimal { return m.value }

// Currency returns the currency code, or "" when the quote carried none.
func (m Money) Currency() string { return m.cur }

// StringFixed returns the plain two-decimal representation, the format used in
// tables and CSV exports.
func (m Money) StringFixed() string { return m.value.StringFixed(2) }

// String returns the currency-aware representation (e.g. "$150.00"), falling
// back to the plain two-decimal form when no currency is known.
func (m Money) String() string {
	if m.cur == "" {
		return m.StringFixed()
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
