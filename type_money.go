package cruiseledger

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
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
	case decimal.Decimal:
		return v
	}
	return decimal.Decimal{}
}

// USD is shorthand for M(value, "USD"), the only currency spend sources use.
func USD[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return M(value, money.USD)
}

// amountCleaner strips currency symbols and thousands separators.
var amountCleaner = strings.NewReplacer("$", "", ",", "", " ", "")

// ParseAmount parses a monetary string like "$1,234.50" into Money.
// An empty string yields an unset Money and no error.
func ParseAmount(s, currency string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, nil
	}
	d, err := decimal.NewFromString(amountCleaner.Replace(s))
	if err != nil {
		return Money{}, err
	}
	return Money{value: d, cur: currency}, nil
}

// IsSet reports whether the value carries a currency, i.e. was ever parsed or
// constructed. The zero Money means "no value", not "zero dollars".
func (m Money) IsSet() bool { return m.cur != "" }

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation of the money value.
func (m Money) String() string {
	if !m.IsSet() {
		return "-"
	}
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Plain returns the bare decimal representation, the form the codec persists.
func (m Money) Plain() string {
	if !m.IsSet() {
		return ""
	}
	return m.value.String()
}

// Simple wrappers around decimal comparisons.

func (m Money) Currency() string           { return m.cur }
func (m Money) Equal(n Money) bool         { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool               { return m.value.IsZero() }
func (m Money) IsPositive() bool           { return m.value.IsPositive() }
func (m Money) IsNegative() bool           { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool      { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool   { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                 { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Abs() Money                 { return Money{value: m.value.Abs(), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch" + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// FloorUnits returns how many whole multiples of n fit in the value.
func (m Money) FloorUnits(n int64) int64 {
	return m.value.Div(decimal.NewFromInt(n)).Floor().IntPart()
}

// RoundedUnits returns the value rounded to the nearest whole currency unit.
func (m Money) RoundedUnits() int64 { return m.value.Round(0).IntPart() }

// AsFloat converts to float64 for ratio metrics; sums stay exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// MarshalJSON emits the bare decimal value; unset Money emits null.
func (m Money) MarshalJSON() ([]byte, error) {
	if !m.IsSet() {
		return []byte("null"), nil
	}
	return []byte(m.value.String()), nil
}

// UnmarshalJSON accepts a number, a monetary string, or null, in USD.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "null" || s == "" {
		*m = Money{}
		return nil
	}
	parsed, err := ParseAmount(s, money.USD)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

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
