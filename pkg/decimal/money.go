package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string.
// Leading "$" and thousands separators are accepted.
func NewMoneyFromString(value string) (Money, error) {
	clean := strings.TrimSpace(value)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// ApplyTaxRate returns the amount left after withholding rate
func (m Money) ApplyTaxRate(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(1).Sub(rate))}
}

// String returns the amount with two decimal places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as "$1,234.56"
func (m Money) Format() string {
	return withSign(m.Decimal, groupThousands(m.Decimal.Abs().StringFixed(2)))
}

// FormatWhole renders the amount rounded to whole dollars as "$1,235"
func (m Money) FormatWhole() string {
	return withSign(m.Decimal.Round(0), groupThousands(m.Decimal.Abs().StringFixed(0)))
}

// Grouped renders the amount rounded to whole dollars with thousands
// separators and no currency symbol, e.g. "2,632"
func (m Money) Grouped() string {
	s := groupThousands(m.Decimal.Abs().StringFixed(0))
	if m.Decimal.Round(0).IsNegative() {
		return "-" + s
	}
	return s
}

func withSign(d decimal.Decimal, body string) string {
	if d.IsNegative() {
		return "-$" + body
	}
	return "$" + body
}

// groupThousands inserts commas into the integer part of an unsigned number
func groupThousands(s string) string {
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return intPart + frac
	}
	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return b.String() + frac
}
