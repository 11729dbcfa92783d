package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is the closed set of currencies the console supports. Parsing is
// strict: an unrecognized code is an error, never a silent default.
type Currency string

const (
	PKR Currency = "PKR"
	USD Currency = "USD"
)

var ErrUnknownCurrency = errors.New("unknown currency code")

func ParseCurrency(code string) (Currency, error) {
	switch Currency(code) {
	case PKR:
		return PKR, nil
	case USD:
		return USD, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
}

func (c Currency) String() string {
	return string(c)
}

// Format renders amount with the currency symbol, en-US comma grouping and a
// fixed two decimal places. PKR uses "Rs " with a space, USD "$" without.
// Grouping works on the decimal's own digits, so amounts of any magnitude
// format exactly.
func Format(amount decimal.Decimal, cur Currency) (string, error) {
	var symbol string
	switch cur {
	case USD:
		symbol = "$"
	case PKR:
		symbol = "Rs "
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCurrency, cur)
	}

	fixed := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	return symbol + sign + groupThousands(intPart) + "." + fracPart, nil
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
