package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	cur, err := ParseCurrency("PKR")
	require.NoError(t, err)
	assert.Equal(t, PKR, cur)

	cur, err = ParseCurrency("USD")
	require.NoError(t, err)
	assert.Equal(t, USD, cur)

	for _, code := range []string{"", "pkr", "EUR", "Rs"} {
		_, err := ParseCurrency(code)
		assert.ErrorIs(t, err, ErrUnknownCurrency, "code %q", code)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	cases := []struct {
		amount string
		cur    Currency
		want   string
	}{
		{"1234.5", "USD", "$1,234.50"},
		{"1234.5", "PKR", "Rs 1,234.50"},
		{"0", "USD", "$0.00"},
		{"147000", "PKR", "Rs 147,000.00"},
		{"1000000", "USD", "$1,000,000.00"},
		{"99.999", "USD", "$100.00"},
		{"-1234.5", "USD", "$-1,234.50"},
		{"123", "PKR", "Rs 123.00"},
	}
	for _, c := range cases {
		got, err := Format(decimal.RequireFromString(c.amount), c.cur)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "amount %s %s", c.amount, c.cur)
	}
}

func TestFormat_LargeAmountsExact(t *testing.T) {
	t.Parallel()

	// Amounts past float64's 2^53 integer range must not lose digits.
	got, err := Format(decimal.RequireFromString("12345678901234567.89"), USD)
	require.NoError(t, err)
	assert.Equal(t, "$12,345,678,901,234,567.89", got)

	got, err = Format(decimal.RequireFromString("9007199254740993"), PKR)
	require.NoError(t, err)
	assert.Equal(t, "Rs 9,007,199,254,740,993.00", got)
}

func TestFormat_UnknownCurrency(t *testing.T) {
	t.Parallel()

	_, err := Format(decimal.NewFromInt(10), Currency("EUR"))
	assert.ErrorIs(t, err, ErrUnknownCurrency)
}
