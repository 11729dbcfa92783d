package timeutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Parallel()

	cases := []struct {
		clock string
		want  int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"17:30", 1050},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := ParseClock(c.clock)
		require.NoError(t, err, c.clock)
		assert.Equal(t, c.want, got, c.clock)
	}

	for _, clock := range []string{"", "9:00", "24:00", "09:60", "0900", "ab:cd"} {
		_, err := ParseClock(clock)
		assert.ErrorIs(t, err, ErrInvalidClock, "clock %q", clock)
	}
}

func TestWorkedHours(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, out string
		want    string
	}{
		{"09:00", "17:30", "8.5"},
		{"09:00", "17:00", "8"},
		{"09:15", "09:16", "0.02"},
		{"00:00", "23:59", "23.98"},
		{"", "17:00", "0"},
		{"09:00", "", "0"},
		{"", "", "0"},
	}
	for _, c := range cases {
		got, err := WorkedHours(c.in, c.out)
		require.NoError(t, err, "%s-%s", c.in, c.out)
		assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
			"WorkedHours(%s, %s) = %s, want %s", c.in, c.out, got, c.want)
	}
}

func TestWorkedHours_CheckOutBeforeCheckIn(t *testing.T) {
	t.Parallel()

	_, err := WorkedHours("17:00", "09:00")
	assert.ErrorIs(t, err, ErrCheckOutBeforeCheckIn)

	// Equal times are rejected too.
	_, err = WorkedHours("09:00", "09:00")
	assert.ErrorIs(t, err, ErrCheckOutBeforeCheckIn)
}

func TestDaysInclusive(t *testing.T) {
	t.Parallel()

	day := func(value string) time.Time {
		parsed, err := time.Parse("2006-01-02", value)
		require.NoError(t, err)
		return parsed
	}

	cases := []struct {
		start, end string
		want       int
	}{
		{"2024-01-01", "2024-01-01", 1},
		{"2024-01-01", "2024-01-05", 5},
		{"2024-02-28", "2024-03-01", 3}, // leap year
		{"2024-12-30", "2025-01-02", 4},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DaysInclusive(day(c.start), day(c.end)),
			"%s to %s", c.start, c.end)
	}
}

func TestShiftWindow(t *testing.T) {
	t.Parallel()

	window, err := NewShiftWindow("09:00", "17:00", decimal.NewFromInt(8))
	require.NoError(t, err)

	assert.False(t, window.IsLate("09:00"))
	assert.True(t, window.IsLate("09:01"))
	assert.False(t, window.IsLate(""))

	assert.False(t, window.IsEarlyLeave("17:00"))
	assert.True(t, window.IsEarlyLeave("16:59"))
	assert.False(t, window.IsEarlyLeave(""))

	assert.True(t, window.OvertimeHours(decimal.RequireFromString("9.5")).Equal(decimal.RequireFromString("1.5")))
	assert.True(t, window.OvertimeHours(decimal.NewFromInt(8)).IsZero())
	assert.True(t, window.OvertimeHours(decimal.NewFromInt(4)).IsZero())
}

func TestNewShiftWindow_Invalid(t *testing.T) {
	t.Parallel()

	_, err := NewShiftWindow("1700", "09:00", decimal.NewFromInt(8))
	assert.Error(t, err)

	_, err = NewShiftWindow("17:00", "09:00", decimal.NewFromInt(8))
	assert.Error(t, err)
}
