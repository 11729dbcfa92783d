package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidClock          = errors.New("invalid clock time, expected HH:MM")
	ErrCheckOutBeforeCheckIn = errors.New("check-out time must be after check-in time")
)

// ParseClock converts a 24h "HH:MM" string to minutes since midnight.
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, clock)
	}

	return hour*60 + minute, nil
}

// WorkedHours returns the elapsed time between two clock strings as decimal
// hours rounded to two places. A missing side yields 0.00; a check-out at or
// before check-in is rejected rather than producing a negative duration.
func WorkedHours(checkIn, checkOut string) (decimal.Decimal, error) {
	if checkIn == "" || checkOut == "" {
		return decimal.Zero, nil
	}

	inMinutes, err := ParseClock(checkIn)
	if err != nil {
		return decimal.Zero, err
	}
	outMinutes, err := ParseClock(checkOut)
	if err != nil {
		return decimal.Zero, err
	}

	if outMinutes <= inMinutes {
		return decimal.Zero, ErrCheckOutBeforeCheckIn
	}

	return decimal.NewFromInt(int64(outMinutes - inMinutes)).
		Div(decimal.NewFromInt(60)).
		Round(2), nil
}

// DaysInclusive counts calendar days between start and end, both endpoints
// included. Callers guarantee end >= start; time-of-day is ignored.
func DaysInclusive(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}

// ShiftWindow is the nominal working window attendance is judged against.
type ShiftWindow struct {
	StartMinutes  int
	EndMinutes    int
	StandardHours decimal.Decimal
}

// NewShiftWindow parses shift boundaries from "HH:MM" clock strings.
func NewShiftWindow(start, end string, standardHours decimal.Decimal) (ShiftWindow, error) {
	startMinutes, err := ParseClock(start)
	if err != nil {
		return ShiftWindow{}, fmt.Errorf("shift start: %w", err)
	}
	endMinutes, err := ParseClock(end)
	if err != nil {
		return ShiftWindow{}, fmt.Errorf("shift end: %w", err)
	}
	if endMinutes <= startMinutes {
		return ShiftWindow{}, errors.New("shift end must be after shift start")
	}
	return ShiftWindow{
		StartMinutes:  startMinutes,
		EndMinutes:    endMinutes,
		StandardHours: standardHours,
	}, nil
}

// IsLate reports whether a check-in falls after the shift start.
func (w ShiftWindow) IsLate(checkIn string) bool {
	if checkIn == "" {
		return false
	}
	minutes, err := ParseClock(checkIn)
	if err != nil {
		return false
	}
	return minutes > w.StartMinutes
}

// IsEarlyLeave reports whether a check-out falls before the shift end.
func (w ShiftWindow) IsEarlyLeave(checkOut string) bool {
	if checkOut == "" {
		return false
	}
	minutes, err := ParseClock(checkOut)
	if err != nil {
		return false
	}
	return minutes < w.EndMinutes
}

// OvertimeHours returns hours worked beyond the standard shift, never negative.
func (w ShiftWindow) OvertimeHours(totalHours decimal.Decimal) decimal.Decimal {
	overtime := totalHours.Sub(w.StandardHours)
	if overtime.IsNegative() {
		return decimal.Zero
	}
	return overtime.Round(2)
}
