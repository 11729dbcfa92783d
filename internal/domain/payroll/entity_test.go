package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusDraft, StatusProcessed, true},
		{StatusDraft, StatusCancelled, true},
		{StatusDraft, StatusPaid, false},
		{StatusProcessed, StatusPaid, true},
		{StatusProcessed, StatusCancelled, true},
		{StatusProcessed, StatusDraft, false},
		{StatusPaid, StatusCancelled, false},
		{StatusPaid, StatusDraft, false},
		{StatusCancelled, StatusProcessed, false},
		{StatusCancelled, StatusDraft, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
