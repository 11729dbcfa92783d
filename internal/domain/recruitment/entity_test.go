package recruitment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageCanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from    Stage
		to      Stage
		allowed bool
	}{
		{StageApplied, StageShortlisted, true},
		{StageApplied, StageInterviewScheduled, false},
		{StageApplied, StageHired, false},
		{StageShortlisted, StageInterviewScheduled, true},
		{StageShortlisted, StageHired, false},
		{StageShortlisted, StageApplied, false},
		{StageInterviewScheduled, StageHired, true},
		{StageInterviewScheduled, StageShortlisted, false},
		{StageHired, StageApplied, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestStageCanTransitionTo_Rejection(t *testing.T) {
	t.Parallel()

	for _, from := range []Stage{StageApplied, StageShortlisted, StageInterviewScheduled} {
		assert.True(t, from.CanTransitionTo(StageRejected), "%s -> rejected", from)
	}

	// Terminal stages stay put.
	assert.False(t, StageHired.CanTransitionTo(StageRejected))
	assert.False(t, StageRejected.CanTransitionTo(StageRejected))
	assert.False(t, StageRejected.CanTransitionTo(StageApplied))
}
