package onboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcessCompletionPercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		statuses []TaskStatus
		want     int
	}{
		{name: "empty checklist", statuses: nil, want: 0},
		{name: "nothing done", statuses: []TaskStatus{TaskPending, TaskPending}, want: 0},
		{name: "half done", statuses: []TaskStatus{TaskCompleted, TaskPending}, want: 50},
		{name: "in progress does not count", statuses: []TaskStatus{TaskCompleted, TaskInProgress}, want: 50},
		{name: "one of three", statuses: []TaskStatus{TaskCompleted, TaskPending, TaskPending}, want: 33},
		{name: "all done", statuses: []TaskStatus{TaskCompleted, TaskCompleted, TaskCompleted}, want: 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := Process{}
			for _, status := range tt.statuses {
				p.Tasks = append(p.Tasks, Task{Status: status})
			}
			assert.Equal(t, tt.want, p.CompletionPercent())
		})
	}
}
