package leave

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/hr-backend-go/internal/pkg/validator"
)

func TestUpsertRequest_ValidateOK(t *testing.T) {
	t.Parallel()

	req := UpsertRequest{
		EmployeeID: "emp-1",
		Type:       "annual_leave",
		StartDate:  "2026-04-06",
		EndDate:    "2026-04-10",
		Reason:     "Family trip out of the city",
	}
	assert.NoError(t, req.Validate())

	// A single-day application has the same start and end date.
	req.EndDate = req.StartDate
	assert.NoError(t, req.Validate())
}

func TestUpsertRequest_Validate(t *testing.T) {
	t.Parallel()

	base := UpsertRequest{
		EmployeeID: "emp-1",
		Type:       "sick_leave",
		StartDate:  "2026-04-06",
		EndDate:    "2026-04-08",
		Reason:     "Down with the flu, doctor advised rest",
	}

	tests := []struct {
		name   string
		mutate func(r *UpsertRequest)
		field  string
	}{
		{
			name:   "missing employee",
			mutate: func(r *UpsertRequest) { r.EmployeeID = " " },
			field:  "employee_id",
		},
		{
			name:   "unknown leave type",
			mutate: func(r *UpsertRequest) { r.Type = "sabbatical" },
			field:  "leave_type",
		},
		{
			name:   "malformed start date",
			mutate: func(r *UpsertRequest) { r.StartDate = "06-04-2026" },
			field:  "start_date",
		},
		{
			name:   "end date before start date",
			mutate: func(r *UpsertRequest) { r.EndDate = "2026-04-05" },
			field:  "end_date",
		},
		{
			name:   "reason too short",
			mutate: func(r *UpsertRequest) { r.Reason = "sick" },
			field:  "reason",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := base
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Contains(t, errs.ToMap(), tt.field)
		})
	}
}

func TestStatusCanTransitionTo(t *testing.T) {
	t.Parallel()

	assert.True(t, StatusPending.CanTransitionTo(StatusApproved))
	assert.True(t, StatusPending.CanTransitionTo(StatusRejected))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))

	for _, terminal := range []Status{StatusApproved, StatusRejected, StatusCancelled} {
		for _, next := range []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled} {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s", terminal, next)
		}
	}
}
