package attendance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/hr-backend-go/internal/pkg/validator"
)

func clock(value string) *string {
	return &value
}

func TestUpsertRequest_ApplyDefaults(t *testing.T) {
	t.Parallel()

	req := UpsertRequest{}
	req.ApplyDefaults()
	assert.Equal(t, "present", req.Status)

	req = UpsertRequest{Status: "on_leave"}
	req.ApplyDefaults()
	assert.Equal(t, "on_leave", req.Status)
}

func TestUpsertRequest_ValidateOK(t *testing.T) {
	t.Parallel()

	req := UpsertRequest{
		EmployeeID: "emp-1",
		Date:       "2026-03-02",
		CheckIn:    clock("09:05"),
		CheckOut:   clock("17:30"),
		Status:     "present",
	}
	assert.NoError(t, req.Validate())

	// Both clock fields are optional.
	req = UpsertRequest{EmployeeID: "emp-1", Date: "2026-03-02", Status: "absent"}
	assert.NoError(t, req.Validate())
}

func TestUpsertRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		req   UpsertRequest
		field string
	}{
		{
			name:  "missing employee",
			req:   UpsertRequest{Date: "2026-03-02", Status: "present"},
			field: "employee_id",
		},
		{
			name:  "malformed date",
			req:   UpsertRequest{EmployeeID: "emp-1", Date: "02/03/2026", Status: "present"},
			field: "date",
		},
		{
			name:  "unknown status",
			req:   UpsertRequest{EmployeeID: "emp-1", Date: "2026-03-02", Status: "remote"},
			field: "status",
		},
		{
			name:  "check in not a clock time",
			req:   UpsertRequest{EmployeeID: "emp-1", Date: "2026-03-02", Status: "present", CheckIn: clock("9am")},
			field: "check_in_time",
		},
		{
			name:  "check out out of range",
			req:   UpsertRequest{EmployeeID: "emp-1", Date: "2026-03-02", Status: "present", CheckOut: clock("24:00")},
			field: "check_out_time",
		},
		{
			name: "check out before check in",
			req: UpsertRequest{
				EmployeeID: "emp-1", Date: "2026-03-02", Status: "present",
				CheckIn: clock("17:00"), CheckOut: clock("09:00"),
			},
			field: "check_out_time",
		},
		{
			name: "check out equal to check in",
			req: UpsertRequest{
				EmployeeID: "emp-1", Date: "2026-03-02", Status: "present",
				CheckIn: clock("09:00"), CheckOut: clock("09:00"),
			},
			field: "check_out_time",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Contains(t, errs.ToMap(), tt.field)
		})
	}
}
