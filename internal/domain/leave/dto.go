package leave

import (
	"github.com/peopledesk/hr-backend-go/internal/pkg/validator"
)

var leaveTypes = []string{
	string(TypeSick),
	string(TypeCasual),
	string(TypeAnnual),
	string(TypeMaternity),
	string(TypePaternity),
	string(TypeUnpaid),
	string(TypeEmergency),
	string(TypeStudy),
}

const minReasonLength = 10

type UpsertRequest struct {
	ID         string `json:"-"`
	EmployeeID string `json:"employee_id"`
	Type       string `json:"leave_type"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Reason     string `json:"reason"`
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Type, leaveTypes) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "is not a supported leave type"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be on or after start_date"})
	}

	if len(r.Reason) < minReasonLength {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "must be at least 10 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReviewRequest struct {
	ReviewedBy string `json:"reviewed_by"`
}

type Filter struct {
	EmployeeID *string
	Status     *string
	Type       *string
	Page       int
	Limit      int
}

type Response struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Type         string  `json:"leave_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalDays    int     `json:"total_days"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	ReviewedBy   *string `json:"reviewed_by,omitempty"`
}

type ListResponse struct {
	Data       []Response `json:"data"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}
