package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-backend-go/internal/pkg/validator"
)

var statuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLate),
	string(StatusHalfDay),
	string(StatusOnLeave),
}

type UpsertRequest struct {
	ID         string  `json:"-"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in_time,omitempty"`
	CheckOut   *string `json:"check_out_time,omitempty"`
	Status     string  `json:"status"`
	Notes      string  `json:"notes"`
}

func (r *UpsertRequest) ApplyDefaults() {
	if r.Status == "" {
		r.Status = string(StatusPresent)
	}
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "is required (YYYY-MM-DD)"})
	}
	if !validator.IsInSlice(r.Status, statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a supported attendance status"})
	}

	checkIn := ""
	if r.CheckIn != nil && *r.CheckIn != "" {
		checkIn = *r.CheckIn
		if !validator.IsValidClock(checkIn) {
			errs = append(errs, validator.ValidationError{Field: "check_in_time", Message: "must be a valid HH:MM time"})
		}
	}
	checkOut := ""
	if r.CheckOut != nil && *r.CheckOut != "" {
		checkOut = *r.CheckOut
		if !validator.IsValidClock(checkOut) {
			errs = append(errs, validator.ValidationError{Field: "check_out_time", Message: "must be a valid HH:MM time"})
		}
	}
	if checkIn != "" && checkOut != "" && validator.IsValidClock(checkIn) && validator.IsValidClock(checkOut) && checkOut <= checkIn {
		errs = append(errs, validator.ValidationError{Field: "check_out_time", Message: "must be after check_in_time"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	EmployeeID *string
	Status     *string
	DateFrom   *string
	DateTo     *string
	Page       int
	Limit      int
}

type Response struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	Date          string          `json:"date"`
	CheckIn       *string         `json:"check_in_time,omitempty"`
	CheckOut      *string         `json:"check_out_time,omitempty"`
	Status        string          `json:"status"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	IsLate        bool            `json:"is_late"`
	IsEarlyLeave  bool            `json:"is_early_leave"`
	Notes         string          `json:"notes"`
}

type ListResponse struct {
	Data       []Response `json:"data"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}
