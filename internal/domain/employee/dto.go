package employee

import (
	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-backend-go/internal/pkg/validator"
)

var statuses = []string{
	string(StatusActive),
	string(StatusOnLeave),
	string(StatusTerminated),
}

type UpsertRequest struct {
	ID         string          `json:"-"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone,omitempty"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   string          `json:"hire_date"`
	Status     string          `json:"status"`
}

func (r *UpsertRequest) ApplyDefaults() {
	if r.Status == "" {
		r.Status = string(StatusActive)
	}
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "is required"})
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "is required (YYYY-MM-DD)"})
	}
	if !validator.IsInSlice(r.Status, statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a supported employee status"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	Department *string
	Status     *string
	Search     *string
	Page       int
	Limit      int
}

type Response struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Phone      *string         `json:"phone,omitempty"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   string          `json:"hire_date"`
	Status     string          `json:"status"`
}

type ListResponse struct {
	Data       []Response `json:"data"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}
