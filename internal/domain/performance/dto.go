package performance

import (
	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-backend-go/internal/pkg/validator"
)

var periods = []string{
	string(PeriodMonthly),
	string(PeriodQuarterly),
	string(PeriodHalfYearly),
	string(PeriodAnnual),
}

var statuses = []string{
	string(StatusDraft),
	string(StatusSubmitted),
	string(StatusInReview),
	string(StatusCompleted),
	string(StatusCancelled),
}

type UpsertRequest struct {
	ID            string `json:"-"`
	EmployeeID    string `json:"employee_id"`
	ReviewerID    string `json:"reviewer_id"`
	ReviewPeriod  string `json:"review_period"`
	QualityOfWork int    `json:"quality_of_work"`
	Productivity  int    `json:"productivity"`
	Communication int    `json:"communication"`
	Teamwork      int    `json:"teamwork"`
	Initiative    int    `json:"initiative"`
	Attendance    int    `json:"attendance"`
	Strengths     string `json:"strengths"`
	Improvements  string `json:"areas_of_improvement"`
	Goals         string `json:"goals"`
	Status        string `json:"status"`
}

func (r *UpsertRequest) ApplyDefaults() {
	if r.ReviewPeriod == "" {
		r.ReviewPeriod = string(PeriodAnnual)
	}
	if r.Status == "" {
		r.Status = string(StatusDraft)
	}
}

func (r *UpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.ReviewerID) {
		errs = append(errs, validator.ValidationError{Field: "reviewer_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.ReviewPeriod, periods) {
		errs = append(errs, validator.ValidationError{Field: "review_period", Message: "is not a supported review period"})
	}
	if !validator.IsInSlice(r.Status, statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "is not a supported review status"})
	}

	for field, rating := range map[string]int{
		"quality_of_work": r.QualityOfWork,
		"productivity":    r.Productivity,
		"communication":   r.Communication,
		"teamwork":        r.Teamwork,
		"initiative":      r.Initiative,
		"attendance":      r.Attendance,
	} {
		if rating < 1 || rating > 10 {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be between 1 and 10"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *UpsertRequest) ToRatings() Ratings {
	return Ratings{
		QualityOfWork: r.QualityOfWork,
		Productivity:  r.Productivity,
		Communication: r.Communication,
		Teamwork:      r.Teamwork,
		Initiative:    r.Initiative,
		Attendance:    r.Attendance,
	}
}

type Filter struct {
	EmployeeID *string
	Status     *string
	Period     *string
	Page       int
	Limit      int
}

type Response struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	ReviewerID    string          `json:"reviewer_id"`
	ReviewerName  string          `json:"reviewer_name,omitempty"`
	ReviewPeriod  string          `json:"review_period"`
	QualityOfWork int             `json:"quality_of_work"`
	Productivity  int             `json:"productivity"`
	Communication int             `json:"communication"`
	Teamwork      int             `json:"teamwork"`
	Initiative    int             `json:"initiative"`
	Attendance    int             `json:"attendance"`
	OverallScore  decimal.Decimal `json:"overall_score"`
	Grade         string          `json:"performance_grade"`
	Strengths     string          `json:"strengths"`
	Improvements  string          `json:"areas_of_improvement"`
	Goals         string          `json:"goals"`
	Status        string          `json:"status"`
}

type ListResponse struct {
	Data       []Response `json:"data"`
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
}
