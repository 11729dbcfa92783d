package recruitment

import (
	"github.com/peopledesk/hr-backend-go/internal/pkg/validator"
)

var employmentTypes = []string{"full_time", "part_time", "contract", "internship"}

var stageNames = []string{
	string(StageApplied),
	string(StageShortlisted),
	string(StageInterviewScheduled),
	string(StageHired),
	string(StageRejected),
}

type UpsertJobRequest struct {
	ID             string `json:"-"`
	Title          string `json:"title"`
	Department     string `json:"department"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type"`
	Description    string `json:"description"`
	Status         string `json:"status"`
}

func (r *UpsertJobRequest) ApplyDefaults() {
	if r.EmploymentType == "" {
		r.EmploymentType = "full_time"
	}
	if r.Status == "" {
		r.Status = string(JobOpen)
	}
}

func (r *UpsertJobRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if !validator.IsInSlice(r.EmploymentType, employmentTypes) {
		errs = append(errs, validator.ValidationError{Field: "employment_type", Message: "is not a supported employment type"})
	}
	if r.Status != string(JobOpen) && r.Status != string(JobClosed) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be open or closed"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpsertApplicantRequest struct {
	ID        string  `json:"-"`
	JobID     string  `json:"job_id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	ResumeURL *string `json:"resume_url,omitempty"`
	Notes     string  `json:"notes"`
}

func (r *UpsertApplicantRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.JobID) {
		errs = append(errs, validator.ValidationError{Field: "job_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StageChangeRequest struct {
	Stage string `json:"stage"`
}

func (r *StageChangeRequest) Validate() error {
	if !validator.IsInSlice(r.Stage, stageNames) {
		return validator.ValidationErrors{{Field: "stage", Message: "is not a pipeline stage"}}
	}
	return nil
}

type JobResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Department     string `json:"department"`
	Location       string `json:"location"`
	EmploymentType string `json:"employment_type"`
	Description    string `json:"description"`
	Status         string `json:"status"`
}

type ApplicantResponse struct {
	ID        string  `json:"id"`
	JobID     string  `json:"job_id"`
	JobTitle  string  `json:"job_title,omitempty"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	ResumeURL *string `json:"resume_url,omitempty"`
	Stage     string  `json:"stage"`
	Notes     string  `json:"notes"`
}

type ApplicantFilter struct {
	JobID *string
	Stage *string
	Page  int
	Limit int
}

type ApplicantListResponse struct {
	Data       []ApplicantResponse `json:"data"`
	TotalCount int64               `json:"total_count"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}
