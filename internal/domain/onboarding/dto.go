package onboarding

import (
	"github.com/peopledesk/hr-backend-go/internal/pkg/validator"
)

var taskStatuses = []string{
	string(TaskPending),
	string(TaskInProgress),
	string(TaskCompleted),
}

type CreateProcessRequest struct {
	EmployeeID string   `json:"employee_id"`
	StartDate  string   `json:"start_date"`
	Notes      string   `json:"notes"`
	TaskTitles []string `json:"task_titles,omitempty"`
}

func (r *CreateProcessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required (YYYY-MM-DD)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddTaskRequest struct {
	OnboardingID string `json:"onboarding_id"`
	Title        string `json:"task_title"`
	Description  string `json:"task_description"`
}

func (r *AddTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OnboardingID) {
		errs = append(errs, validator.ValidationError{Field: "onboarding_id", Message: "is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "task_title", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTaskRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateTaskRequest) Validate() error {
	if !validator.IsInSlice(r.Status, taskStatuses) {
		return validator.ValidationErrors{{Field: "status", Message: "is not a supported task status"}}
	}
	return nil
}

type TaskResponse struct {
	ID           string `json:"id"`
	OnboardingID string `json:"onboarding_id"`
	Title        string `json:"task_title"`
	Description  string `json:"task_description"`
	Status       string `json:"status"`
}

type ProcessResponse struct {
	ID                string         `json:"id"`
	EmployeeID        string         `json:"employee_id"`
	EmployeeName      string         `json:"employee_name,omitempty"`
	StartDate         string         `json:"start_date"`
	Status            string         `json:"status"`
	Notes             string         `json:"notes"`
	CompletionPercent int            `json:"completion_percent"`
	Tasks             []TaskResponse `json:"tasks,omitempty"`
}
