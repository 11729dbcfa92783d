package onboarding

import "time"

type ProcessStatus string

const (
	ProcessPending    ProcessStatus = "pending"
	ProcessInProgress ProcessStatus = "in_progress"
	ProcessCompleted  ProcessStatus = "completed"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

type Process struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	Status     ProcessStatus
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for list views
	EmployeeName *string

	Tasks []Task
}

// CompletionPercent derives progress from the task list; an empty checklist
// counts as zero.
func (p Process) CompletionPercent() int {
	if len(p.Tasks) == 0 {
		return 0
	}
	done := 0
	for _, task := range p.Tasks {
		if task.Status == TaskCompleted {
			done++
		}
	}
	return done * 100 / len(p.Tasks)
}

type Task struct {
	ID           string
	OnboardingID string
	Title        string
	Description  string
	Status       TaskStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
