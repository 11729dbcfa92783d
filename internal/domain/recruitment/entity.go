package recruitment

import "time"

type JobStatus string

const (
	JobOpen   JobStatus = "open"
	JobClosed JobStatus = "closed"
)

type Stage string

const (
	StageApplied            Stage = "applied"
	StageShortlisted        Stage = "shortlisted"
	StageInterviewScheduled Stage = "interview_scheduled"
	StageHired              Stage = "hired"
	StageRejected           Stage = "rejected"
)

// CanTransitionTo walks the hiring pipeline forward only; rejection is allowed
// from any non-terminal stage.
func (s Stage) CanTransitionTo(next Stage) bool {
	if next == StageRejected {
		return s != StageHired && s != StageRejected
	}
	switch s {
	case StageApplied:
		return next == StageShortlisted
	case StageShortlisted:
		return next == StageInterviewScheduled
	case StageInterviewScheduled:
		return next == StageHired
	default:
		return false
	}
}

type JobPosting struct {
	ID             string
	Title          string
	Department     string
	Location       string
	EmploymentType string
	Description    string
	Status         JobStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Applicant struct {
	ID        string
	JobID     string
	Name      string
	Email     string
	Phone     *string
	ResumeURL *string
	Stage     Stage
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for list views
	JobTitle *string
}
