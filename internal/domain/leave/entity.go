package leave

import "time"

type Type string

const (
	TypeSick      Type = "sick_leave"
	TypeCasual    Type = "casual_leave"
	TypeAnnual    Type = "annual_leave"
	TypeMaternity Type = "maternity_leave"
	TypePaternity Type = "paternity_leave"
	TypeUnpaid    Type = "unpaid_leave"
	TypeEmergency Type = "emergency_leave"
	TypeStudy     Type = "study_leave"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// CanTransitionTo: pending fans out to approved, rejected or cancelled; all
// three are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	if s != StatusPending {
		return false
	}
	return next == StatusApproved || next == StatusRejected || next == StatusCancelled
}

type Application struct {
	ID         string
	EmployeeID string
	Type       Type
	StartDate  time.Time
	EndDate    time.Time
	TotalDays  int
	Reason     string
	Status     Status
	ReviewedBy *string
	ReviewedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for list views
	EmployeeName *string
}
