package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is a point-in-time classification, not a progression; it is set
// directly and has no transition graph.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half_day"
	StatusOnLeave Status = "on_leave"
)

type Record struct {
	ID            string
	EmployeeID    string
	Date          time.Time
	CheckIn       *string
	CheckOut      *string
	Status        Status
	TotalHours    decimal.Decimal
	OvertimeHours decimal.Decimal
	IsLate        bool
	IsEarlyLeave  bool
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined for list views
	EmployeeName *string
}
