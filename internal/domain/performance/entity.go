package performance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Period string

const (
	PeriodMonthly    Period = "monthly"
	PeriodQuarterly  Period = "quarterly"
	PeriodHalfYearly Period = "half_yearly"
	PeriodAnnual     Period = "annual"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusInReview  Status = "in_review"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Ratings are the six 1-10 integer scores a reviewer assigns.
type Ratings struct {
	QualityOfWork int
	Productivity  int
	Communication int
	Teamwork      int
	Initiative    int
	Attendance    int
}

type Review struct {
	ID           string
	EmployeeID   string
	ReviewerID   string
	ReviewPeriod Period
	Ratings      Ratings
	OverallScore decimal.Decimal
	Grade        string
	Strengths    string
	Improvements string
	Goals        string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for list views
	EmployeeName *string
	ReviewerName *string
}
