package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusOnLeave    Status = "on_leave"
	StatusTerminated Status = "terminated"
)

type Employee struct {
	ID         string
	Name       string
	Email      string
	Phone      *string
	Position   string
	Department string
	Salary     decimal.Decimal
	HireDate   time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
