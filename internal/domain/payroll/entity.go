package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-backend-go/internal/pkg/money"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusProcessed Status = "processed"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// CanTransitionTo encodes the one-directional payroll lifecycle:
// draft -> processed -> paid, with cancelled reachable from draft or processed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusDraft:
		return next == StatusProcessed || next == StatusCancelled
	case StatusProcessed:
		return next == StatusPaid || next == StatusCancelled
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentBankTransfer  PaymentMethod = "bank_transfer"
	PaymentCheck         PaymentMethod = "check"
	PaymentCash          PaymentMethod = "cash"
	PaymentDirectDeposit PaymentMethod = "direct_deposit"
)

type DeductionType string

const (
	DeductionTax       DeductionType = "tax"
	DeductionInsurance DeductionType = "insurance"
	DeductionPension   DeductionType = "pension"
	DeductionLoan      DeductionType = "loan"
	DeductionAdvance   DeductionType = "advance"
	DeductionOther     DeductionType = "other"
)

type BonusType string

const (
	BonusPerformance BonusType = "performance"
	BonusAnnual      BonusType = "annual"
	BonusProject     BonusType = "project"
	BonusReferral    BonusType = "referral"
	BonusAttendance  BonusType = "attendance"
	BonusOther       BonusType = "other"
)

type Record struct {
	ID                 string
	EmployeeID         string
	PayPeriodStart     time.Time
	PayPeriodEnd       time.Time
	PaymentDate        time.Time
	BasicSalary        decimal.Decimal
	HouseRentAllowance decimal.Decimal
	TransportAllowance decimal.Decimal
	MedicalAllowance   decimal.Decimal
	OtherAllowances    decimal.Decimal
	OvertimeHours      decimal.Decimal
	OvertimePay        decimal.Decimal
	WorkingDays        int
	PresentDays        int
	AbsentDays         int
	LeavesTaken        int
	GrossSalary        decimal.Decimal
	NetSalary          decimal.Decimal
	Currency           money.Currency
	Status             Status
	PaymentMethod      PaymentMethod
	BankCode           *string
	BankAccountNumber  *string
	BankReference      *string
	Notes              string
	ProcessedBy        *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	// Joined for list/detail views
	EmployeeName *string
}

type Deduction struct {
	ID          string
	PayrollID   string
	Type        DeductionType
	Description *string
	Amount      decimal.Decimal
	Percentage  *decimal.Decimal
	IsRecurring bool
	CreatedAt   time.Time
}

type Bonus struct {
	ID          string
	PayrollID   string
	Type        BonusType
	Description *string
	Amount      decimal.Decimal
	IsRecurring bool
	CreatedAt   time.Time
}
