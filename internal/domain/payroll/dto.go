package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-backend-go/internal/pkg/money"
	"github.com/peopledesk/hr-backend-go/internal/pkg/validator"
)

var paymentMethods = []string{
	string(PaymentBankTransfer),
	string(PaymentCheck),
	string(PaymentCash),
	string(PaymentDirectDeposit),
}

var deductionTypes = []string{
	string(DeductionTax),
	string(DeductionInsurance),
	string(DeductionPension),
	string(DeductionLoan),
	string(DeductionAdvance),
	string(DeductionOther),
}

var bonusTypes = []string{
	string(BonusPerformance),
	string(BonusAnnual),
	string(BonusProject),
	string(BonusReferral),
	string(BonusAttendance),
	string(BonusOther),
}

// ========== RECORD DTOs ==========

// CreateRecordRequest mirrors the console's payroll form. Absent numeric
// fields decode to zero and are treated as zero amounts; working/present days
// default to a 22-day month the way the form does.
type CreateRecordRequest struct {
	EmployeeID         string          `json:"employee_id"`
	PayPeriodStart     string          `json:"pay_period_start"`
	PayPeriodEnd       string          `json:"pay_period_end"`
	PaymentDate        string          `json:"payment_date"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HouseRentAllowance decimal.Decimal `json:"house_rent_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	WorkingDays        *int            `json:"working_days,omitempty"`
	PresentDays        *int            `json:"present_days,omitempty"`
	AbsentDays         int             `json:"absent_days"`
	LeavesTaken        int             `json:"leaves_taken"`
	Currency           string          `json:"currency"`
	PaymentMethod      string          `json:"payment_method"`
	BankCode           *string         `json:"bank_code,omitempty"`
	BankAccountNumber  *string         `json:"bank_account_number,omitempty"`
	Notes              string          `json:"notes"`
	ProcessedBy        *string         `json:"processed_by,omitempty"`
}

// ApplyDefaults fills form defaults before validation.
func (r *CreateRecordRequest) ApplyDefaults() {
	if r.WorkingDays == nil {
		days := 22
		r.WorkingDays = &days
	}
	if r.PresentDays == nil {
		days := *r.WorkingDays
		r.PresentDays = &days
	}
	if r.Currency == "" {
		r.Currency = string(money.PKR)
	}
	if r.PaymentMethod == "" {
		r.PaymentMethod = string(PaymentBankTransfer)
	}
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}

	start, startOK := validator.IsValidDate(r.PayPeriodStart)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_start", Message: "is required (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.PayPeriodEnd)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "is required (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.PaymentDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "is required (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "pay_period_end", Message: "must be on or after pay_period_start"})
	}

	if !r.BasicSalary.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be greater than 0"})
	}
	for field, amount := range map[string]decimal.Decimal{
		"house_rent_allowance": r.HouseRentAllowance,
		"transport_allowance":  r.TransportAllowance,
		"medical_allowance":    r.MedicalAllowance,
		"other_allowances":     r.OtherAllowances,
		"overtime_hours":       r.OvertimeHours,
		"overtime_pay":         r.OvertimePay,
	} {
		if amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be non-negative"})
		}
	}

	if r.WorkingDays != nil && (*r.WorkingDays < 0 || *r.WorkingDays > 31) {
		errs = append(errs, validator.ValidationError{Field: "working_days", Message: "must be between 0 and 31"})
	}
	if r.WorkingDays != nil && r.PresentDays != nil && (*r.PresentDays < 0 || *r.PresentDays > *r.WorkingDays) {
		errs = append(errs, validator.ValidationError{Field: "present_days", Message: "must be between 0 and working_days"})
	}

	if _, err := money.ParseCurrency(r.Currency); err != nil {
		errs = append(errs, validator.ValidationError{Field: "currency", Message: "must be PKR or USD"})
	}
	if !validator.IsInSlice(r.PaymentMethod, paymentMethods) {
		errs = append(errs, validator.ValidationError{Field: "payment_method", Message: "is not a supported payment method"})
	}

	if r.PaymentMethod == string(PaymentBankTransfer) {
		if r.BankCode == nil || validator.IsEmpty(*r.BankCode) {
			errs = append(errs, validator.ValidationError{Field: "bank_code", Message: "is required for bank transfer"})
		}
		if r.BankAccountNumber == nil || validator.IsEmpty(*r.BankAccountNumber) {
			errs = append(errs, validator.ValidationError{Field: "bank_account_number", Message: "is required for bank transfer"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest is a full-record replace, same shape as create.
type UpdateRecordRequest struct {
	ID string `json:"-"`
	CreateRecordRequest
}

// ========== ADJUSTMENT DTOs ==========

type AddDeductionRequest struct {
	PayrollID   string           `json:"-"`
	Type        string           `json:"deduction_type"`
	Description *string          `json:"description,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	IsRecurring bool             `json:"is_recurring"`
}

func (r *AddDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, deductionTypes) {
		errs = append(errs, validator.ValidationError{Field: "deduction_type", Message: "is not a supported deduction type"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than 0"})
	}
	if r.Percentage != nil && (r.Percentage.IsNegative() || r.Percentage.GreaterThan(decimal.NewFromInt(100))) {
		errs = append(errs, validator.ValidationError{Field: "percentage", Message: "must be between 0 and 100"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddBonusRequest struct {
	PayrollID   string          `json:"-"`
	Type        string          `json:"bonus_type"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	IsRecurring bool            `json:"is_recurring"`
}

func (r *AddBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Type, bonusTypes) {
		errs = append(errs, validator.ValidationError{Field: "bonus_type", Message: "is not a supported bonus type"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be greater than 0"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========== FILTERS ==========

type Filter struct {
	EmployeeID *string
	Status     *string
	Month      *int
	Year       *int
	Page       int
	Limit      int
}

// ========== RESPONSES ==========

type RecordResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	EmployeeName       string          `json:"employee_name,omitempty"`
	PayPeriodStart     string          `json:"pay_period_start"`
	PayPeriodEnd       string          `json:"pay_period_end"`
	PaymentDate        string          `json:"payment_date"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HouseRentAllowance decimal.Decimal `json:"house_rent_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	MedicalAllowance   decimal.Decimal `json:"medical_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	OvertimeHours      decimal.Decimal `json:"overtime_hours"`
	OvertimePay        decimal.Decimal `json:"overtime_pay"`
	WorkingDays        int             `json:"working_days"`
	PresentDays        int             `json:"present_days"`
	AbsentDays         int             `json:"absent_days"`
	LeavesTaken        int             `json:"leaves_taken"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	NetSalary          decimal.Decimal `json:"net_salary"`
	GrossFormatted     string          `json:"gross_formatted"`
	NetFormatted       string          `json:"net_formatted"`
	Currency           string          `json:"currency"`
	Status             string          `json:"status"`
	PaymentMethod      string          `json:"payment_method"`
	BankCode           *string         `json:"bank_code,omitempty"`
	BankAccountNumber  *string         `json:"bank_account_number,omitempty"`
	BankReference      *string         `json:"bank_reference,omitempty"`
	Notes              string          `json:"notes"`
	ProcessedBy        *string         `json:"processed_by,omitempty"`
}

type DeductionResponse struct {
	ID          string           `json:"id"`
	PayrollID   string           `json:"payroll_id"`
	Type        string           `json:"deduction_type"`
	Description *string          `json:"description,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	IsRecurring bool             `json:"is_recurring"`
}

type BonusResponse struct {
	ID          string          `json:"id"`
	PayrollID   string          `json:"payroll_id"`
	Type        string          `json:"bonus_type"`
	Description *string         `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	IsRecurring bool            `json:"is_recurring"`
}

type RecordDetailResponse struct {
	RecordResponse
	Deductions      []DeductionResponse `json:"deductions"`
	Bonuses         []BonusResponse     `json:"bonuses"`
	TotalDeductions decimal.Decimal     `json:"total_deductions"`
	TotalBonuses    decimal.Decimal     `json:"total_bonuses"`
}

type ListRecordsResponse struct {
	Data       []RecordResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
