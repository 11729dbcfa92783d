package payroll

import "errors"

// Payroll domain errors
var (
	ErrPayrollNotFound         = errors.New("payroll record not found")
	ErrDeductionNotFound       = errors.New("deduction not found")
	ErrBonusNotFound           = errors.New("bonus not found")
	ErrPayrollAlreadyExists    = errors.New("payroll record already exists for this employee and period")
	ErrInvalidStatusTransition = errors.New("invalid payroll status transition")
	ErrRecordLocked            = errors.New("paid or cancelled payroll records cannot be modified")
)
