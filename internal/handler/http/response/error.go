package response

import (
	"errors"
	"net/http"

	"github.com/peopledesk/hr-backend-go/internal/domain/attendance"
	"github.com/peopledesk/hr-backend-go/internal/domain/employee"
	"github.com/peopledesk/hr-backend-go/internal/domain/leave"
	"github.com/peopledesk/hr-backend-go/internal/domain/master"
	"github.com/peopledesk/hr-backend-go/internal/domain/onboarding"
	"github.com/peopledesk/hr-backend-go/internal/domain/payroll"
	"github.com/peopledesk/hr-backend-go/internal/domain/performance"
	"github.com/peopledesk/hr-backend-go/internal/domain/recruitment"
	"github.com/peopledesk/hr-backend-go/internal/pkg/money"
	"github.com/peopledesk/hr-backend-go/internal/pkg/timeutil"
	"github.com/peopledesk/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")
	case errors.Is(err, payroll.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")
	case errors.Is(err, payroll.ErrBonusNotFound):
		NotFound(w, "Bonus not found")
	case errors.Is(err, payroll.ErrPayrollAlreadyExists):
		Conflict(w, "Payroll record already exists for this employee and period")
	case errors.Is(err, payroll.ErrInvalidStatusTransition):
		Conflict(w, "Invalid payroll status transition")
	case errors.Is(err, payroll.ErrRecordLocked):
		Conflict(w, "Paid or cancelled payroll records cannot be modified")
	case errors.Is(err, money.ErrUnknownCurrency):
		BadRequest(w, "Unknown currency", nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateDate):
		Conflict(w, "Attendance already recorded for this employee on this date")
	case errors.Is(err, timeutil.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out must be after check-in", nil)
	case errors.Is(err, timeutil.ErrInvalidClock):
		BadRequest(w, "Invalid HH:MM time", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrApplicationNotFound):
		NotFound(w, "Leave application not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave application already processed")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave dates overlap an existing application")

	// Performance domain errors
	case errors.Is(err, performance.ErrReviewNotFound):
		NotFound(w, "Performance review not found")

	// Recruitment domain errors
	case errors.Is(err, recruitment.ErrJobNotFound):
		NotFound(w, "Job posting not found")
	case errors.Is(err, recruitment.ErrApplicantNotFound):
		NotFound(w, "Applicant not found")
	case errors.Is(err, recruitment.ErrInvalidStageChange):
		Conflict(w, "Invalid pipeline stage transition")
	case errors.Is(err, recruitment.ErrJobClosed):
		Conflict(w, "Job posting is closed for applications")

	// Onboarding domain errors
	case errors.Is(err, onboarding.ErrProcessNotFound):
		NotFound(w, "Onboarding process not found")
	case errors.Is(err, onboarding.ErrTaskNotFound):
		NotFound(w, "Onboarding task not found")

	// Master data errors
	case errors.Is(err, master.ErrBankNotFound):
		NotFound(w, "Bank not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
