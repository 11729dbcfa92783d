package payroll

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/hr-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateRecordRequest {
	bankCode := "HBL"
	account := "0011223344"
	return CreateRecordRequest{
		EmployeeID:        "emp-1",
		PayPeriodStart:    "2026-01-01",
		PayPeriodEnd:      "2026-01-31",
		PaymentDate:       "2026-02-05",
		BasicSalary:       decimal.RequireFromString("100000"),
		Currency:          "PKR",
		PaymentMethod:     "bank_transfer",
		BankCode:          &bankCode,
		BankAccountNumber: &account,
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	return errs.ToMap()
}

func TestCreateRecordRequest_ApplyDefaults(t *testing.T) {
	t.Parallel()

	req := CreateRecordRequest{}
	req.ApplyDefaults()

	require.NotNil(t, req.WorkingDays)
	require.NotNil(t, req.PresentDays)
	assert.Equal(t, 22, *req.WorkingDays)
	assert.Equal(t, 22, *req.PresentDays)
	assert.Equal(t, "PKR", req.Currency)
	assert.Equal(t, "bank_transfer", req.PaymentMethod)
}

func TestCreateRecordRequest_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	working := 20
	present := 18
	req := CreateRecordRequest{
		WorkingDays:   &working,
		PresentDays:   &present,
		Currency:      "USD",
		PaymentMethod: "cash",
	}
	req.ApplyDefaults()

	assert.Equal(t, 20, *req.WorkingDays)
	assert.Equal(t, 18, *req.PresentDays)
	assert.Equal(t, "USD", req.Currency)
	assert.Equal(t, "cash", req.PaymentMethod)
}

func TestCreateRecordRequest_ApplyDefaultsPresentFollowsWorking(t *testing.T) {
	t.Parallel()

	working := 25
	req := CreateRecordRequest{WorkingDays: &working}
	req.ApplyDefaults()

	require.NotNil(t, req.PresentDays)
	assert.Equal(t, 25, *req.PresentDays)
}

func TestCreateRecordRequest_ValidateOK(t *testing.T) {
	t.Parallel()

	req := validCreateRequest()
	req.ApplyDefaults()
	assert.NoError(t, req.Validate())
}

func TestCreateRecordRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(r *CreateRecordRequest)
		field  string
	}{
		{
			name:   "missing employee",
			mutate: func(r *CreateRecordRequest) { r.EmployeeID = "" },
			field:  "employee_id",
		},
		{
			name:   "malformed period start",
			mutate: func(r *CreateRecordRequest) { r.PayPeriodStart = "01-01-2026" },
			field:  "pay_period_start",
		},
		{
			name:   "period end before start",
			mutate: func(r *CreateRecordRequest) { r.PayPeriodEnd = "2025-12-31" },
			field:  "pay_period_end",
		},
		{
			name:   "zero basic salary",
			mutate: func(r *CreateRecordRequest) { r.BasicSalary = decimal.Zero },
			field:  "basic_salary",
		},
		{
			name:   "negative allowance",
			mutate: func(r *CreateRecordRequest) { r.MedicalAllowance = decimal.RequireFromString("-1") },
			field:  "medical_allowance",
		},
		{
			name: "working days above month length",
			mutate: func(r *CreateRecordRequest) {
				days := 32
				r.WorkingDays = &days
			},
			field: "working_days",
		},
		{
			name: "present days above working days",
			mutate: func(r *CreateRecordRequest) {
				present := 23
				r.PresentDays = &present
			},
			field: "present_days",
		},
		{
			name:   "unsupported currency",
			mutate: func(r *CreateRecordRequest) { r.Currency = "EUR" },
			field:  "currency",
		},
		{
			name:   "unsupported payment method",
			mutate: func(r *CreateRecordRequest) { r.PaymentMethod = "crypto" },
			field:  "payment_method",
		},
		{
			name:   "bank transfer without bank code",
			mutate: func(r *CreateRecordRequest) { r.BankCode = nil },
			field:  "bank_code",
		},
		{
			name: "bank transfer with blank account number",
			mutate: func(r *CreateRecordRequest) {
				blank := "  "
				r.BankAccountNumber = &blank
			},
			field: "bank_account_number",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := validCreateRequest()
			req.ApplyDefaults()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)
			assert.Contains(t, fieldErrors(t, err), tt.field)
		})
	}
}

func TestCreateRecordRequest_ValidateBankFieldsOptionalForCash(t *testing.T) {
	t.Parallel()

	req := validCreateRequest()
	req.ApplyDefaults()
	req.PaymentMethod = "cash"
	req.BankCode = nil
	req.BankAccountNumber = nil

	assert.NoError(t, req.Validate())
}

func TestAddDeductionRequest_Validate(t *testing.T) {
	t.Parallel()

	req := AddDeductionRequest{Type: "tax", Amount: decimal.RequireFromString("5000")}
	assert.NoError(t, req.Validate())

	req.Type = "gym"
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, fieldErrors(t, err), "deduction_type")

	req = AddDeductionRequest{Type: "loan", Amount: decimal.Zero}
	err = req.Validate()
	require.Error(t, err)
	assert.Contains(t, fieldErrors(t, err), "amount")

	over := decimal.RequireFromString("101")
	req = AddDeductionRequest{Type: "tax", Amount: decimal.RequireFromString("1"), Percentage: &over}
	err = req.Validate()
	require.Error(t, err)
	assert.Contains(t, fieldErrors(t, err), "percentage")
}

func TestAddBonusRequest_Validate(t *testing.T) {
	t.Parallel()

	req := AddBonusRequest{Type: "performance", Amount: decimal.RequireFromString("10000")}
	assert.NoError(t, req.Validate())

	req = AddBonusRequest{Type: "performance", Amount: decimal.RequireFromString("-1")}
	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, fieldErrors(t, err), "amount")

	req = AddBonusRequest{Type: "spot", Amount: decimal.RequireFromString("1")}
	err = req.Validate()
	require.Error(t, err)
	assert.Contains(t, fieldErrors(t, err), "bonus_type")
}
