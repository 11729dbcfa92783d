package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peopledesk/hr-backend-go/internal/domain/payroll"
	"github.com/peopledesk/hr-backend-go/internal/pkg/money"
)

func TestMapRecord_CarriesBankDetails(t *testing.T) {
	t.Parallel()

	bankCode := "HBL"
	account := "0011223344"
	reference := "TXN-2026-000123"
	day := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

	resp, err := mapRecord(payroll.Record{
		ID:                "pr-1",
		EmployeeID:        "emp-1",
		PayPeriodStart:    day.AddDate(0, 0, -30),
		PayPeriodEnd:      day,
		PaymentDate:       day.AddDate(0, 0, 5),
		BasicSalary:       dec("100000"),
		GrossSalary:       dec("147000"),
		NetSalary:         dec("132300"),
		Currency:          money.PKR,
		Status:            payroll.StatusPaid,
		PaymentMethod:     payroll.PaymentBankTransfer,
		BankCode:          &bankCode,
		BankAccountNumber: &account,
		BankReference:     &reference,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.BankReference)
	assert.Equal(t, reference, *resp.BankReference)
	require.NotNil(t, resp.BankCode)
	assert.Equal(t, bankCode, *resp.BankCode)
	require.NotNil(t, resp.BankAccountNumber)
	assert.Equal(t, account, *resp.BankAccountNumber)
	assert.Equal(t, "Rs 147,000.00", resp.GrossFormatted)
	assert.Equal(t, "Rs 132,300.00", resp.NetFormatted)
}
