package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/peopledesk/hr-backend-go/internal/domain/payroll"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func TestGrossSalary(t *testing.T) {
	t.Parallel()

	gross := GrossSalary(dec("100000"), dec("30000"), dec("10000"), dec("5000"), dec("0"), dec("2000"))
	assert.True(t, gross.Equal(dec("147000")), "got %s", gross)

	// Absent fields behave as zero.
	gross = GrossSalary(dec("50000"), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, gross.Equal(dec("50000")), "got %s", gross)
}

func TestGrossSalary_OrderIndependent(t *testing.T) {
	t.Parallel()

	a := GrossSalary(dec("1000"), dec("200"), dec("300"), dec("400"), dec("500"), dec("600"))
	b := GrossSalary(dec("600"), dec("500"), dec("400"), dec("300"), dec("200"), dec("1000"))
	assert.True(t, a.Equal(b))
}

func TestNetSalary_LedgerScenario(t *testing.T) {
	t.Parallel()

	gross := GrossSalary(dec("100000"), dec("30000"), dec("10000"), dec("5000"), dec("0"), dec("2000"))
	assert.True(t, gross.Equal(dec("147000")))

	var deductions []payroll.Deduction
	var bonuses []payroll.Bonus

	// No adjustments: net equals gross.
	assert.True(t, NetSalary(gross, deductions, bonuses).Equal(dec("147000")))

	tax := payroll.Deduction{ID: "d1", Type: payroll.DeductionTax, Amount: dec("14700")}
	deductions = append(deductions, tax)
	assert.True(t, NetSalary(gross, deductions, bonuses).Equal(dec("132300")))

	bonuses = append(bonuses, payroll.Bonus{ID: "b1", Type: payroll.BonusPerformance, Amount: dec("5000")})
	assert.True(t, NetSalary(gross, deductions, bonuses).Equal(dec("137300")))

	// Removing the tax deduction brings the bonus-only net.
	deductions = deductions[:0]
	assert.True(t, NetSalary(gross, deductions, bonuses).Equal(dec("152000")))
}

func TestNetSalary_AddRemoveIdempotent(t *testing.T) {
	t.Parallel()

	gross := dec("80000")
	before := NetSalary(gross, nil, nil)

	withDeduction := NetSalary(gross, []payroll.Deduction{{Amount: dec("1234.56")}}, nil)
	assert.False(t, withDeduction.Equal(before))

	after := NetSalary(gross, nil, nil)
	assert.True(t, after.Equal(before))
}

func TestTotals(t *testing.T) {
	t.Parallel()

	deductions := []payroll.Deduction{{Amount: dec("100")}, {Amount: dec("250.25")}}
	bonuses := []payroll.Bonus{{Amount: dec("75.75")}}

	assert.True(t, TotalDeductions(deductions).Equal(dec("350.25")))
	assert.True(t, TotalBonuses(bonuses).Equal(dec("75.75")))
	assert.True(t, TotalDeductions(nil).IsZero())
	assert.True(t, TotalBonuses(nil).IsZero())
}
