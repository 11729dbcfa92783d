package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/peopledesk/hr-backend-go/internal/domain/payroll"
)

// GrossSalary assembles gross pay from basic salary, the four allowance
// buckets and overtime pay. Zero-valued inputs are simply absent fields; no
// rounding beyond the currency's two decimals is applied.
func GrossSalary(basic, houseRent, transport, medical, other, overtimePay decimal.Decimal) decimal.Decimal {
	return basic.
		Add(houseRent).
		Add(transport).
		Add(medical).
		Add(other).
		Add(overtimePay)
}

// NetSalary re-derives net pay from the full current set of adjustments.
// It is never patched incrementally, so adding and removing the same entry
// always returns the record to its prior value.
func NetSalary(gross decimal.Decimal, deductions []payroll.Deduction, bonuses []payroll.Bonus) decimal.Decimal {
	return gross.Add(TotalBonuses(bonuses)).Sub(TotalDeductions(deductions))
}

func TotalDeductions(deductions []payroll.Deduction) decimal.Decimal {
	total := decimal.Zero
	for _, d := range deductions {
		total = total.Add(d.Amount)
	}
	return total
}

func TotalBonuses(bonuses []payroll.Bonus) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bonuses {
		total = total.Add(b.Amount)
	}
	return total
}
