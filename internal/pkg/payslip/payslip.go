package payslip

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Data carries the already-formatted values a payslip renders. Amount strings
// arrive pre-formatted so the PDF shows exactly what the console shows.
type Data struct {
	EmployeeName    string
	PeriodStart     string
	PeriodEnd       string
	PaymentDate     string
	Status          string
	PaymentMethod   string
	BasicSalary     string
	Allowances      []Line
	OvertimePay     string
	GrossSalary     string
	Deductions      []Line
	Bonuses         []Line
	TotalDeductions string
	TotalBonuses    string
	NetSalary       string
}

type Line struct {
	Label  string
	Amount string
}

// Render produces the payslip PDF as bytes.
func Render(data Data) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", data.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay period: %s to %s", data.PeriodStart, data.PeriodEnd))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Payment date: %s (%s)", data.PaymentDate, data.PaymentMethod))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Status: %s", data.Status))
	pdf.Ln(10)

	section(pdf, "Earnings")
	line(pdf, "Basic salary", data.BasicSalary)
	for _, allowance := range data.Allowances {
		line(pdf, allowance.Label, allowance.Amount)
	}
	line(pdf, "Overtime pay", data.OvertimePay)
	line(pdf, "Gross salary", data.GrossSalary)
	pdf.Ln(4)

	section(pdf, "Deductions")
	if len(data.Deductions) == 0 {
		pdf.Cell(0, 7, "No deductions")
		pdf.Ln(7)
	}
	for _, deduction := range data.Deductions {
		line(pdf, deduction.Label, deduction.Amount)
	}
	line(pdf, "Total deductions", data.TotalDeductions)
	pdf.Ln(4)

	section(pdf, "Bonuses")
	if len(data.Bonuses) == 0 {
		pdf.Cell(0, 7, "No bonuses")
		pdf.Ln(7)
	}
	for _, bonus := range data.Bonuses {
		line(pdf, bonus.Label, bonus.Amount)
	}
	line(pdf, "Total bonuses", data.TotalBonuses)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	line(pdf, "NET SALARY", data.NetSalary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
}

func line(pdf *gofpdf.Fpdf, label, amount string) {
	pdf.Cell(110, 7, label)
	pdf.Cell(0, 7, amount)
	pdf.Ln(7)
}
