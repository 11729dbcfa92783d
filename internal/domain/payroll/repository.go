package payroll

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	CreateRecord(ctx context.Context, record Record) (Record, error)
	GetRecordByID(ctx context.Context, id string) (Record, error)
	ListRecords(ctx context.Context, filter Filter) ([]Record, int64, error)
	UpdateRecord(ctx context.Context, record Record) (Record, error)
	UpdateStatus(ctx context.Context, id string, status Status, processedBy *string) error
	UpdateNetSalary(ctx context.Context, id string, net decimal.Decimal) error
	DeleteRecord(ctx context.Context, id string) error

	AddDeduction(ctx context.Context, deduction Deduction) (Deduction, error)
	GetDeductionByID(ctx context.Context, id string) (Deduction, error)
	DeleteDeduction(ctx context.Context, id string) error
	GetDeductionsByPayrollID(ctx context.Context, payrollID string) ([]Deduction, error)

	AddBonus(ctx context.Context, bonus Bonus) (Bonus, error)
	GetBonusByID(ctx context.Context, id string) (Bonus, error)
	DeleteBonus(ctx context.Context, id string) error
	GetBonusesByPayrollID(ctx context.Context, payrollID string) ([]Bonus, error)
}
