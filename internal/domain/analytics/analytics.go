package analytics

import (
	"context"

	"github.com/shopspring/decimal"
)

// DashboardStats backs the console's landing-page cards.
type DashboardStats struct {
	TotalEmployees    int64           `json:"total_employees"`
	ActiveEmployees   int64           `json:"active_employees"`
	PendingLeaves     int64           `json:"pending_leaves"`
	OpenPositions     int64           `json:"open_positions"`
	PayrollMonthGross decimal.Decimal `json:"payroll_month_gross"`
	PayrollMonthNet   decimal.Decimal `json:"payroll_month_net"`
	AvgOverallScore   decimal.Decimal `json:"avg_overall_score"`
}

type Repository interface {
	DashboardStats(ctx context.Context, month, year int) (DashboardStats, error)
}
