package postgresql

import (
	"context"
	"fmt"

	"github.com/peopledesk/hr-backend-go/internal/domain/analytics"
	"github.com/peopledesk/hr-backend-go/internal/pkg/database"
)

type analyticsRepository struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.Repository {
	return &analyticsRepository{db: db}
}

// DashboardStats implements analytics.Repository.
func (r *analyticsRepository) DashboardStats(ctx context.Context, month, year int) (analytics.DashboardStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM employees WHERE status = 'active'),
			(SELECT COUNT(*) FROM leave_applications WHERE status = 'pending'),
			(SELECT COUNT(*) FROM job_postings WHERE status = 'open'),
			(SELECT COALESCE(SUM(gross_salary), 0) FROM payroll_records
			 WHERE EXTRACT(MONTH FROM pay_period_start) = $1
			   AND EXTRACT(YEAR FROM pay_period_start) = $2
			   AND status != 'cancelled'),
			(SELECT COALESCE(SUM(net_salary), 0) FROM payroll_records
			 WHERE EXTRACT(MONTH FROM pay_period_start) = $1
			   AND EXTRACT(YEAR FROM pay_period_start) = $2
			   AND status != 'cancelled'),
			(SELECT COALESCE(AVG(overall_score), 0) FROM performance_reviews WHERE status = 'completed')
	`

	var stats analytics.DashboardStats
	err := q.QueryRow(ctx, query, month, year).Scan(
		&stats.TotalEmployees,
		&stats.ActiveEmployees,
		&stats.PendingLeaves,
		&stats.OpenPositions,
		&stats.PayrollMonthGross,
		&stats.PayrollMonthNet,
		&stats.AvgOverallScore,
	)
	if err != nil {
		return analytics.DashboardStats{}, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	stats.AvgOverallScore = stats.AvgOverallScore.Round(2)

	return stats, nil
}
