package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/hr-backend-go/internal/domain/performance"
	"github.com/peopledesk/hr-backend-go/internal/pkg/database"
)

type performanceRepository struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.Repository {
	return &performanceRepository{db: db}
}

const performanceColumns = `
	p.id, p.employee_id, p.reviewer_id, p.review_period,
	p.quality_of_work, p.productivity, p.communication, p.teamwork, p.initiative, p.attendance,
	p.overall_score, p.performance_grade, p.strengths, p.areas_of_improvement, p.goals, p.status,
	p.created_at, p.updated_at, e.name, rv.name`

func scanReview(row pgx.Row) (performance.Review, error) {
	var rev performance.Review
	err := row.Scan(
		&rev.ID, &rev.EmployeeID, &rev.ReviewerID, &rev.ReviewPeriod,
		&rev.Ratings.QualityOfWork, &rev.Ratings.Productivity, &rev.Ratings.Communication,
		&rev.Ratings.Teamwork, &rev.Ratings.Initiative, &rev.Ratings.Attendance,
		&rev.OverallScore, &rev.Grade, &rev.Strengths, &rev.Improvements, &rev.Goals, &rev.Status,
		&rev.CreatedAt, &rev.UpdatedAt, &rev.EmployeeName, &rev.ReviewerName,
	)
	return rev, err
}

// Create implements performance.Repository.
func (r *performanceRepository) Create(ctx context.Context, rev performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO performance_reviews (
			employee_id, reviewer_id, review_period,
			quality_of_work, productivity, communication, teamwork, initiative, attendance,
			overall_score, performance_grade, strengths, areas_of_improvement, goals, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rev.EmployeeID, rev.ReviewerID, rev.ReviewPeriod,
		rev.Ratings.QualityOfWork, rev.Ratings.Productivity, rev.Ratings.Communication,
		rev.Ratings.Teamwork, rev.Ratings.Initiative, rev.Ratings.Attendance,
		rev.OverallScore, rev.Grade, rev.Strengths, rev.Improvements, rev.Goals, rev.Status,
	).Scan(&rev.ID, &rev.CreatedAt, &rev.UpdatedAt)

	if err != nil {
		return performance.Review{}, fmt.Errorf("failed to create performance review: %w", err)
	}

	return rev, nil
}

// GetByID implements performance.Repository.
func (r *performanceRepository) GetByID(ctx context.Context, id string) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM performance_reviews p
		JOIN employees e ON e.id = p.employee_id
		JOIN employees rv ON rv.id = p.reviewer_id
		WHERE p.id = $1
	`, performanceColumns)

	rev, err := scanReview(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Review{}, performance.ErrReviewNotFound
		}
		return performance.Review{}, fmt.Errorf("failed to get performance review: %w", err)
	}

	return rev, nil
}

// List implements performance.Repository.
func (r *performanceRepository) List(ctx context.Context, filter performance.Filter) ([]performance.Review, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Period != nil && *filter.Period != "" {
		where += fmt.Sprintf(" AND p.review_period = $%d", argIdx)
		args = append(args, *filter.Period)
		argIdx++
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM performance_reviews p %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count performance reviews: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM performance_reviews p
		JOIN employees e ON e.id = p.employee_id
		JOIN employees rv ON rv.id = p.reviewer_id
		%s
		ORDER BY p.created_at DESC
		LIMIT $%d OFFSET $%d
	`, performanceColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list performance reviews: %w", err)
	}
	defer rows.Close()

	var reviews []performance.Review
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan performance review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate performance reviews: %w", err)
	}

	return reviews, total, nil
}

// Update implements performance.Repository.
func (r *performanceRepository) Update(ctx context.Context, rev performance.Review) (performance.Review, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE performance_reviews
		SET employee_id = $2, reviewer_id = $3, review_period = $4,
		    quality_of_work = $5, productivity = $6, communication = $7,
		    teamwork = $8, initiative = $9, attendance = $10,
		    overall_score = $11, performance_grade = $12,
		    strengths = $13, areas_of_improvement = $14, goals = $15, status = $16,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rev.ID, rev.EmployeeID, rev.ReviewerID, rev.ReviewPeriod,
		rev.Ratings.QualityOfWork, rev.Ratings.Productivity, rev.Ratings.Communication,
		rev.Ratings.Teamwork, rev.Ratings.Initiative, rev.Ratings.Attendance,
		rev.OverallScore, rev.Grade, rev.Strengths, rev.Improvements, rev.Goals, rev.Status,
	).Scan(&rev.CreatedAt, &rev.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return performance.Review{}, performance.ErrReviewNotFound
		}
		return performance.Review{}, fmt.Errorf("failed to update performance review: %w", err)
	}

	return rev, nil
}

// Delete implements performance.Repository.
func (r *performanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM performance_reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete performance review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrReviewNotFound
	}

	return nil
}
