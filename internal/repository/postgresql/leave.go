package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/hr-backend-go/internal/domain/leave"
	"github.com/peopledesk/hr-backend-go/internal/pkg/database"
)

type leaveRepository struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepository{db: db}
}

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.total_days,
	l.reason, l.status, l.reviewed_by, l.reviewed_at, l.created_at, l.updated_at, e.name`

func scanLeaveApplication(row pgx.Row) (leave.Application, error) {
	var app leave.Application
	err := row.Scan(
		&app.ID, &app.EmployeeID, &app.Type, &app.StartDate, &app.EndDate, &app.TotalDays,
		&app.Reason, &app.Status, &app.ReviewedBy, &app.ReviewedAt, &app.CreatedAt, &app.UpdatedAt, &app.EmployeeName,
	)
	return app, err
}

// Create implements leave.Repository.
func (r *leaveRepository) Create(ctx context.Context, app leave.Application) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	// A pending or approved application cannot overlap another for the same employee.
	var overlaps bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM leave_applications
			WHERE employee_id = $1
			  AND status IN ('pending', 'approved')
			  AND start_date <= $3
			  AND end_date >= $2
		)
	`, app.EmployeeID, app.StartDate, app.EndDate).Scan(&overlaps)
	if err != nil {
		return leave.Application{}, fmt.Errorf("failed to check leave overlap: %w", err)
	}
	if overlaps {
		return leave.Application{}, leave.ErrOverlappingLeave
	}

	query := `
		INSERT INTO leave_applications (employee_id, leave_type, start_date, end_date, total_days, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		app.EmployeeID, app.Type, app.StartDate, app.EndDate, app.TotalDays, app.Reason, app.Status,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)

	if err != nil {
		return leave.Application{}, fmt.Errorf("failed to create leave application: %w", err)
	}

	return app, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepository) GetByID(ctx context.Context, id string) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_applications l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.id = $1
	`, leaveColumns)

	app, err := scanLeaveApplication(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Application{}, leave.ErrApplicationNotFound
		}
		return leave.Application{}, fmt.Errorf("failed to get leave application: %w", err)
	}

	return app, nil
}

// List implements leave.Repository.
func (r *leaveRepository) List(ctx context.Context, filter leave.Filter) ([]leave.Application, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		where += fmt.Sprintf(" AND l.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		where += fmt.Sprintf(" AND l.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Type != nil && *filter.Type != "" {
		where += fmt.Sprintf(" AND l.leave_type = $%d", argIdx)
		args = append(args, *filter.Type)
		argIdx++
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM leave_applications l %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave applications: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_applications l
		JOIN employees e ON e.id = l.employee_id
		%s
		ORDER BY l.created_at DESC
		LIMIT $%d OFFSET $%d
	`, leaveColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave applications: %w", err)
	}
	defer rows.Close()

	var applications []leave.Application
	for rows.Next() {
		app, err := scanLeaveApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan leave application: %w", err)
		}
		applications = append(applications, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate leave applications: %w", err)
	}

	return applications, total, nil
}

// Update implements leave.Repository.
func (r *leaveRepository) Update(ctx context.Context, app leave.Application) (leave.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET leave_type = $2, start_date = $3, end_date = $4, total_days = $5, reason = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING employee_id, status, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.ID, app.Type, app.StartDate, app.EndDate, app.TotalDays, app.Reason,
	).Scan(&app.EmployeeID, &app.Status, &app.CreatedAt, &app.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Application{}, leave.ErrApplicationNotFound
		}
		return leave.Application{}, fmt.Errorf("failed to update leave application: %w", err)
	}

	return app, nil
}

// UpdateStatus implements leave.Repository.
func (r *leaveRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, reviewedBy *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_applications
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, status, reviewedBy)
	if err != nil {
		return fmt.Errorf("failed to update leave status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrApplicationNotFound
	}

	return nil
}

// Delete implements leave.Repository.
func (r *leaveRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leave_applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrApplicationNotFound
	}

	return nil
}
