package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/hr-backend-go/internal/domain/recruitment"
	"github.com/peopledesk/hr-backend-go/internal/pkg/database"
)

type recruitmentRepository struct {
	db *database.DB
}

func NewRecruitmentRepository(db *database.DB) recruitment.Repository {
	return &recruitmentRepository{db: db}
}

// ========== JOB POSTINGS ==========

// CreateJob implements recruitment.Repository.
func (r *recruitmentRepository) CreateJob(ctx context.Context, job recruitment.JobPosting) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_postings (title, department, location, employment_type, description, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		job.Title, job.Department, job.Location, job.EmploymentType, job.Description, job.Status,
	).Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt)

	if err != nil {
		return recruitment.JobPosting{}, fmt.Errorf("failed to create job posting: %w", err)
	}

	return job, nil
}

// GetJobByID implements recruitment.Repository.
func (r *recruitmentRepository) GetJobByID(ctx context.Context, id string) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, department, location, employment_type, description, status, created_at, updated_at
		FROM job_postings
		WHERE id = $1
	`

	var job recruitment.JobPosting
	err := q.QueryRow(ctx, query, id).Scan(
		&job.ID, &job.Title, &job.Department, &job.Location, &job.EmploymentType,
		&job.Description, &job.Status, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobPosting{}, recruitment.ErrJobNotFound
		}
		return recruitment.JobPosting{}, fmt.Errorf("failed to get job posting: %w", err)
	}

	return job, nil
}

// ListJobs implements recruitment.Repository.
func (r *recruitmentRepository) ListJobs(ctx context.Context, status *string) ([]recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, department, location, employment_type, description, status, created_at, updated_at
		FROM job_postings
	`
	args := []any{}
	if status != nil && *status != "" {
		query += ` WHERE status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var jobs []recruitment.JobPosting
	for rows.Next() {
		var job recruitment.JobPosting
		if err := rows.Scan(
			&job.ID, &job.Title, &job.Department, &job.Location, &job.EmploymentType,
			&job.Description, &job.Status, &job.CreatedAt, &job.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate job postings: %w", err)
	}

	return jobs, nil
}

// UpdateJob implements recruitment.Repository.
func (r *recruitmentRepository) UpdateJob(ctx context.Context, job recruitment.JobPosting) (recruitment.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_postings
		SET title = $2, department = $3, location = $4, employment_type = $5,
		    description = $6, status = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		job.ID, job.Title, job.Department, job.Location, job.EmploymentType, job.Description, job.Status,
	).Scan(&job.CreatedAt, &job.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.JobPosting{}, recruitment.ErrJobNotFound
		}
		return recruitment.JobPosting{}, fmt.Errorf("failed to update job posting: %w", err)
	}

	return job, nil
}

// DeleteJob implements recruitment.Repository.
func (r *recruitmentRepository) DeleteJob(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrJobNotFound
	}

	return nil
}

// ========== APPLICANTS ==========

const applicantColumns = `
	a.id, a.job_id, a.name, a.email, a.phone, a.resume_url, a.stage, a.notes,
	a.created_at, a.updated_at, j.title`

func scanApplicant(row pgx.Row) (recruitment.Applicant, error) {
	var app recruitment.Applicant
	err := row.Scan(
		&app.ID, &app.JobID, &app.Name, &app.Email, &app.Phone, &app.ResumeURL,
		&app.Stage, &app.Notes, &app.CreatedAt, &app.UpdatedAt, &app.JobTitle,
	)
	return app, err
}

// CreateApplicant implements recruitment.Repository.
func (r *recruitmentRepository) CreateApplicant(ctx context.Context, app recruitment.Applicant) (recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO applicants (job_id, name, email, phone, resume_url, stage, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.JobID, app.Name, app.Email, app.Phone, app.ResumeURL, app.Stage, app.Notes,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)

	if err != nil {
		return recruitment.Applicant{}, fmt.Errorf("failed to create applicant: %w", err)
	}

	return app, nil
}

// GetApplicantByID implements recruitment.Repository.
func (r *recruitmentRepository) GetApplicantByID(ctx context.Context, id string) (recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM applicants a
		JOIN job_postings j ON j.id = a.job_id
		WHERE a.id = $1
	`, applicantColumns)

	app, err := scanApplicant(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.Applicant{}, recruitment.ErrApplicantNotFound
		}
		return recruitment.Applicant{}, fmt.Errorf("failed to get applicant: %w", err)
	}

	return app, nil
}

// ListApplicants implements recruitment.Repository.
func (r *recruitmentRepository) ListApplicants(ctx context.Context, filter recruitment.ApplicantFilter) ([]recruitment.Applicant, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE 1=1"
	args := []any{}
	argIdx := 1

	if filter.JobID != nil && *filter.JobID != "" {
		where += fmt.Sprintf(" AND a.job_id = $%d", argIdx)
		args = append(args, *filter.JobID)
		argIdx++
	}
	if filter.Stage != nil && *filter.Stage != "" {
		where += fmt.Sprintf(" AND a.stage = $%d", argIdx)
		args = append(args, *filter.Stage)
		argIdx++
	}

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM applicants a %s`, where)
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applicants: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM applicants a
		JOIN job_postings j ON j.id = a.job_id
		%s
		ORDER BY a.created_at DESC
		LIMIT $%d OFFSET $%d
	`, applicantColumns, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applicants: %w", err)
	}
	defer rows.Close()

	var applicants []recruitment.Applicant
	for rows.Next() {
		app, err := scanApplicant(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan applicant: %w", err)
		}
		applicants = append(applicants, app)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate applicants: %w", err)
	}

	return applicants, total, nil
}

// UpdateApplicant implements recruitment.Repository.
func (r *recruitmentRepository) UpdateApplicant(ctx context.Context, app recruitment.Applicant) (recruitment.Applicant, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE applicants
		SET name = $2, email = $3, phone = $4, resume_url = $5, notes = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING job_id, stage, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.ID, app.Name, app.Email, app.Phone, app.ResumeURL, app.Notes,
	).Scan(&app.JobID, &app.Stage, &app.CreatedAt, &app.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recruitment.Applicant{}, recruitment.ErrApplicantNotFound
		}
		return recruitment.Applicant{}, fmt.Errorf("failed to update applicant: %w", err)
	}

	return app, nil
}

// UpdateApplicantStage implements recruitment.Repository.
func (r *recruitmentRepository) UpdateApplicantStage(ctx context.Context, id string, stage recruitment.Stage) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE applicants SET stage = $2, updated_at = NOW() WHERE id = $1`, id, stage)
	if err != nil {
		return fmt.Errorf("failed to update applicant stage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrApplicantNotFound
	}

	return nil
}

// DeleteApplicant implements recruitment.Repository.
func (r *recruitmentRepository) DeleteApplicant(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM applicants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete applicant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return recruitment.ErrApplicantNotFound
	}

	return nil
}
