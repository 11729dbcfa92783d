package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/hr-backend-go/internal/domain/onboarding"
	"github.com/peopledesk/hr-backend-go/internal/pkg/database"
)

type onboardingRepository struct {
	db *database.DB
}

func NewOnboardingRepository(db *database.DB) onboarding.Repository {
	return &onboardingRepository{db: db}
}

// ========== PROCESSES ==========

// CreateProcess implements onboarding.Repository.
func (r *onboardingRepository) CreateProcess(ctx context.Context, process onboarding.Process) (onboarding.Process, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO onboarding_processes (employee_id, start_date, status, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		process.EmployeeID, process.StartDate, process.Status, process.Notes,
	).Scan(&process.ID, &process.CreatedAt, &process.UpdatedAt)

	if err != nil {
		return onboarding.Process{}, fmt.Errorf("failed to create onboarding process: %w", err)
	}

	return process, nil
}

// GetProcessByID implements onboarding.Repository.
func (r *onboardingRepository) GetProcessByID(ctx context.Context, id string) (onboarding.Process, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.employee_id, o.start_date, o.status, o.notes, o.created_at, o.updated_at, e.name
		FROM onboarding_processes o
		JOIN employees e ON e.id = o.employee_id
		WHERE o.id = $1
	`

	var process onboarding.Process
	err := q.QueryRow(ctx, query, id).Scan(
		&process.ID, &process.EmployeeID, &process.StartDate, &process.Status,
		&process.Notes, &process.CreatedAt, &process.UpdatedAt, &process.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return onboarding.Process{}, onboarding.ErrProcessNotFound
		}
		return onboarding.Process{}, fmt.Errorf("failed to get onboarding process: %w", err)
	}

	tasks, err := r.GetTasksByProcessID(ctx, id)
	if err != nil {
		return onboarding.Process{}, err
	}
	process.Tasks = tasks

	return process, nil
}

// ListProcesses implements onboarding.Repository.
func (r *onboardingRepository) ListProcesses(ctx context.Context) ([]onboarding.Process, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT o.id, o.employee_id, o.start_date, o.status, o.notes, o.created_at, o.updated_at, e.name
		FROM onboarding_processes o
		JOIN employees e ON e.id = o.employee_id
		ORDER BY o.start_date DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding processes: %w", err)
	}
	defer rows.Close()

	var processes []onboarding.Process
	for rows.Next() {
		var process onboarding.Process
		if err := rows.Scan(
			&process.ID, &process.EmployeeID, &process.StartDate, &process.Status,
			&process.Notes, &process.CreatedAt, &process.UpdatedAt, &process.EmployeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan onboarding process: %w", err)
		}
		processes = append(processes, process)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate onboarding processes: %w", err)
	}

	for i := range processes {
		tasks, err := r.GetTasksByProcessID(ctx, processes[i].ID)
		if err != nil {
			return nil, err
		}
		processes[i].Tasks = tasks
	}

	return processes, nil
}

// UpdateProcessStatus implements onboarding.Repository.
func (r *onboardingRepository) UpdateProcessStatus(ctx context.Context, id string, status onboarding.ProcessStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE onboarding_processes SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update onboarding status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return onboarding.ErrProcessNotFound
	}

	return nil
}

// DeleteProcess implements onboarding.Repository.
func (r *onboardingRepository) DeleteProcess(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Tasks cascade via FK.
	tag, err := q.Exec(ctx, `DELETE FROM onboarding_processes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete onboarding process: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return onboarding.ErrProcessNotFound
	}

	return nil
}

// ========== TASKS ==========

// AddTask implements onboarding.Repository.
func (r *onboardingRepository) AddTask(ctx context.Context, task onboarding.Task) (onboarding.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO onboarding_tasks (onboarding_id, task_title, task_description, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		task.OnboardingID, task.Title, task.Description, task.Status,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)

	if err != nil {
		return onboarding.Task{}, fmt.Errorf("failed to add onboarding task: %w", err)
	}

	return task, nil
}

// GetTaskByID implements onboarding.Repository.
func (r *onboardingRepository) GetTaskByID(ctx context.Context, id string) (onboarding.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, onboarding_id, task_title, task_description, status, created_at, updated_at
		FROM onboarding_tasks
		WHERE id = $1
	`

	var task onboarding.Task
	err := q.QueryRow(ctx, query, id).Scan(
		&task.ID, &task.OnboardingID, &task.Title, &task.Description,
		&task.Status, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return onboarding.Task{}, onboarding.ErrTaskNotFound
		}
		return onboarding.Task{}, fmt.Errorf("failed to get onboarding task: %w", err)
	}

	return task, nil
}

// UpdateTaskStatus implements onboarding.Repository.
func (r *onboardingRepository) UpdateTaskStatus(ctx context.Context, id string, status onboarding.TaskStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE onboarding_tasks SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return onboarding.ErrTaskNotFound
	}

	return nil
}

// DeleteTask implements onboarding.Repository.
func (r *onboardingRepository) DeleteTask(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM onboarding_tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete onboarding task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return onboarding.ErrTaskNotFound
	}

	return nil
}

// GetTasksByProcessID implements onboarding.Repository.
func (r *onboardingRepository) GetTasksByProcessID(ctx context.Context, processID string) ([]onboarding.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, onboarding_id, task_title, task_description, status, created_at, updated_at
		FROM onboarding_tasks
		WHERE onboarding_id = $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, processID)
	if err != nil {
		return nil, fmt.Errorf("failed to list onboarding tasks: %w", err)
	}
	defer rows.Close()

	var tasks []onboarding.Task
	for rows.Next() {
		var task onboarding.Task
		if err := rows.Scan(
			&task.ID, &task.OnboardingID, &task.Title, &task.Description,
			&task.Status, &task.CreatedAt, &task.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan onboarding task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate onboarding tasks: %w", err)
	}

	return tasks, nil
}
