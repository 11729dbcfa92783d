package onboarding

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/peopledesk/hr-backend-go/internal/domain/employee"
	"github.com/peopledesk/hr-backend-go/internal/domain/onboarding"
	"github.com/peopledesk/hr-backend-go/internal/pkg/database"
	"github.com/peopledesk/hr-backend-go/internal/repository/postgresql"
)

type ServiceImpl struct {
	db             *database.DB
	onboardingRepo onboarding.Repository
	employeeRepo   employee.Repository
}

func NewOnboardingService(
	db *database.DB,
	onboardingRepo onboarding.Repository,
	employeeRepo employee.Repository,
) onboarding.Service {
	return &ServiceImpl{
		db:             db,
		onboardingRepo: onboardingRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *ServiceImpl) CreateProcess(ctx context.Context, req onboarding.CreateProcessRequest) (onboarding.ProcessResponse, error) {
	if err := req.Validate(); err != nil {
		return onboarding.ProcessResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return onboarding.ProcessResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return onboarding.ProcessResponse{}, err
	}

	var created onboarding.Process
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err = s.onboardingRepo.CreateProcess(txCtx, onboarding.Process{
			EmployeeID: req.EmployeeID,
			StartDate:  startDate,
			Status:     onboarding.ProcessPending,
			Notes:      req.Notes,
		})
		if err != nil {
			return err
		}

		for _, title := range req.TaskTitles {
			task, err := s.onboardingRepo.AddTask(txCtx, onboarding.Task{
				OnboardingID: created.ID,
				Title:        title,
				Status:       onboarding.TaskPending,
			})
			if err != nil {
				return err
			}
			created.Tasks = append(created.Tasks, task)
		}
		return nil
	})
	if err != nil {
		return onboarding.ProcessResponse{}, err
	}

	return mapProcess(created), nil
}

func (s *ServiceImpl) GetProcess(ctx context.Context, id string) (onboarding.ProcessResponse, error) {
	process, err := s.onboardingRepo.GetProcessByID(ctx, id)
	if err != nil {
		return onboarding.ProcessResponse{}, err
	}
	return mapProcess(process), nil
}

func (s *ServiceImpl) ListProcesses(ctx context.Context) ([]onboarding.ProcessResponse, error) {
	processes, err := s.onboardingRepo.ListProcesses(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]onboarding.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		responses = append(responses, mapProcess(process))
	}
	return responses, nil
}

func (s *ServiceImpl) DeleteProcess(ctx context.Context, id string) error {
	return s.onboardingRepo.DeleteProcess(ctx, id)
}

func (s *ServiceImpl) AddTask(ctx context.Context, req onboarding.AddTaskRequest) (onboarding.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return onboarding.TaskResponse{}, err
	}

	var created onboarding.Task
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		process, err := s.onboardingRepo.GetProcessByID(txCtx, req.OnboardingID)
		if err != nil {
			return err
		}

		created, err = s.onboardingRepo.AddTask(txCtx, onboarding.Task{
			OnboardingID: process.ID,
			Title:        req.Title,
			Description:  req.Description,
			Status:       onboarding.TaskPending,
		})
		if err != nil {
			return err
		}
		return s.syncProcessStatus(txCtx, process.ID)
	})
	if err != nil {
		return onboarding.TaskResponse{}, err
	}

	return mapTask(created), nil
}

func (s *ServiceImpl) UpdateTask(ctx context.Context, req onboarding.UpdateTaskRequest) (onboarding.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return onboarding.TaskResponse{}, err
	}

	var updated onboarding.Task
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		task, err := s.onboardingRepo.GetTaskByID(txCtx, req.ID)
		if err != nil {
			return err
		}

		if err := s.onboardingRepo.UpdateTaskStatus(txCtx, task.ID, onboarding.TaskStatus(req.Status)); err != nil {
			return err
		}

		updated, err = s.onboardingRepo.GetTaskByID(txCtx, task.ID)
		if err != nil {
			return err
		}
		return s.syncProcessStatus(txCtx, task.OnboardingID)
	})
	if err != nil {
		return onboarding.TaskResponse{}, err
	}

	return mapTask(updated), nil
}

func (s *ServiceImpl) DeleteTask(ctx context.Context, id string) error {
	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		task, err := s.onboardingRepo.GetTaskByID(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.onboardingRepo.DeleteTask(txCtx, id); err != nil {
			return err
		}
		return s.syncProcessStatus(txCtx, task.OnboardingID)
	})
}

// syncProcessStatus re-derives the process status from its checklist: all
// tasks completed means completed, any progress means in_progress, otherwise
// pending. Runs inside the caller's transaction.
func (s *ServiceImpl) syncProcessStatus(ctx context.Context, processID string) error {
	tasks, err := s.onboardingRepo.GetTasksByProcessID(ctx, processID)
	if err != nil {
		return err
	}

	status := onboarding.ProcessPending
	if len(tasks) > 0 {
		completed := 0
		started := 0
		for _, task := range tasks {
			switch task.Status {
			case onboarding.TaskCompleted:
				completed++
				started++
			case onboarding.TaskInProgress:
				started++
			}
		}
		switch {
		case completed == len(tasks):
			status = onboarding.ProcessCompleted
		case started > 0:
			status = onboarding.ProcessInProgress
		}
	}

	return s.onboardingRepo.UpdateProcessStatus(ctx, processID, status)
}

func mapProcess(p onboarding.Process) onboarding.ProcessResponse {
	employeeName := ""
	if p.EmployeeName != nil {
		employeeName = *p.EmployeeName
	}

	tasks := make([]onboarding.TaskResponse, 0, len(p.Tasks))
	for _, task := range p.Tasks {
		tasks = append(tasks, mapTask(task))
	}

	return onboarding.ProcessResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		EmployeeName:      employeeName,
		StartDate:         p.StartDate.Format("2006-01-02"),
		Status:            string(p.Status),
		Notes:             p.Notes,
		CompletionPercent: p.CompletionPercent(),
		Tasks:             tasks,
	}
}

func mapTask(t onboarding.Task) onboarding.TaskResponse {
	return onboarding.TaskResponse{
		ID:           t.ID,
		OnboardingID: t.OnboardingID,
		Title:        t.Title,
		Description:  t.Description,
		Status:       string(t.Status),
	}
}
