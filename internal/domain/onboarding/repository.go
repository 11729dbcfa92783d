package onboarding

import "context"

type Repository interface {
	CreateProcess(ctx context.Context, process Process) (Process, error)
	GetProcessByID(ctx context.Context, id string) (Process, error)
	ListProcesses(ctx context.Context) ([]Process, error)
	UpdateProcessStatus(ctx context.Context, id string, status ProcessStatus) error
	DeleteProcess(ctx context.Context, id string) error

	AddTask(ctx context.Context, task Task) (Task, error)
	GetTaskByID(ctx context.Context, id string) (Task, error)
	UpdateTaskStatus(ctx context.Context, id string, status TaskStatus) error
	DeleteTask(ctx context.Context, id string) error
	GetTasksByProcessID(ctx context.Context, processID string) ([]Task, error)
}
