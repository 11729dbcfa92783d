package onboarding

import "context"

type Service interface {
	CreateProcess(ctx context.Context, req CreateProcessRequest) (ProcessResponse, error)
	GetProcess(ctx context.Context, id string) (ProcessResponse, error)
	ListProcesses(ctx context.Context) ([]ProcessResponse, error)
	DeleteProcess(ctx context.Context, id string) error

	AddTask(ctx context.Context, req AddTaskRequest) (TaskResponse, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (TaskResponse, error)
	DeleteTask(ctx context.Context, id string) error
}
