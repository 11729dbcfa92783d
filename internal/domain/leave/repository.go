package leave

import "context"

type Repository interface {
	Create(ctx context.Context, application Application) (Application, error)
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context, filter Filter) ([]Application, int64, error)
	Update(ctx context.Context, application Application) (Application, error)
	UpdateStatus(ctx context.Context, id string, status Status, reviewedBy *string) error
	Delete(ctx context.Context, id string) error
}
