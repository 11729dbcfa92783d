package performance

import "context"

type Repository interface {
	Create(ctx context.Context, review Review) (Review, error)
	GetByID(ctx context.Context, id string) (Review, error)
	List(ctx context.Context, filter Filter) ([]Review, int64, error)
	Update(ctx context.Context, review Review) (Review, error)
	Delete(ctx context.Context, id string) error
}
