package employee

import "context"

type Service interface {
	Create(ctx context.Context, req UpsertRequest) (Response, error)
	Get(ctx context.Context, id string) (Response, error)
	List(ctx context.Context, filter Filter) (ListResponse, error)
	Update(ctx context.Context, req UpsertRequest) (Response, error)
	Delete(ctx context.Context, id string) error
}
