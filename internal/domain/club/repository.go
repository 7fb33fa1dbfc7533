package club

import "context"

// Repository describes club directory needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Club, error)
	GetByID(ctx context.Context, id int64) (Club, bool, error)
	GetByName(ctx context.Context, name string) (Club, bool, error)
	Create(ctx context.Context, item Club) (Club, error)
}
