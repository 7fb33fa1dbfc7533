package round

import "context"

// Repository describes round directory needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Round, error)
	GetByID(ctx context.Context, id int64) (Round, bool, error)
	GetByNumber(ctx context.Context, number int) (Round, bool, error)
	// First returns the lowest round ordered by number then id, used as the
	// fallback when a match is created without an explicit round.
	First(ctx context.Context) (Round, bool, error)
	Create(ctx context.Context, item Round) (Round, error)
	Save(ctx context.Context, item Round) error
}
