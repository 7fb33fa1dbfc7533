package player

import "context"

// Repository describes player directory needs from use cases. Lookups taking
// a clubID pointer are club-scoped when it is non-nil.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByIDScoped(ctx context.Context, id int64, clubID *int64) (Player, bool, error)
	FindByNumber(ctx context.Context, number int, clubID *int64) (Player, bool, error)
	// FindByFullName matches (first, last) exactly, case-insensitively.
	FindByFullName(ctx context.Context, first, last string, clubID *int64) (Player, bool, error)
	// FindBySingleName matches players whose first OR last name equals the
	// given string, case-insensitively.
	FindBySingleName(ctx context.Context, name string, clubID *int64) (Player, bool, error)
	GetByIDs(ctx context.Context, ids []int64) ([]Player, error)
	Create(ctx context.Context, item Player) (Player, error)
	Save(ctx context.Context, item Player) error
	Delete(ctx context.Context, id int64) (bool, error)
}
