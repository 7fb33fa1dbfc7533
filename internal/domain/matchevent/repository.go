package matchevent

import "context"

// GoalRepository describes goal persistence needs from use cases. Reads are
// ordered by minute then id, the only display order used anywhere.
type GoalRepository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Goal, error)
	// ListByMatchStatuses returns goals whose parent match status is in the
	// given set, for scorer aggregation.
	ListByMatchStatuses(ctx context.Context, statuses []string) ([]Goal, error)
	GetByID(ctx context.Context, id int64) (Goal, bool, error)
	Save(ctx context.Context, item Goal) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// CardRepository describes card persistence needs from use cases.
type CardRepository interface {
	ListByMatch(ctx context.Context, matchID int64) ([]Card, error)
	GetByID(ctx context.Context, id int64) (Card, bool, error)
	Save(ctx context.Context, item Card) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// Store materializes one submitted batch atomically: either every goal and
// card is committed or none is, so a storage failure mid-batch never leaves
// a partial submission behind.
type Store interface {
	CreateBatch(ctx context.Context, goals []Goal, cards []Card) error
}
