package match

import (
	"context"
	"time"
)

// ListFilter narrows match range reads. A nil/empty field means "any".
type ListFilter struct {
	Statuses []string
	RoundID  *int64
	From     *time.Time
	To       *time.Time
	Limit    int
}

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter ListFilter) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	// ExistsFixture reports whether a match between the two clubs, in either
	// home/away orientation, already exists for the round.
	ExistsFixture(ctx context.Context, roundID *int64, clubA, clubB int64) (bool, error)
	Create(ctx context.Context, item Match) (Match, error)
	Save(ctx context.Context, item Match) error
	Delete(ctx context.Context, id int64) (bool, error)
}
