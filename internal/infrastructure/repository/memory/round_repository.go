package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/profootgn/league-api/internal/domain/round"
)

type RoundRepository struct {
	mu     sync.RWMutex
	items  map[int64]round.Round
	nextID int64
}

func NewRoundRepository(rounds []round.Round) *RoundRepository {
	items := make(map[int64]round.Round, len(rounds))
	var nextID int64
	for _, item := range rounds {
		items[item.ID] = item
		if item.ID > nextID {
			nextID = item.ID
		}
	}
	return &RoundRepository{items: items, nextID: nextID}
}

func roundBefore(a, b round.Round) bool {
	an, bn := 0, 0
	if a.Number != nil {
		an = *a.Number
	}
	if b.Number != nil {
		bn = *b.Number
	}
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}

func (r *RoundRepository) List(_ context.Context) ([]round.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]round.Round, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return roundBefore(out[i], out[j]) })
	return out, nil
}

func (r *RoundRepository) GetByID(_ context.Context, id int64) (round.Round, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *RoundRepository) GetByNumber(_ context.Context, number int) (round.Round, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Number != nil && *item.Number == number {
			return item, true, nil
		}
	}
	return round.Round{}, false, nil
}

func (r *RoundRepository) First(_ context.Context) (round.Round, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best round.Round
	found := false
	for _, item := range r.items {
		if !found || roundBefore(item, best) {
			best = item
			found = true
		}
	}
	return best, found, nil
}

func (r *RoundRepository) Create(_ context.Context, item round.Round) (round.Round, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}

func (r *RoundRepository) Save(_ context.Context, item round.Round) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}
