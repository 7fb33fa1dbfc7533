package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/profootgn/league-api/internal/domain/match"
)

type MatchRepository struct {
	mu     sync.RWMutex
	items  map[int64]match.Match
	nextID int64
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make(map[int64]match.Match, len(matches))
	var nextID int64
	for _, item := range matches {
		items[item.ID] = item
		if item.ID > nextID {
			nextID = item.ID
		}
	}
	return &MatchRepository{items: items, nextID: nextID}
}

func (r *MatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.items))
	for _, item := range r.items {
		if len(filter.Statuses) > 0 && !statusIn(filter.Statuses, item.Status) {
			continue
		}
		if filter.RoundID != nil && (item.RoundID == nil || *item.RoundID != *filter.RoundID) {
			continue
		}
		if filter.From != nil && item.KickoffAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && item.KickoffAt.After(*filter.To) {
			continue
		}
		out = append(out, item)
	}

	// Newest first, matching the SQL ordering.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.After(out[j].KickoffAt)
		}
		return out[i].ID > out[j].ID
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func statusIn(statuses []string, status string) bool {
	for _, s := range statuses {
		if strings.EqualFold(s, status) {
			return true
		}
	}
	return false
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *MatchRepository) ExistsFixture(_ context.Context, roundID *int64, clubA, clubB int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if roundID != nil && (item.RoundID == nil || *item.RoundID != *roundID) {
			continue
		}
		if roundID == nil && item.RoundID != nil {
			continue
		}
		if (item.HomeClubID == clubA && item.AwayClubID == clubB) ||
			(item.HomeClubID == clubB && item.AwayClubID == clubA) {
			return true, nil
		}
	}
	return false, nil
}

func (r *MatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}

func (r *MatchRepository) Save(_ context.Context, item match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *MatchRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}
