package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/profootgn/league-api/internal/domain/matchevent"
)

// matchStatusReader is the slice of the match repository the event reads
// need to resolve a goal's parent status.
type matchStatusReader interface {
	statusByMatch(matchID int64) (string, bool)
}

func (r *MatchRepository) statusByMatch(matchID int64) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[matchID]
	if !ok {
		return "", false
	}
	return item.Status, true
}

type GoalRepository struct {
	mu      sync.RWMutex
	items   map[int64]matchevent.Goal
	nextID  int64
	matches matchStatusReader
}

func NewGoalRepository(goals []matchevent.Goal, matches *MatchRepository) *GoalRepository {
	items := make(map[int64]matchevent.Goal, len(goals))
	var nextID int64
	for _, item := range goals {
		items[item.ID] = item
		if item.ID > nextID {
			nextID = item.ID
		}
	}
	return &GoalRepository{items: items, nextID: nextID, matches: matches}
}

func sortGoals(out []matchevent.Goal) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minute != out[j].Minute {
			return out[i].Minute < out[j].Minute
		}
		return out[i].ID < out[j].ID
	})
}

func (r *GoalRepository) ListByMatch(_ context.Context, matchID int64) ([]matchevent.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchevent.Goal, 0)
	for _, item := range r.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sortGoals(out)
	return out, nil
}

func (r *GoalRepository) ListByMatchStatuses(_ context.Context, statuses []string) ([]matchevent.Goal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchevent.Goal, 0)
	for _, item := range r.items {
		status, ok := r.matches.statusByMatch(item.MatchID)
		if !ok || !statusIn(statuses, status) {
			continue
		}
		out = append(out, item)
	}
	sortGoals(out)
	return out, nil
}

func (r *GoalRepository) GetByID(_ context.Context, id int64) (matchevent.Goal, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *GoalRepository) Save(_ context.Context, item matchevent.Goal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saveLocked(item)
	return nil
}

func (r *GoalRepository) saveLocked(item matchevent.Goal) {
	if item.ID == 0 {
		r.nextID++
		item.ID = r.nextID
	} else if item.ID > r.nextID {
		r.nextID = item.ID
	}
	r.items[item.ID] = item
}

func (r *GoalRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

type CardRepository struct {
	mu     sync.RWMutex
	items  map[int64]matchevent.Card
	nextID int64
}

func NewCardRepository(cards []matchevent.Card) *CardRepository {
	items := make(map[int64]matchevent.Card, len(cards))
	var nextID int64
	for _, item := range cards {
		items[item.ID] = item
		if item.ID > nextID {
			nextID = item.ID
		}
	}
	return &CardRepository{items: items, nextID: nextID}
}

func (r *CardRepository) ListByMatch(_ context.Context, matchID int64) ([]matchevent.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]matchevent.Card, 0)
	for _, item := range r.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minute != out[j].Minute {
			return out[i].Minute < out[j].Minute
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *CardRepository) GetByID(_ context.Context, id int64) (matchevent.Card, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *CardRepository) Save(_ context.Context, item matchevent.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saveLocked(item)
	return nil
}

func (r *CardRepository) saveLocked(item matchevent.Card) {
	if item.ID == 0 {
		r.nextID++
		item.ID = r.nextID
	} else if item.ID > r.nextID {
		r.nextID = item.ID
	}
	r.items[item.ID] = item
}

func (r *CardRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// EventStore commits a whole submitted batch under both repository locks so
// readers never observe half a submission.
type EventStore struct {
	goals *GoalRepository
	cards *CardRepository
}

func NewEventStore(goals *GoalRepository, cards *CardRepository) *EventStore {
	return &EventStore{goals: goals, cards: cards}
}

func (s *EventStore) CreateBatch(_ context.Context, goals []matchevent.Goal, cards []matchevent.Card) error {
	s.goals.mu.Lock()
	defer s.goals.mu.Unlock()
	s.cards.mu.Lock()
	defer s.cards.mu.Unlock()

	for _, g := range goals {
		s.goals.saveLocked(g)
	}
	for _, c := range cards {
		s.cards.saveLocked(c)
	}
	return nil
}
