package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/profootgn/league-api/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[int64]player.Player
	nextID int64
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	items := make(map[int64]player.Player, len(players))
	var nextID int64
	for _, item := range players {
		items[item.ID] = item
		if item.ID > nextID {
			nextID = item.ID
		}
	}
	return &PlayerRepository{items: items, nextID: nextID}
}

func inScope(p player.Player, clubID *int64) bool {
	if clubID == nil {
		return true
	}
	return p.ClubID != nil && *p.ClubID == *clubID
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i].FullName()), strings.ToLower(out[j].FullName())
		if a != b {
			return a < b
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *PlayerRepository) GetByIDScoped(_ context.Context, id int64, clubID *int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok || !inScope(item, clubID) {
		return player.Player{}, false, nil
	}
	return item, true, nil
}

func (r *PlayerRepository) FindByNumber(_ context.Context, number int, clubID *int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.Number != nil && *item.Number == number && inScope(item, clubID) {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *PlayerRepository) FindByFullName(_ context.Context, first, last string, clubID *int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if strings.EqualFold(item.FirstName, first) && strings.EqualFold(item.LastName, last) && inScope(item, clubID) {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *PlayerRepository) FindBySingleName(_ context.Context, name string, clubID *int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if (strings.EqualFold(item.FirstName, name) || strings.EqualFold(item.LastName, name)) && inScope(item, clubID) {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, ids []int64) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *PlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) Save(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}
