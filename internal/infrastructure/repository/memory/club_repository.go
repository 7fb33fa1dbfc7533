package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/profootgn/league-api/internal/domain/club"
)

type ClubRepository struct {
	mu     sync.RWMutex
	items  map[int64]club.Club
	nextID int64
}

func NewClubRepository(clubs []club.Club) *ClubRepository {
	items := make(map[int64]club.Club, len(clubs))
	var nextID int64
	for _, item := range clubs {
		items[item.ID] = item
		if item.ID > nextID {
			nextID = item.ID
		}
	}
	return &ClubRepository{items: items, nextID: nextID}
}

func (r *ClubRepository) List(_ context.Context) ([]club.Club, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]club.Club, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *ClubRepository) GetByID(_ context.Context, id int64) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *ClubRepository) GetByName(_ context.Context, name string) (club.Club, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return club.Club{}, false, nil
}

func (r *ClubRepository) Create(_ context.Context, item club.Club) (club.Club, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	r.items[item.ID] = item
	return item, nil
}
