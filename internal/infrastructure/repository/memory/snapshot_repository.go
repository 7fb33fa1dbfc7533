package memory

import (
	"context"
	"sync"

	"github.com/profootgn/league-api/internal/domain/standings"
)

type SnapshotRepository struct {
	mu     sync.RWMutex
	byLive map[bool]standings.Snapshot
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{byLive: make(map[bool]standings.Snapshot)}
}

func (r *SnapshotRepository) Get(_ context.Context, live bool) (standings.Snapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snap, ok := r.byLive[live]
	return snap, ok, nil
}

func (r *SnapshotRepository) Replace(_ context.Context, snapshot standings.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]standings.Row, len(snapshot.Rows))
	copy(rows, snapshot.Rows)
	snapshot.Rows = rows
	r.byLive[snapshot.Live] = snapshot
	return nil
}
