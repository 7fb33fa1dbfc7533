package standings

import (
	"context"
	"time"
)

// Snapshot is a persisted table computation, kept so the API can serve a
// table without re-reading every match.
type Snapshot struct {
	Live       bool
	ComputedAt time.Time
	Rows       []Row
}

// SnapshotRepository persists precomputed tables, one per live flag.
type SnapshotRepository interface {
	Get(ctx context.Context, live bool) (Snapshot, bool, error)
	// Replace swaps the stored snapshot for the given live flag atomically.
	Replace(ctx context.Context, snapshot Snapshot) error
}
