package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/profootgn/league-api/internal/domain/club"
	"github.com/profootgn/league-api/internal/domain/match"
	"github.com/profootgn/league-api/internal/domain/standings"
	"github.com/profootgn/league-api/internal/platform/cache"
)

const (
	standingsCacheKeyAll  = statsCachePrefix + "standings:all"
	standingsCacheKeyLive = statsCachePrefix + "standings:live"
)

// StandingsService computes the league table from finished matches, with an
// optional live projection that also folds in-progress scores. Results are
// cached and the latest table is persisted as a snapshot so the API can
// still answer when a recompute fails.
type StandingsService struct {
	clubRepo     club.Repository
	matchRepo    match.Repository
	snapshotRepo standings.SnapshotRepository
	cacheStore   *cache.Store
}

func NewStandingsService(clubRepo club.Repository, matchRepo match.Repository, snapshotRepo standings.SnapshotRepository, cacheStore *cache.Store) *StandingsService {
	return &StandingsService{
		clubRepo:     clubRepo,
		matchRepo:    matchRepo,
		snapshotRepo: snapshotRepo,
		cacheStore:   cacheStore,
	}
}

func (s *StandingsService) Table(ctx context.Context, includeLive bool) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Table")
	defer span.End()

	if s.cacheStore == nil {
		return s.compute(ctx, includeLive)
	}

	key := standingsCacheKeyAll
	if includeLive {
		key = standingsCacheKeyLive
	}
	value, err := s.cacheStore.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.compute(ctx, includeLive)
	})
	if err != nil {
		// Serve the last good snapshot rather than an empty table.
		if snap, ok, snapErr := s.snapshotRepo.Get(ctx, includeLive); snapErr == nil && ok {
			return snap.Rows, nil
		}
		return nil, err
	}

	rows, ok := value.([]standings.Row)
	if !ok {
		return nil, fmt.Errorf("unexpected cached standings type %T", value)
	}
	return rows, nil
}

// Refresh recomputes both projections and replaces their snapshots. The
// background refresher calls this on its interval.
func (s *StandingsService) Refresh(ctx context.Context, includeLive bool) ([]standings.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Refresh")
	defer span.End()

	rows, err := s.compute(ctx, includeLive)
	if err != nil {
		return nil, err
	}

	if s.cacheStore != nil {
		key := standingsCacheKeyAll
		if includeLive {
			key = standingsCacheKeyLive
		}
		s.cacheStore.Set(ctx, key, rows)
	}
	return rows, nil
}

func (s *StandingsService) compute(ctx context.Context, includeLive bool) ([]standings.Row, error) {
	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	names := make(map[int64]string, len(clubs))
	for _, c := range clubs {
		names[c.ID] = c.Name
	}

	statuses := match.FinishedStatuses()
	if includeLive {
		statuses = append(statuses, match.LiveStatuses()...)
	}
	matches, err := s.matchRepo.List(ctx, match.ListFilter{Statuses: statuses})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	rows := standings.Compute(names, matches, includeLive)

	if s.snapshotRepo != nil {
		snapshot := standings.Snapshot{Live: includeLive, ComputedAt: time.Now(), Rows: rows}
		if err := s.snapshotRepo.Replace(ctx, snapshot); err != nil {
			return nil, fmt.Errorf("replace standings snapshot: %w", err)
		}
	}
	return rows, nil
}
