package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/profootgn/league-api/internal/domain/club"
	"github.com/profootgn/league-api/internal/domain/match"
	"github.com/profootgn/league-api/internal/platform/cache"
)

func newStandingsFixture() (*StandingsService, *stubMatchRepository, *stubSnapshotRepository, *cache.Store) {
	clubs := &stubClubRepository{
		items: []club.Club{
			{ID: 10, Name: "Hafia FC"},
			{ID: 20, Name: "Horoya AC"},
			{ID: 30, Name: "AS Kaloum"},
		},
		nextID: 30,
	}
	hs, as := 2, 0
	matches := &stubMatchRepository{
		items: []match.Match{
			{ID: 1, HomeClubID: 10, AwayClubID: 20, HomeScore: &hs, AwayScore: &as, Status: match.StatusFullTime},
		},
		nextID: 1,
	}
	snapshots := &stubSnapshotRepository{}
	store := cache.NewStore(time.Minute)
	return NewStandingsService(clubs, matches, snapshots, store), matches, snapshots, store
}

func TestStandingsService_Table(t *testing.T) {
	t.Parallel()

	svc, _, snapshots, _ := newStandingsFixture()

	rows, err := svc.Table(context.Background(), false)
	if err != nil {
		t.Fatalf("Table error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected every club seeded, got %d rows", len(rows))
	}
	if rows[0].ClubName != "Hafia FC" || rows[0].Points != 3 {
		t.Fatalf("unexpected leader: %+v", rows[0])
	}

	snap, ok, err := snapshots.Get(context.Background(), false)
	if err != nil || !ok {
		t.Fatalf("expected snapshot persisted, got ok=%v err=%v", ok, err)
	}
	if len(snap.Rows) != 3 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestStandingsService_TableUsesCache(t *testing.T) {
	t.Parallel()

	svc, matches, _, _ := newStandingsFixture()

	if _, err := svc.Table(context.Background(), false); err != nil {
		t.Fatalf("Table error: %v", err)
	}

	// A new finished match is invisible until the cache is invalidated.
	hs, as := 1, 0
	matches.items = append(matches.items, match.Match{
		ID: 2, HomeClubID: 30, AwayClubID: 20, HomeScore: &hs, AwayScore: &as, Status: match.StatusFullTime,
	})

	rows, err := svc.Table(context.Background(), false)
	if err != nil {
		t.Fatalf("Table error: %v", err)
	}
	for _, row := range rows {
		if row.ClubID == 30 && row.Played != 0 {
			t.Fatalf("expected cached table, got %+v", row)
		}
	}
}

func TestStandingsService_LiveProjectionSeparateKey(t *testing.T) {
	t.Parallel()

	svc, matches, _, _ := newStandingsFixture()
	hs, as := 1, 1
	matches.items = append(matches.items, match.Match{
		ID: 2, HomeClubID: 30, AwayClubID: 20, HomeScore: &hs, AwayScore: &as, Status: match.StatusLive,
	})

	official, err := svc.Table(context.Background(), false)
	if err != nil {
		t.Fatalf("Table error: %v", err)
	}
	live, err := svc.Table(context.Background(), true)
	if err != nil {
		t.Fatalf("Table error: %v", err)
	}

	var officialKaloum, liveKaloum int
	for _, row := range official {
		if row.ClubID == 30 {
			officialKaloum = row.Played
		}
	}
	for _, row := range live {
		if row.ClubID == 30 {
			liveKaloum = row.Played
		}
	}
	if officialKaloum != 0 || liveKaloum != 1 {
		t.Fatalf("expected live-only match counted in live view: official=%d live=%d", officialKaloum, liveKaloum)
	}
}

func TestStandingsService_RefreshWarmsCache(t *testing.T) {
	t.Parallel()

	svc, matches, _, store := newStandingsFixture()

	if _, err := svc.Refresh(context.Background(), false); err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	if _, ok := store.Get(context.Background(), standingsCacheKeyAll); !ok {
		t.Fatal("expected refresh to warm the cache")
	}

	hs, as := 3, 0
	matches.items = append(matches.items, match.Match{
		ID: 2, HomeClubID: 30, AwayClubID: 10, HomeScore: &hs, AwayScore: &as, Status: match.StatusFullTime,
	})
	rows, err := svc.Refresh(context.Background(), false)
	if err != nil {
		t.Fatalf("Refresh error: %v", err)
	}
	for _, row := range rows {
		if row.ClubID == 30 && row.Points != 3 {
			t.Fatalf("expected refresh to recompute, got %+v", row)
		}
	}
}
