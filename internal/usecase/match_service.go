package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/profootgn/league-api/internal/domain/club"
	"github.com/profootgn/league-api/internal/domain/match"
	"github.com/profootgn/league-api/internal/domain/round"
	"github.com/profootgn/league-api/internal/platform/cache"
)

// MatchService owns the fixture lifecycle: creation with the duplicate
// guard, score and status updates, and the ready-made list views the site
// renders (live, recent, upcoming).
type MatchService struct {
	matchRepo  match.Repository
	clubRepo   club.Repository
	roundRepo  round.Repository
	cacheStore *cache.Store
}

func NewMatchService(matchRepo match.Repository, clubRepo club.Repository, roundRepo round.Repository, cacheStore *cache.Store) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		clubRepo:   clubRepo,
		roundRepo:  roundRepo,
		cacheStore: cacheStore,
	}
}

type CreateMatchInput struct {
	RoundID    *int64
	KickoffAt  time.Time
	HomeClubID int64
	AwayClubID int64
	Status     string
	Venue      string
}

func (s *MatchService) Create(ctx context.Context, input CreateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	item := match.Match{
		RoundID:    input.RoundID,
		KickoffAt:  input.KickoffAt,
		HomeClubID: input.HomeClubID,
		AwayClubID: input.AwayClubID,
		Status:     match.NormalizeStatus(input.Status),
		Venue:      input.Venue,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}

	for _, clubID := range []int64{item.HomeClubID, item.AwayClubID} {
		if _, ok, err := s.clubRepo.GetByID(ctx, clubID); err != nil {
			return match.Match{}, fmt.Errorf("get club: %w", err)
		} else if !ok {
			return match.Match{}, fmt.Errorf("%w: club=%d", ErrNotFound, clubID)
		}
	}

	if item.RoundID == nil {
		// Legacy imports created fixtures without a round; fall back to the
		// first one so every match stays reachable through round filters.
		first, ok, err := s.roundRepo.First(ctx)
		if err != nil {
			return match.Match{}, fmt.Errorf("load first round: %w", err)
		}
		if ok {
			item.RoundID = &first.ID
		}
	} else {
		if _, ok, err := s.roundRepo.GetByID(ctx, *item.RoundID); err != nil {
			return match.Match{}, fmt.Errorf("get round: %w", err)
		} else if !ok {
			return match.Match{}, fmt.Errorf("%w: round=%d", ErrNotFound, *item.RoundID)
		}
	}

	exists, err := s.matchRepo.ExistsFixture(ctx, item.RoundID, item.HomeClubID, item.AwayClubID)
	if err != nil {
		return match.Match{}, fmt.Errorf("check fixture: %w", err)
	}
	if exists {
		return match.Match{}, fmt.Errorf("%w: clubs %d and %d already meet in this round", ErrDuplicateFixture, item.HomeClubID, item.AwayClubID)
	}

	created, err := s.matchRepo.Create(ctx, item)
	if err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	s.invalidateStats(ctx)
	return created, nil
}

func (s *MatchService) GetByID(ctx context.Context, id int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetByID")
	defer span.End()

	if id <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	item, ok, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}
	return item, nil
}

type ListMatchesInput struct {
	Status  string
	RoundID *int64
	Limit   int
}

func (s *MatchService) List(ctx context.Context, input ListMatchesInput) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	filter := match.ListFilter{RoundID: input.RoundID, Limit: input.Limit}
	if input.Status != "" {
		status := match.NormalizeStatus(input.Status)
		if status == match.StatusFullTime {
			// Old rows still carry FINISHED.
			filter.Statuses = match.FinishedStatuses()
		} else {
			filter.Statuses = []string{status}
		}
	}

	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

// Live returns every match currently in progress, half-time included.
func (s *MatchService) Live(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Live")
	defer span.End()

	items, err := s.matchRepo.List(ctx, match.ListFilter{Statuses: match.LiveStatuses()})
	if err != nil {
		return nil, fmt.Errorf("list live matches: %w", err)
	}
	return items, nil
}

// Recent returns finished matches from the trailing window, newest first.
func (s *MatchService) Recent(ctx context.Context, window time.Duration, limit int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Recent")
	defer span.End()

	from := time.Now().Add(-window)
	items, err := s.matchRepo.List(ctx, match.ListFilter{
		Statuses: match.FinishedStatuses(),
		From:     &from,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list recent matches: %w", err)
	}
	return items, nil
}

// Upcoming returns scheduled matches inside the leading window.
func (s *MatchService) Upcoming(ctx context.Context, window time.Duration, limit int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Upcoming")
	defer span.End()

	now := time.Now()
	to := now.Add(window)
	items, err := s.matchRepo.List(ctx, match.ListFilter{
		Statuses: []string{match.StatusScheduled},
		From:     &now,
		To:       &to,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("list upcoming matches: %w", err)
	}
	return items, nil
}

// UpdateMatchInput patches one match. Nil fields keep their value.
type UpdateMatchInput struct {
	RoundID   *int64
	KickoffAt *time.Time
	HomeScore *int
	AwayScore *int
	Status    *string
	Minute    *int
	Venue     *string
}

func (s *MatchService) Update(ctx context.Context, id int64, input UpdateMatchInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	item, err := s.GetByID(ctx, id)
	if err != nil {
		return match.Match{}, err
	}

	if input.RoundID != nil {
		if _, ok, err := s.roundRepo.GetByID(ctx, *input.RoundID); err != nil {
			return match.Match{}, fmt.Errorf("get round: %w", err)
		} else if !ok {
			return match.Match{}, fmt.Errorf("%w: round=%d", ErrNotFound, *input.RoundID)
		}
		item.RoundID = input.RoundID
	}
	if input.KickoffAt != nil {
		item.KickoffAt = *input.KickoffAt
	}
	if input.HomeScore != nil {
		item.HomeScore = input.HomeScore
	}
	if input.AwayScore != nil {
		item.AwayScore = input.AwayScore
	}
	if input.Status != nil {
		item.Status = match.NormalizeStatus(*input.Status)
	}
	if input.Minute != nil {
		item.Minute = *input.Minute
	}
	if input.Venue != nil {
		item.Venue = *input.Venue
	}

	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := s.matchRepo.Save(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("save match: %w", err)
	}

	s.invalidateStats(ctx)
	return item, nil
}

func (s *MatchService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	deleted, err := s.matchRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: match=%d", ErrNotFound, id)
	}

	s.invalidateStats(ctx)
	return nil
}

func (s *MatchService) invalidateStats(ctx context.Context) {
	if s.cacheStore != nil {
		s.cacheStore.DeletePrefix(ctx, statsCachePrefix)
	}
}
