package usecase

import (
	"context"
	"fmt"
	"strconv"

	"github.com/profootgn/league-api/internal/domain/club"
	"github.com/profootgn/league-api/internal/domain/match"
	"github.com/profootgn/league-api/internal/domain/matchevent"
	"github.com/profootgn/league-api/internal/domain/player"
	"github.com/profootgn/league-api/internal/domain/topscorer"
	"github.com/profootgn/league-api/internal/platform/cache"
)

// TopScorerService ranks players by goals in finished matches. Own goals
// and goals with no linked player never count.
type TopScorerService struct {
	goalRepo     matchevent.GoalRepository
	playerRepo   player.Repository
	clubRepo     club.Repository
	cacheStore   *cache.Store
	defaultLimit int
}

func NewTopScorerService(goalRepo matchevent.GoalRepository, playerRepo player.Repository, clubRepo club.Repository, cacheStore *cache.Store, defaultLimit int) *TopScorerService {
	return &TopScorerService{
		goalRepo:     goalRepo,
		playerRepo:   playerRepo,
		clubRepo:     clubRepo,
		cacheStore:   cacheStore,
		defaultLimit: defaultLimit,
	}
}

// Ranking returns the scorer chart over finished matches; includeLive also
// counts goals from matches still in progress.
func (s *TopScorerService) Ranking(ctx context.Context, limit int, includeLive bool) ([]topscorer.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TopScorerService.Ranking")
	defer span.End()

	if limit <= 0 {
		limit = s.defaultLimit
	}

	if s.cacheStore == nil {
		return s.compute(ctx, limit, includeLive)
	}

	key := statsCachePrefix + "topscorers:" + strconv.Itoa(limit)
	if includeLive {
		key = statsCachePrefix + "topscorers:live:" + strconv.Itoa(limit)
	}
	value, err := s.cacheStore.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		return s.compute(ctx, limit, includeLive)
	})
	if err != nil {
		return nil, err
	}
	rows, ok := value.([]topscorer.Row)
	if !ok {
		return nil, fmt.Errorf("unexpected cached top scorers type %T", value)
	}
	return rows, nil
}

func (s *TopScorerService) compute(ctx context.Context, limit int, includeLive bool) ([]topscorer.Row, error) {
	statuses := match.FinishedStatuses()
	if includeLive {
		statuses = append(statuses, match.LiveStatuses()...)
	}
	goals, err := s.goalRepo.ListByMatchStatuses(ctx, statuses)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	playerIDs := make([]int64, 0, len(goals))
	for _, g := range goals {
		if g.IsOwnGoal || g.PlayerID == nil {
			continue
		}
		playerIDs = append(playerIDs, *g.PlayerID)
	}

	entries := topscorer.Tally(playerIDs, limit)
	if len(entries) == 0 {
		return []topscorer.Row{}, nil
	}

	ids := make([]int64, len(entries))
	for i, e := range entries {
		ids[i] = e.PlayerID
	}
	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	byID := make(map[int64]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}

	clubs, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	clubNames := make(map[int64]string, len(clubs))
	for _, c := range clubs {
		clubNames[c.ID] = c.Name
	}

	rows := make([]topscorer.Row, 0, len(entries))
	for i, e := range entries {
		row := topscorer.Row{
			Rank:     i + 1,
			PlayerID: e.PlayerID,
			Goals:    e.Goals,
		}
		if p, ok := byID[e.PlayerID]; ok {
			row.PlayerName = p.FullName()
			row.PlayerNumber = p.Number
			row.PhotoURL = p.PhotoURL
			row.ClubID = p.ClubID
			if p.ClubID != nil {
				row.ClubName = clubNames[*p.ClubID]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
