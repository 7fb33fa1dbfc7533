package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/profootgn/league-api/internal/domain/eventline"
	"github.com/profootgn/league-api/internal/domain/match"
	"github.com/profootgn/league-api/internal/domain/matchevent"
	"github.com/profootgn/league-api/internal/platform/cache"
)

// statsCachePrefix groups every cached aggregate so one eviction covers
// standings and scorer charts after any event mutation.
const statsCachePrefix = "stats:"

const (
	eventLineCreated = "created"
	eventLineSkipped = "skipped"
)

// Batch sections, named after the admin form fields they come from.
const (
	SectionHomeGoals = "home_goals"
	SectionAwayGoals = "away_goals"
	SectionHomeCards = "home_cards"
	SectionAwayCards = "away_cards"
)

type EventBatchInput struct {
	MatchID   int64
	HomeGoals string
	AwayGoals string
	HomeCards string
	AwayCards string
}

// EventLineOutcome reports what happened to one submitted line. Blank lines
// are dropped silently and never produce an outcome.
type EventLineOutcome struct {
	Section string `json:"section"`
	Line    string `json:"line"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type EventBatchResult struct {
	MatchID      int64              `json:"match_id"`
	GoalsCreated int                `json:"goals_created"`
	CardsCreated int                `json:"cards_created"`
	SkippedCount int                `json:"skipped_count"`
	Lines        []EventLineOutcome `json:"lines"`
}

// EventEntryService turns admin-entered event text into stored goals and
// cards. Parsing and player resolution happen first; storage is a single
// atomic batch, so a write failure never leaves half a submission behind.
type EventEntryService struct {
	matchRepo  match.Repository
	goalRepo   matchevent.GoalRepository
	cardRepo   matchevent.CardRepository
	store      matchevent.Store
	resolver   *PlayerResolverService
	profile    matchevent.Profile
	cacheStore *cache.Store
}

func NewEventEntryService(
	matchRepo match.Repository,
	goalRepo matchevent.GoalRepository,
	cardRepo matchevent.CardRepository,
	store matchevent.Store,
	resolver *PlayerResolverService,
	profile matchevent.Profile,
	cacheStore *cache.Store,
) *EventEntryService {
	return &EventEntryService{
		matchRepo:  matchRepo,
		goalRepo:   goalRepo,
		cardRepo:   cardRepo,
		store:      store,
		resolver:   resolver,
		profile:    profile,
		cacheStore: cacheStore,
	}
}

func (s *EventEntryService) SubmitBatch(ctx context.Context, input EventBatchInput) (EventBatchResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventEntryService.SubmitBatch")
	defer span.End()

	if input.MatchID <= 0 {
		return EventBatchResult{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	m, ok, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		return EventBatchResult{}, fmt.Errorf("get match: %w", err)
	}
	if !ok {
		return EventBatchResult{}, fmt.Errorf("%w: match=%d", ErrNotFound, input.MatchID)
	}

	result := EventBatchResult{MatchID: m.ID}
	var goals []matchevent.Goal
	var cards []matchevent.Card

	goalSections := []struct {
		name   string
		text   string
		clubID int64
	}{
		{SectionHomeGoals, input.HomeGoals, m.HomeClubID},
		{SectionAwayGoals, input.AwayGoals, m.AwayClubID},
	}
	for _, section := range goalSections {
		for _, line := range splitLines(section.text) {
			goal, outcome, err := s.buildGoal(ctx, m.ID, section.clubID, section.name, line)
			if err != nil {
				return EventBatchResult{}, err
			}
			result.Lines = append(result.Lines, outcome)
			if outcome.Status == eventLineCreated {
				goals = append(goals, goal)
			} else {
				result.SkippedCount++
			}
		}
	}

	cardSections := []struct {
		name   string
		text   string
		clubID int64
	}{
		{SectionHomeCards, input.HomeCards, m.HomeClubID},
		{SectionAwayCards, input.AwayCards, m.AwayClubID},
	}
	for _, section := range cardSections {
		for _, line := range splitLines(section.text) {
			card, outcome, err := s.buildCard(ctx, m.ID, section.clubID, section.name, line)
			if err != nil {
				return EventBatchResult{}, err
			}
			result.Lines = append(result.Lines, outcome)
			if outcome.Status == eventLineCreated {
				cards = append(cards, card)
			} else {
				result.SkippedCount++
			}
		}
	}

	if len(goals) > 0 || len(cards) > 0 {
		if err := s.store.CreateBatch(ctx, goals, cards); err != nil {
			return EventBatchResult{}, fmt.Errorf("store event batch match=%d: %w", m.ID, err)
		}
	}

	result.GoalsCreated = len(goals)
	result.CardsCreated = len(cards)
	s.invalidateStats(ctx)
	return result, nil
}

func (s *EventEntryService) buildGoal(ctx context.Context, matchID, clubID int64, section, line string) (matchevent.Goal, EventLineOutcome, error) {
	outcome := EventLineOutcome{Section: section, Line: line}

	event, ok := eventline.ParseGoalLine(line)
	if !ok {
		outcome.Status = eventLineSkipped
		outcome.Message = "empty line"
		return matchevent.Goal{}, outcome, nil
	}

	scorer, err := s.resolver.Resolve(ctx, event.Scorer, clubID)
	if err != nil {
		return matchevent.Goal{}, outcome, fmt.Errorf("resolve scorer %q: %w", line, err)
	}
	if scorer == nil {
		outcome.Status = eventLineSkipped
		outcome.Message = "scorer not resolved"
		return matchevent.Goal{}, outcome, nil
	}

	goal := matchevent.Goal{
		MatchID:  matchID,
		ClubID:   clubID,
		PlayerID: &scorer.ID,
		Minute:   event.Minute,
	}

	assist, err := s.resolver.Resolve(ctx, event.Assist, clubID)
	if err != nil {
		return matchevent.Goal{}, outcome, fmt.Errorf("resolve assist %q: %w", line, err)
	}
	switch {
	case assist != nil:
		goal.AssistPlayerID = &assist.ID
	case event.Assist != nil && event.Assist.Kind == eventline.ActorByName:
		// Keep the raw text so the name is not lost when the directory
		// has no matching player.
		goal.AssistName = event.Assist.Name
	}

	s.profile.ApplyGoalFlags(&goal, event.IsPenalty, event.IsOwnGoal)

	outcome.Status = eventLineCreated
	return goal, outcome, nil
}

func (s *EventEntryService) buildCard(ctx context.Context, matchID, clubID int64, section, line string) (matchevent.Card, EventLineOutcome, error) {
	outcome := EventLineOutcome{Section: section, Line: line}

	event, ok := eventline.ParseCardLine(line)
	if !ok {
		outcome.Status = eventLineSkipped
		if strings.TrimSpace(line) == "" {
			outcome.Message = "empty line"
		} else {
			outcome.Message = "no player reference on line"
		}
		return matchevent.Card{}, outcome, nil
	}

	who, err := s.resolver.Resolve(ctx, event.Player, clubID)
	if err != nil {
		return matchevent.Card{}, outcome, fmt.Errorf("resolve card player %q: %w", line, err)
	}
	if who == nil {
		outcome.Status = eventLineSkipped
		outcome.Message = "player not resolved"
		return matchevent.Card{}, outcome, nil
	}

	card := matchevent.Card{
		MatchID:  matchID,
		ClubID:   clubID,
		PlayerID: &who.ID,
		Minute:   event.Minute,
	}

	s.profile.ApplyCardColor(&card, string(event.Color))

	outcome.Status = eventLineCreated
	return card, outcome, nil
}

// MatchEvents is the combined event view for one match.
type MatchEvents struct {
	Goals []matchevent.Goal `json:"goals"`
	Cards []matchevent.Card `json:"cards"`
}

func (s *EventEntryService) ListByMatch(ctx context.Context, matchID int64) (MatchEvents, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventEntryService.ListByMatch")
	defer span.End()

	if matchID <= 0 {
		return MatchEvents{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if _, ok, err := s.matchRepo.GetByID(ctx, matchID); err != nil {
		return MatchEvents{}, fmt.Errorf("get match: %w", err)
	} else if !ok {
		return MatchEvents{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}

	goals, err := s.goalRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchEvents{}, fmt.Errorf("list goals: %w", err)
	}
	cards, err := s.cardRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return MatchEvents{}, fmt.Errorf("list cards: %w", err)
	}

	return MatchEvents{Goals: goals, Cards: cards}, nil
}

// UpdateGoalInput patches one stored goal. Nil fields keep their value;
// the Clear flags reset the nullable references.
type UpdateGoalInput struct {
	Minute         *int
	PlayerID       *int64
	ClearPlayer    bool
	AssistPlayerID *int64
	ClearAssist    bool
	AssistName     *string
	IsPenalty      *bool
	IsOwnGoal      *bool
}

func (s *EventEntryService) UpdateGoal(ctx context.Context, id int64, input UpdateGoalInput) (matchevent.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventEntryService.UpdateGoal")
	defer span.End()

	if id <= 0 {
		return matchevent.Goal{}, fmt.Errorf("%w: goal id is required", ErrInvalidInput)
	}
	goal, ok, err := s.goalRepo.GetByID(ctx, id)
	if err != nil {
		return matchevent.Goal{}, fmt.Errorf("get goal: %w", err)
	}
	if !ok {
		return matchevent.Goal{}, fmt.Errorf("%w: goal=%d", ErrNotFound, id)
	}

	if input.Minute != nil {
		if *input.Minute < 0 {
			return matchevent.Goal{}, fmt.Errorf("%w: minute cannot be negative", ErrInvalidInput)
		}
		goal.Minute = *input.Minute
	}
	if input.ClearPlayer {
		goal.PlayerID = nil
	} else if input.PlayerID != nil {
		goal.PlayerID = input.PlayerID
	}
	if input.ClearAssist {
		goal.AssistPlayerID = nil
		goal.AssistName = ""
	} else {
		if input.AssistPlayerID != nil {
			goal.AssistPlayerID = input.AssistPlayerID
		}
		if input.AssistName != nil {
			goal.AssistName = strings.TrimSpace(*input.AssistName)
		}
	}

	isPenalty := s.profile.GoalIsPenalty(goal)
	isOwnGoal := s.profile.GoalIsOwnGoal(goal)
	if input.IsPenalty != nil {
		isPenalty = *input.IsPenalty
	}
	if input.IsOwnGoal != nil {
		isOwnGoal = *input.IsOwnGoal
	}
	s.profile.ApplyGoalFlags(&goal, isPenalty, isOwnGoal)

	if err := s.goalRepo.Save(ctx, goal); err != nil {
		return matchevent.Goal{}, fmt.Errorf("save goal: %w", err)
	}

	s.invalidateStats(ctx)
	return goal, nil
}

func (s *EventEntryService) DeleteGoal(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventEntryService.DeleteGoal")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: goal id is required", ErrInvalidInput)
	}
	deleted, err := s.goalRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: goal=%d", ErrNotFound, id)
	}

	s.invalidateStats(ctx)
	return nil
}

// UpdateCardInput patches one stored card.
type UpdateCardInput struct {
	Minute      *int
	PlayerID    *int64
	ClearPlayer bool
	Color       *string
}

func (s *EventEntryService) UpdateCard(ctx context.Context, id int64, input UpdateCardInput) (matchevent.Card, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventEntryService.UpdateCard")
	defer span.End()

	if id <= 0 {
		return matchevent.Card{}, fmt.Errorf("%w: card id is required", ErrInvalidInput)
	}
	card, ok, err := s.cardRepo.GetByID(ctx, id)
	if err != nil {
		return matchevent.Card{}, fmt.Errorf("get card: %w", err)
	}
	if !ok {
		return matchevent.Card{}, fmt.Errorf("%w: card=%d", ErrNotFound, id)
	}

	if input.Minute != nil {
		if *input.Minute < 0 {
			return matchevent.Card{}, fmt.Errorf("%w: minute cannot be negative", ErrInvalidInput)
		}
		card.Minute = *input.Minute
	}
	if input.ClearPlayer {
		card.PlayerID = nil
	} else if input.PlayerID != nil {
		card.PlayerID = input.PlayerID
	}
	if input.Color != nil {
		s.profile.ApplyCardColor(&card, string(eventline.NormalizeCardColor(*input.Color)))
	}

	if err := s.cardRepo.Save(ctx, card); err != nil {
		return matchevent.Card{}, fmt.Errorf("save card: %w", err)
	}

	s.invalidateStats(ctx)
	return card, nil
}

func (s *EventEntryService) DeleteCard(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.EventEntryService.DeleteCard")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: card id is required", ErrInvalidInput)
	}
	deleted, err := s.cardRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: card=%d", ErrNotFound, id)
	}

	s.invalidateStats(ctx)
	return nil
}

func (s *EventEntryService) invalidateStats(ctx context.Context) {
	if s.cacheStore != nil {
		s.cacheStore.DeletePrefix(ctx, statsCachePrefix)
	}
}

func splitLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
