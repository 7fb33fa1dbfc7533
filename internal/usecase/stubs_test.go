package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/profootgn/league-api/internal/domain/club"
	"github.com/profootgn/league-api/internal/domain/match"
	"github.com/profootgn/league-api/internal/domain/matchevent"
	"github.com/profootgn/league-api/internal/domain/player"
	"github.com/profootgn/league-api/internal/domain/round"
	"github.com/profootgn/league-api/internal/domain/standings"
)

type stubClubRepository struct {
	items  []club.Club
	nextID int64
}

func (s *stubClubRepository) List(_ context.Context) ([]club.Club, error) {
	out := make([]club.Club, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubClubRepository) GetByID(_ context.Context, id int64) (club.Club, bool, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return club.Club{}, false, nil
}

func (s *stubClubRepository) GetByName(_ context.Context, name string) (club.Club, bool, error) {
	for _, item := range s.items {
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return club.Club{}, false, nil
}

func (s *stubClubRepository) Create(_ context.Context, item club.Club) (club.Club, error) {
	s.nextID++
	item.ID = s.nextID
	s.items = append(s.items, item)
	return item, nil
}

type stubPlayerRepository struct {
	items  []player.Player
	nextID int64
}

func playerInScope(p player.Player, clubID *int64) bool {
	if clubID == nil {
		return true
	}
	return p.ClubID != nil && *p.ClubID == *clubID
}

func (s *stubPlayerRepository) List(_ context.Context) ([]player.Player, error) {
	out := make([]player.Player, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubPlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (s *stubPlayerRepository) GetByIDScoped(_ context.Context, id int64, clubID *int64) (player.Player, bool, error) {
	for _, item := range s.items {
		if item.ID == id && playerInScope(item, clubID) {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (s *stubPlayerRepository) FindByNumber(_ context.Context, number int, clubID *int64) (player.Player, bool, error) {
	for _, item := range s.items {
		if item.Number != nil && *item.Number == number && playerInScope(item, clubID) {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (s *stubPlayerRepository) FindByFullName(_ context.Context, first, last string, clubID *int64) (player.Player, bool, error) {
	for _, item := range s.items {
		if strings.EqualFold(item.FirstName, first) && strings.EqualFold(item.LastName, last) && playerInScope(item, clubID) {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (s *stubPlayerRepository) FindBySingleName(_ context.Context, name string, clubID *int64) (player.Player, bool, error) {
	for _, item := range s.items {
		if (strings.EqualFold(item.FirstName, name) || strings.EqualFold(item.LastName, name)) && playerInScope(item, clubID) {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (s *stubPlayerRepository) GetByIDs(_ context.Context, ids []int64) ([]player.Player, error) {
	want := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	out := make([]player.Player, 0, len(ids))
	for _, item := range s.items {
		if _, ok := want[item.ID]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubPlayerRepository) Create(_ context.Context, item player.Player) (player.Player, error) {
	s.nextID++
	item.ID = s.nextID
	s.items = append(s.items, item)
	return item, nil
}

func (s *stubPlayerRepository) Save(_ context.Context, item player.Player) error {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return nil
		}
	}
	s.items = append(s.items, item)
	return nil
}

func (s *stubPlayerRepository) Delete(_ context.Context, id int64) (bool, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubRoundRepository struct {
	items  []round.Round
	nextID int64
}

func (s *stubRoundRepository) List(_ context.Context) ([]round.Round, error) {
	out := make([]round.Round, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *stubRoundRepository) GetByID(_ context.Context, id int64) (round.Round, bool, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return round.Round{}, false, nil
}

func (s *stubRoundRepository) GetByNumber(_ context.Context, number int) (round.Round, bool, error) {
	for _, item := range s.items {
		if item.Number != nil && *item.Number == number {
			return item, true, nil
		}
	}
	return round.Round{}, false, nil
}

func (s *stubRoundRepository) First(_ context.Context) (round.Round, bool, error) {
	var best round.Round
	found := false
	for _, item := range s.items {
		if !found {
			best = item
			found = true
			continue
		}
		if roundLess(item, best) {
			best = item
		}
	}
	return best, found, nil
}

func roundLess(a, b round.Round) bool {
	an, bn := 0, 0
	if a.Number != nil {
		an = *a.Number
	}
	if b.Number != nil {
		bn = *b.Number
	}
	if an != bn {
		return an < bn
	}
	return a.ID < b.ID
}

func (s *stubRoundRepository) Create(_ context.Context, item round.Round) (round.Round, error) {
	s.nextID++
	item.ID = s.nextID
	s.items = append(s.items, item)
	return item, nil
}

func (s *stubRoundRepository) Save(_ context.Context, item round.Round) error {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return nil
		}
	}
	s.items = append(s.items, item)
	return nil
}

type stubMatchRepository struct {
	items  []match.Match
	nextID int64
}

func (s *stubMatchRepository) List(_ context.Context, filter match.ListFilter) ([]match.Match, error) {
	out := make([]match.Match, 0, len(s.items))
	for _, item := range s.items {
		if len(filter.Statuses) > 0 && !containsFold(filter.Statuses, item.Status) {
			continue
		}
		if filter.RoundID != nil && (item.RoundID == nil || *item.RoundID != *filter.RoundID) {
			continue
		}
		if filter.From != nil && item.KickoffAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && item.KickoffAt.After(*filter.To) {
			continue
		}
		out = append(out, item)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func containsFold(items []string, want string) bool {
	for _, item := range items {
		if strings.EqualFold(item, want) {
			return true
		}
	}
	return false
}

func (s *stubMatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (s *stubMatchRepository) ExistsFixture(_ context.Context, roundID *int64, clubA, clubB int64) (bool, error) {
	for _, item := range s.items {
		if roundID != nil && (item.RoundID == nil || *item.RoundID != *roundID) {
			continue
		}
		if roundID == nil && item.RoundID != nil {
			continue
		}
		sameOrder := item.HomeClubID == clubA && item.AwayClubID == clubB
		flipped := item.HomeClubID == clubB && item.AwayClubID == clubA
		if sameOrder || flipped {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubMatchRepository) Create(_ context.Context, item match.Match) (match.Match, error) {
	s.nextID++
	item.ID = s.nextID
	s.items = append(s.items, item)
	return item, nil
}

func (s *stubMatchRepository) Save(_ context.Context, item match.Match) error {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return nil
		}
	}
	s.items = append(s.items, item)
	return nil
}

func (s *stubMatchRepository) Delete(_ context.Context, id int64) (bool, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubGoalRepository struct {
	items      []matchevent.Goal
	byStatuses map[string][]matchevent.Goal
	nextID     int64
}

func (s *stubGoalRepository) ListByMatch(_ context.Context, matchID int64) ([]matchevent.Goal, error) {
	out := make([]matchevent.Goal, 0)
	for _, item := range s.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubGoalRepository) ListByMatchStatuses(_ context.Context, statuses []string) ([]matchevent.Goal, error) {
	out := make([]matchevent.Goal, 0)
	for _, status := range statuses {
		out = append(out, s.byStatuses[status]...)
	}
	return out, nil
}

func (s *stubGoalRepository) GetByID(_ context.Context, id int64) (matchevent.Goal, bool, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return matchevent.Goal{}, false, nil
}

func (s *stubGoalRepository) Save(_ context.Context, item matchevent.Goal) error {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return nil
		}
	}
	if item.ID == 0 {
		s.nextID++
		item.ID = s.nextID
	}
	s.items = append(s.items, item)
	return nil
}

func (s *stubGoalRepository) Delete(_ context.Context, id int64) (bool, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubCardRepository struct {
	items  []matchevent.Card
	nextID int64
}

func (s *stubCardRepository) ListByMatch(_ context.Context, matchID int64) ([]matchevent.Card, error) {
	out := make([]matchevent.Card, 0)
	for _, item := range s.items {
		if item.MatchID == matchID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubCardRepository) GetByID(_ context.Context, id int64) (matchevent.Card, bool, error) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true, nil
		}
	}
	return matchevent.Card{}, false, nil
}

func (s *stubCardRepository) Save(_ context.Context, item matchevent.Card) error {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return nil
		}
	}
	if item.ID == 0 {
		s.nextID++
		item.ID = s.nextID
	}
	s.items = append(s.items, item)
	return nil
}

func (s *stubCardRepository) Delete(_ context.Context, id int64) (bool, error) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type stubEventStore struct {
	goals  *stubGoalRepository
	cards  *stubCardRepository
	failed bool
	err    error
}

func (s *stubEventStore) CreateBatch(ctx context.Context, goals []matchevent.Goal, cards []matchevent.Card) error {
	if s.err != nil {
		s.failed = true
		return s.err
	}
	for _, g := range goals {
		if err := s.goals.Save(ctx, g); err != nil {
			return err
		}
	}
	for _, c := range cards {
		if err := s.cards.Save(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

type stubSnapshotRepository struct {
	byLive map[bool]standings.Snapshot
}

func (s *stubSnapshotRepository) Get(_ context.Context, live bool) (standings.Snapshot, bool, error) {
	snap, ok := s.byLive[live]
	return snap, ok, nil
}

func (s *stubSnapshotRepository) Replace(_ context.Context, snapshot standings.Snapshot) error {
	if s.byLive == nil {
		s.byLive = make(map[bool]standings.Snapshot)
	}
	if snapshot.ComputedAt.IsZero() {
		snapshot.ComputedAt = time.Now()
	}
	s.byLive[snapshot.Live] = snapshot
	return nil
}
