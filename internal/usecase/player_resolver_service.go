package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/profootgn/league-api/internal/domain/eventline"
	"github.com/profootgn/league-api/internal/domain/player"
)

// PlayerResolverService turns parsed actor references into player records.
// Resolution is club-scoped when the event's club is known. An unresolvable
// reference is not an error: the caller skips the line and reports it in the
// batch outcome.
type PlayerResolverService struct {
	playerRepo player.Repository
	autoCreate bool
}

func NewPlayerResolverService(playerRepo player.Repository, autoCreate bool) *PlayerResolverService {
	return &PlayerResolverService{
		playerRepo: playerRepo,
		autoCreate: autoCreate,
	}
}

// Resolve maps one actor reference onto a player. A nil result with nil error
// means the reference could not be resolved and auto-creation was off or not
// applicable.
func (s *PlayerResolverService) Resolve(ctx context.Context, ref *eventline.ActorRef, clubID int64) (*player.Player, error) {
	if ref == nil {
		return nil, nil
	}

	var scope *int64
	if clubID > 0 {
		scope = &clubID
	}

	switch ref.Kind {
	case eventline.ActorByID:
		return s.resolveByID(ctx, ref.ID, scope)
	case eventline.ActorByNumber:
		return s.resolveByNumber(ctx, ref.Number, scope)
	case eventline.ActorByName:
		return s.resolveByName(ctx, ref.Name, scope)
	default:
		return nil, nil
	}
}

func (s *PlayerResolverService) resolveByID(ctx context.Context, id int64, scope *int64) (*player.Player, error) {
	if id <= 0 {
		return nil, nil
	}

	// An id only counts within the event's club. A cross-club id stays
	// unresolved rather than crediting another club's player; the global
	// lookup runs only when no club is in context.
	item, ok, err := s.playerRepo.GetByIDScoped(ctx, id, scope)
	if err != nil {
		return nil, fmt.Errorf("get player by id: %w", err)
	}
	if !ok && scope == nil {
		item, ok, err = s.playerRepo.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get player by id: %w", err)
		}
	}
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *PlayerResolverService) resolveByNumber(ctx context.Context, number int, scope *int64) (*player.Player, error) {
	if number <= 0 {
		return nil, nil
	}

	item, ok, err := s.playerRepo.FindByNumber(ctx, number, scope)
	if err != nil {
		return nil, fmt.Errorf("find player by number: %w", err)
	}
	if ok {
		return &item, nil
	}

	// A shirt number only identifies a player within a club.
	if !s.autoCreate || scope == nil {
		return nil, nil
	}

	n := number
	created, err := s.playerRepo.Create(ctx, player.Player{
		ClubID: scope,
		Number: &n,
	})
	if err != nil {
		return nil, fmt.Errorf("auto-create player number=%d: %w", number, err)
	}
	return &created, nil
}

func (s *PlayerResolverService) resolveByName(ctx context.Context, name string, scope *int64) (*player.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	parts := strings.Fields(name)
	first, last := parts[0], strings.Join(parts[1:], " ")

	var (
		item player.Player
		ok   bool
		err  error
	)
	if last == "" {
		item, ok, err = s.playerRepo.FindBySingleName(ctx, first, scope)
	} else {
		item, ok, err = s.playerRepo.FindByFullName(ctx, first, last, scope)
	}
	if err != nil {
		return nil, fmt.Errorf("find player by name: %w", err)
	}
	if ok {
		return &item, nil
	}

	// A new player needs a club to belong to.
	if !s.autoCreate || scope == nil {
		return nil, nil
	}

	created, err := s.playerRepo.Create(ctx, player.Player{
		ClubID:    scope,
		FirstName: first,
		LastName:  last,
	})
	if err != nil {
		return nil, fmt.Errorf("auto-create player name=%q: %w", name, err)
	}
	return &created, nil
}
