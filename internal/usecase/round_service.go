package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/profootgn/league-api/internal/domain/round"
)

type RoundService struct {
	roundRepo round.Repository
}

func NewRoundService(roundRepo round.Repository) *RoundService {
	return &RoundService{roundRepo: roundRepo}
}

func (s *RoundService) List(ctx context.Context) ([]round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.List")
	defer span.End()

	items, err := s.roundRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	return items, nil
}

func (s *RoundService) GetByID(ctx context.Context, id int64) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.GetByID")
	defer span.End()

	if id <= 0 {
		return round.Round{}, fmt.Errorf("%w: round id is required", ErrInvalidInput)
	}
	item, ok, err := s.roundRepo.GetByID(ctx, id)
	if err != nil {
		return round.Round{}, fmt.Errorf("get round: %w", err)
	}
	if !ok {
		return round.Round{}, fmt.Errorf("%w: round=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *RoundService) Create(ctx context.Context, item round.Round) (round.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.Create")
	defer span.End()

	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return round.Round{}, fmt.Errorf("%w: round name is required", ErrInvalidInput)
	}
	if item.Number == nil {
		if n := round.InferNumberFromName(item.Name); n > 0 {
			item.Number = &n
		}
	}
	if item.Number != nil {
		if existing, ok, err := s.roundRepo.GetByNumber(ctx, *item.Number); err != nil {
			return round.Round{}, fmt.Errorf("get round by number: %w", err)
		} else if ok {
			return round.Round{}, fmt.Errorf("%w: round %d already exists as %q", ErrInvalidInput, *item.Number, existing.Name)
		}
	}

	created, err := s.roundRepo.Create(ctx, item)
	if err != nil {
		return round.Round{}, fmt.Errorf("create round: %w", err)
	}
	return created, nil
}

// EnsureSeeded creates J1..Jtotal so a fresh season has its full calendar
// before any fixture is entered. Existing rounds are left alone.
func (s *RoundService) EnsureSeeded(ctx context.Context, total int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RoundService.EnsureSeeded")
	defer span.End()

	if total <= 0 {
		return 0, fmt.Errorf("%w: rounds total must be positive", ErrInvalidInput)
	}

	created := 0
	for n := 1; n <= total; n++ {
		if _, ok, err := s.roundRepo.GetByNumber(ctx, n); err != nil {
			return created, fmt.Errorf("get round by number: %w", err)
		} else if ok {
			continue
		}
		number := n
		if _, err := s.roundRepo.Create(ctx, round.Round{Number: &number, Name: "J" + strconv.Itoa(n)}); err != nil {
			return created, fmt.Errorf("create round %d: %w", n, err)
		}
		created++
	}
	return created, nil
}
