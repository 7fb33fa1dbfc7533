package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/profootgn/league-api/internal/domain/club"
)

type ClubService struct {
	clubRepo club.Repository
}

func NewClubService(clubRepo club.Repository) *ClubService {
	return &ClubService{clubRepo: clubRepo}
}

func (s *ClubService) List(ctx context.Context) ([]club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.List")
	defer span.End()

	items, err := s.clubRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list clubs: %w", err)
	}
	return items, nil
}

func (s *ClubService) GetByID(ctx context.Context, id int64) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.GetByID")
	defer span.End()

	if id <= 0 {
		return club.Club{}, fmt.Errorf("%w: club id is required", ErrInvalidInput)
	}
	item, ok, err := s.clubRepo.GetByID(ctx, id)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club: %w", err)
	}
	if !ok {
		return club.Club{}, fmt.Errorf("%w: club=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *ClubService) Create(ctx context.Context, item club.Club) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Create")
	defer span.End()

	item.Name = strings.TrimSpace(item.Name)
	if err := item.Validate(); err != nil {
		return club.Club{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if _, ok, err := s.clubRepo.GetByName(ctx, item.Name); err != nil {
		return club.Club{}, fmt.Errorf("get club by name: %w", err)
	} else if ok {
		return club.Club{}, fmt.Errorf("%w: club %q already exists", ErrInvalidInput, item.Name)
	}

	created, err := s.clubRepo.Create(ctx, item)
	if err != nil {
		return club.Club{}, fmt.Errorf("create club: %w", err)
	}
	return created, nil
}

// Resolve returns the club named name, creating it when missing. Import
// scripts call this so a typo'd club still lands somewhere visible instead
// of failing the whole upload.
func (s *ClubService) Resolve(ctx context.Context, name string) (club.Club, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubService.Resolve")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return club.Club{}, fmt.Errorf("%w: club name is required", ErrInvalidInput)
	}
	item, ok, err := s.clubRepo.GetByName(ctx, name)
	if err != nil {
		return club.Club{}, fmt.Errorf("get club by name: %w", err)
	}
	if ok {
		return item, nil
	}

	created, err := s.clubRepo.Create(ctx, club.Club{Name: name})
	if err != nil {
		return club.Club{}, fmt.Errorf("create club: %w", err)
	}
	return created, nil
}
