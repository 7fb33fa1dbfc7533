package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/profootgn/league-api/internal/domain/club"
	"github.com/profootgn/league-api/internal/domain/player"
)

// PhotoUploader pushes a player portrait to the media store and returns its
// public URL.
type PhotoUploader interface {
	UploadPlayerPhoto(ctx context.Context, playerID int64, filename, contentType string, body io.Reader) (string, error)
}

type PlayerService struct {
	playerRepo player.Repository
	clubRepo   club.Repository
	uploader   PhotoUploader
}

func NewPlayerService(playerRepo player.Repository, clubRepo club.Repository, uploader PhotoUploader) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		clubRepo:   clubRepo,
		uploader:   uploader,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) GetByID(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByID")
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	item, ok, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *PlayerService) Create(ctx context.Context, item player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	item.FirstName = strings.TrimSpace(item.FirstName)
	item.LastName = strings.TrimSpace(item.LastName)
	if item.FullName() == "" {
		return player.Player{}, fmt.Errorf("%w: a name or shirt number is required", ErrInvalidInput)
	}
	if item.Number != nil && *item.Number <= 0 {
		return player.Player{}, fmt.Errorf("%w: shirt number must be positive", ErrInvalidInput)
	}
	if item.ClubID != nil {
		if _, ok, err := s.clubRepo.GetByID(ctx, *item.ClubID); err != nil {
			return player.Player{}, fmt.Errorf("get club: %w", err)
		} else if !ok {
			return player.Player{}, fmt.Errorf("%w: club=%d", ErrNotFound, *item.ClubID)
		}
	}

	created, err := s.playerRepo.Create(ctx, item)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

// UpdatePlayerInput patches one player. Nil fields keep their value;
// ClearClub and ClearNumber detach instead.
type UpdatePlayerInput struct {
	ClubID      *int64
	ClearClub   bool
	FirstName   *string
	LastName    *string
	Number      *int
	ClearNumber bool
	Position    *string
	PhotoURL    *string
}

func (s *PlayerService) Update(ctx context.Context, id int64, input UpdatePlayerInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	item, err := s.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, err
	}

	if input.ClearClub {
		item.ClubID = nil
	} else if input.ClubID != nil {
		if _, ok, err := s.clubRepo.GetByID(ctx, *input.ClubID); err != nil {
			return player.Player{}, fmt.Errorf("get club: %w", err)
		} else if !ok {
			return player.Player{}, fmt.Errorf("%w: club=%d", ErrNotFound, *input.ClubID)
		}
		item.ClubID = input.ClubID
	}
	if input.FirstName != nil {
		item.FirstName = strings.TrimSpace(*input.FirstName)
	}
	if input.LastName != nil {
		item.LastName = strings.TrimSpace(*input.LastName)
	}
	if input.ClearNumber {
		item.Number = nil
	} else if input.Number != nil {
		if *input.Number <= 0 {
			return player.Player{}, fmt.Errorf("%w: shirt number must be positive", ErrInvalidInput)
		}
		item.Number = input.Number
	}
	if input.Position != nil {
		item.Position = *input.Position
	}
	if input.PhotoURL != nil {
		item.PhotoURL = *input.PhotoURL
	}

	if item.FullName() == "" {
		return player.Player{}, fmt.Errorf("%w: a name or shirt number is required", ErrInvalidInput)
	}
	if err := s.playerRepo.Save(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("save player: %w", err)
	}
	return item, nil
}

func (s *PlayerService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	deleted, err := s.playerRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}
	return nil
}

// UploadPhoto stores a portrait in the media store and records its URL on
// the player.
func (s *PlayerService) UploadPhoto(ctx context.Context, id int64, filename, contentType string, body io.Reader) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UploadPhoto")
	defer span.End()

	if s.uploader == nil {
		return player.Player{}, fmt.Errorf("%w: media store is not configured", ErrDependencyUnavailable)
	}
	item, err := s.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, err
	}

	url, err := s.uploader.UploadPlayerPhoto(ctx, item.ID, filename, contentType, body)
	if err != nil {
		return player.Player{}, fmt.Errorf("%w: %s", ErrDependencyUnavailable, err)
	}
	item.PhotoURL = url

	if err := s.playerRepo.Save(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("save player: %w", err)
	}
	return item, nil
}
