package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/profootgn/league-api/internal/domain/club"
	"github.com/profootgn/league-api/internal/domain/player"
)

type stubPhotoUploader struct {
	url      string
	err      error
	received string
}

func (s *stubPhotoUploader) UploadPlayerPhoto(_ context.Context, _ int64, _, _ string, body io.Reader) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.received = string(data)
	return s.url, nil
}

func newPlayerFixture(uploader PhotoUploader) (*PlayerService, *stubPlayerRepository) {
	clubs := &stubClubRepository{items: []club.Club{{ID: 10, Name: "Hafia FC"}}, nextID: 10}
	players := &stubPlayerRepository{}
	return NewPlayerService(players, clubs, uploader), players
}

func TestPlayerService_Create(t *testing.T) {
	t.Parallel()

	svc, repo := newPlayerFixture(nil)

	created, err := svc.Create(context.Background(), player.Player{
		ClubID:    int64p(10),
		FirstName: " Alseny ",
		LastName:  " Sylla ",
		Number:    intp(9),
		Position:  "FW",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.FirstName != "Alseny" || created.LastName != "Sylla" {
		t.Fatalf("expected trimmed names, got %+v", created)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 stored player, got %d", len(repo.items))
	}
}

func TestPlayerService_CreateNumberOnly(t *testing.T) {
	t.Parallel()

	svc, _ := newPlayerFixture(nil)

	created, err := svc.Create(context.Background(), player.Player{ClubID: int64p(10), Number: intp(14)})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.FullName() != "#14" {
		t.Fatalf("expected number fallback display, got %q", created.FullName())
	}
}

func TestPlayerService_CreateRejections(t *testing.T) {
	t.Parallel()

	svc, _ := newPlayerFixture(nil)

	_, err := svc.Create(context.Background(), player.Player{ClubID: int64p(10)})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for anonymous player, got %v", err)
	}

	_, err = svc.Create(context.Background(), player.Player{LastName: "Sylla", ClubID: int64p(77)})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown club, got %v", err)
	}

	zero := 0
	_, err = svc.Create(context.Background(), player.Player{LastName: "Sylla", Number: &zero})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for zero number, got %v", err)
	}
}

func TestPlayerService_Update(t *testing.T) {
	t.Parallel()

	svc, repo := newPlayerFixture(nil)
	repo.items = []player.Player{{ID: 1, ClubID: int64p(10), LastName: "Sylla", Number: intp(9)}}
	repo.nextID = 1

	pos := "MF"
	updated, err := svc.Update(context.Background(), 1, UpdatePlayerInput{
		Position:    &pos,
		ClearNumber: true,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Position != "MF" || updated.Number != nil {
		t.Fatalf("unexpected player after patch: %+v", updated)
	}
	if updated.LastName != "Sylla" {
		t.Fatalf("untouched field changed: %+v", updated)
	}
}

func TestPlayerService_UpdateClearClub(t *testing.T) {
	t.Parallel()

	svc, repo := newPlayerFixture(nil)
	repo.items = []player.Player{{ID: 1, ClubID: int64p(10), LastName: "Sylla"}}
	repo.nextID = 1

	updated, err := svc.Update(context.Background(), 1, UpdatePlayerInput{ClearClub: true})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.ClubID != nil {
		t.Fatalf("expected club detached, got %+v", updated.ClubID)
	}
}

func TestPlayerService_UploadPhoto(t *testing.T) {
	t.Parallel()

	uploader := &stubPhotoUploader{url: "https://media.example.com/players/1.jpg"}
	svc, repo := newPlayerFixture(uploader)
	repo.items = []player.Player{{ID: 1, ClubID: int64p(10), LastName: "Sylla"}}
	repo.nextID = 1

	updated, err := svc.UploadPhoto(context.Background(), 1, "sylla.jpg", "image/jpeg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("UploadPhoto error: %v", err)
	}
	if updated.PhotoURL != uploader.url {
		t.Fatalf("expected photo url recorded, got %q", updated.PhotoURL)
	}
	if uploader.received != "jpeg-bytes" {
		t.Fatalf("expected body forwarded, got %q", uploader.received)
	}
	if repo.items[0].PhotoURL != uploader.url {
		t.Fatal("expected photo url persisted")
	}
}

func TestPlayerService_UploadPhotoUnconfigured(t *testing.T) {
	t.Parallel()

	svc, repo := newPlayerFixture(nil)
	repo.items = []player.Player{{ID: 1, LastName: "Sylla"}}
	repo.nextID = 1

	_, err := svc.UploadPhoto(context.Background(), 1, "sylla.jpg", "image/jpeg", strings.NewReader("x"))
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestPlayerService_UploadPhotoFailureKeepsPlayer(t *testing.T) {
	t.Parallel()

	uploader := &stubPhotoUploader{err: errors.New("media store down")}
	svc, repo := newPlayerFixture(uploader)
	repo.items = []player.Player{{ID: 1, LastName: "Sylla", PhotoURL: "old.jpg"}}
	repo.nextID = 1

	_, err := svc.UploadPhoto(context.Background(), 1, "sylla.jpg", "image/jpeg", strings.NewReader("x"))
	if !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if repo.items[0].PhotoURL != "old.jpg" {
		t.Fatal("expected old photo kept on failure")
	}
}
