package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/profootgn/league-api/internal/domain/round"
)

func TestRoundService_CreateInfersNumber(t *testing.T) {
	t.Parallel()

	repo := &stubRoundRepository{}
	svc := NewRoundService(repo)

	created, err := svc.Create(context.Background(), round.Round{Name: "Journée 12"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Number == nil || *created.Number != 12 {
		t.Fatalf("expected inferred number 12, got %+v", created.Number)
	}
}

func TestRoundService_CreateRejectsDuplicateNumber(t *testing.T) {
	t.Parallel()

	three := 3
	repo := &stubRoundRepository{items: []round.Round{{ID: 1, Number: &three, Name: "J3"}}, nextID: 1}
	svc := NewRoundService(repo)

	_, err := svc.Create(context.Background(), round.Round{Name: "Journee 3"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRoundService_EnsureSeeded(t *testing.T) {
	t.Parallel()

	five := 5
	repo := &stubRoundRepository{items: []round.Round{{ID: 1, Number: &five, Name: "J5"}}, nextID: 1}
	svc := NewRoundService(repo)

	created, err := svc.EnsureSeeded(context.Background(), 26)
	if err != nil {
		t.Fatalf("EnsureSeeded error: %v", err)
	}
	if created != 25 {
		t.Fatalf("expected 25 rounds created, got %d", created)
	}
	if len(repo.items) != 26 {
		t.Fatalf("expected 26 rounds total, got %d", len(repo.items))
	}

	// Second run is a no-op.
	created, err = svc.EnsureSeeded(context.Background(), 26)
	if err != nil {
		t.Fatalf("EnsureSeeded error: %v", err)
	}
	if created != 0 {
		t.Fatalf("expected idempotent reseed, got %d", created)
	}
}

func TestRoundService_EnsureSeededNames(t *testing.T) {
	t.Parallel()

	repo := &stubRoundRepository{}
	svc := NewRoundService(repo)

	if _, err := svc.EnsureSeeded(context.Background(), 3); err != nil {
		t.Fatalf("EnsureSeeded error: %v", err)
	}
	want := []string{"J1", "J2", "J3"}
	for i, item := range repo.items {
		if item.Name != want[i] {
			t.Fatalf("unexpected round name %q at %d", item.Name, i)
		}
	}
}
