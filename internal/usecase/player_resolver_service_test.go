package usecase

import (
	"context"
	"testing"

	"github.com/profootgn/league-api/internal/domain/eventline"
	"github.com/profootgn/league-api/internal/domain/player"
)

func int64p(v int64) *int64 { return &v }
func intp(v int) *int       { return &v }

func TestPlayerResolverService_ResolveByNumberWithinClub(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{
		items: []player.Player{
			{ID: 1, ClubID: int64p(10), Number: intp(9), LastName: "Sylla"},
			{ID: 2, ClubID: int64p(20), Number: intp(9), LastName: "Camara"},
		},
		nextID: 2,
	}
	svc := NewPlayerResolverService(repo, true)

	ref := &eventline.ActorRef{Kind: eventline.ActorByNumber, Number: 9}
	got, err := svc.Resolve(context.Background(), ref, 20)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got == nil || got.ID != 2 {
		t.Fatalf("expected club 20's number 9, got %+v", got)
	}
}

func TestPlayerResolverService_AutoCreateByNumber(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{}
	svc := NewPlayerResolverService(repo, true)

	ref := &eventline.ActorRef{Kind: eventline.ActorByNumber, Number: 14}
	got, err := svc.Resolve(context.Background(), ref, 10)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got == nil {
		t.Fatal("expected auto-created player")
	}
	if got.ClubID == nil || *got.ClubID != 10 {
		t.Fatalf("expected player attached to club 10, got %+v", got.ClubID)
	}
	if got.Number == nil || *got.Number != 14 {
		t.Fatalf("expected shirt number 14, got %+v", got.Number)
	}
}

func TestPlayerResolverService_AutoCreateOffSkips(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{}
	svc := NewPlayerResolverService(repo, false)

	ref := &eventline.ActorRef{Kind: eventline.ActorByNumber, Number: 14}
	got, err := svc.Resolve(context.Background(), ref, 10)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected no resolution with auto-create off, got %+v", got)
	}
	if len(repo.items) != 0 {
		t.Fatalf("expected no player created, got %d", len(repo.items))
	}
}

func TestPlayerResolverService_NumberWithoutClubNeverCreates(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{}
	svc := NewPlayerResolverService(repo, true)

	ref := &eventline.ActorRef{Kind: eventline.ActorByNumber, Number: 7}
	got, err := svc.Resolve(context.Background(), ref, 0)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got != nil || len(repo.items) != 0 {
		t.Fatalf("expected no resolution without a club scope")
	}
}

func TestPlayerResolverService_ResolveByFullName(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{
		items: []player.Player{
			{ID: 5, ClubID: int64p(10), FirstName: "Mohamed", LastName: "Bangoura"},
		},
		nextID: 5,
	}
	svc := NewPlayerResolverService(repo, false)

	ref := &eventline.ActorRef{Kind: eventline.ActorByName, Name: "mohamed bangoura"}
	got, err := svc.Resolve(context.Background(), ref, 10)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got == nil || got.ID != 5 {
		t.Fatalf("expected case-insensitive full-name match, got %+v", got)
	}
}

func TestPlayerResolverService_ResolveBySingleName(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{
		items: []player.Player{
			{ID: 3, ClubID: int64p(10), FirstName: "Ibrahima", LastName: "Conte"},
		},
		nextID: 3,
	}
	svc := NewPlayerResolverService(repo, false)

	ref := &eventline.ActorRef{Kind: eventline.ActorByName, Name: "Conte"}
	got, err := svc.Resolve(context.Background(), ref, 10)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got == nil || got.ID != 3 {
		t.Fatalf("expected single-name match on last name, got %+v", got)
	}
}

func TestPlayerResolverService_AutoCreateByNameSplitsParts(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{}
	svc := NewPlayerResolverService(repo, true)

	ref := &eventline.ActorRef{Kind: eventline.ActorByName, Name: "Sekou Oumar Toure"}
	got, err := svc.Resolve(context.Background(), ref, 10)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got == nil {
		t.Fatal("expected auto-created player")
	}
	if got.FirstName != "Sekou" || got.LastName != "Oumar Toure" {
		t.Fatalf("unexpected name split: %q %q", got.FirstName, got.LastName)
	}
}

func TestPlayerResolverService_ResolveByIDStaysWithinClub(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{
		items: []player.Player{
			{ID: 8, ClubID: int64p(99), LastName: "Keita"},
		},
		nextID: 8,
	}
	svc := NewPlayerResolverService(repo, true)

	ref := &eventline.ActorRef{Kind: eventline.ActorByID, ID: 8}
	got, err := svc.Resolve(context.Background(), ref, 10)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected cross-club id to stay unresolved, got %+v", got)
	}
}

func TestPlayerResolverService_ResolveByIDUnscopedWithoutClub(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{
		items: []player.Player{
			{ID: 8, ClubID: int64p(99), LastName: "Keita"},
		},
		nextID: 8,
	}
	svc := NewPlayerResolverService(repo, false)

	ref := &eventline.ActorRef{Kind: eventline.ActorByID, ID: 8}
	got, err := svc.Resolve(context.Background(), ref, 0)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got == nil || got.ID != 8 {
		t.Fatalf("expected global id lookup when no club is in context, got %+v", got)
	}
}

func TestPlayerResolverService_NameWithoutClubNeverCreates(t *testing.T) {
	t.Parallel()

	repo := &stubPlayerRepository{}
	svc := NewPlayerResolverService(repo, true)

	ref := &eventline.ActorRef{Kind: eventline.ActorByName, Name: "Sekou Toure"}
	got, err := svc.Resolve(context.Background(), ref, 0)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if got != nil || len(repo.items) != 0 {
		t.Fatalf("expected no player created without a club scope")
	}
}

func TestPlayerResolverService_NilRef(t *testing.T) {
	t.Parallel()

	svc := NewPlayerResolverService(&stubPlayerRepository{}, true)
	got, err := svc.Resolve(context.Background(), nil, 10)
	if err != nil || got != nil {
		t.Fatalf("expected nil/nil for nil ref, got %+v %v", got, err)
	}
}
