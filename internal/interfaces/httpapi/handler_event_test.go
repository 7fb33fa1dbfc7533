package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/profootgn/league-api/internal/domain/club"
	"github.com/profootgn/league-api/internal/domain/match"
	"github.com/profootgn/league-api/internal/domain/matchevent"
	"github.com/profootgn/league-api/internal/domain/player"
	"github.com/profootgn/league-api/internal/infrastructure/repository/memory"
	"github.com/profootgn/league-api/internal/platform/cache"
	"github.com/profootgn/league-api/internal/platform/logging"
	"github.com/profootgn/league-api/internal/usecase"
)

const testAdminToken = "test-admin-token"

// newTestRouter wires the full API over in-memory repositories with one
// live fixture between two clubs and a three-man roster.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	clubRepo := memory.NewClubRepository([]club.Club{
		{ID: 1, Name: "Hafia FC"},
		{ID: 2, Name: "Horoya AC"},
	})
	roundRepo := memory.NewRoundRepository(nil)
	playerRepo := memory.NewPlayerRepository([]player.Player{
		{ID: 1, ClubID: ptrInt64(1), FirstName: "Alseny", LastName: "Sylla", Number: ptrInt(9)},
		{ID: 2, ClubID: ptrInt64(1), FirstName: "Momo", LastName: "Camara", Number: ptrInt(10)},
		{ID: 3, ClubID: ptrInt64(2), FirstName: "Ousmane", LastName: "Barry", Number: ptrInt(7)},
	})
	matchRepo := memory.NewMatchRepository([]match.Match{
		{
			ID:         1,
			KickoffAt:  time.Now(),
			HomeClubID: 1,
			AwayClubID: 2,
			HomeScore:  ptrInt(0),
			AwayScore:  ptrInt(0),
			Status:     match.StatusLive,
		},
	})
	goalRepo := memory.NewGoalRepository(nil, matchRepo)
	cardRepo := memory.NewCardRepository(nil)
	eventStore := memory.NewEventStore(goalRepo, cardRepo)
	snapshotRepo := memory.NewSnapshotRepository()
	store := cache.NewStore(time.Minute)
	logger := logging.NewNop()

	clubService := usecase.NewClubService(clubRepo)
	playerService := usecase.NewPlayerService(playerRepo, clubRepo, nil)
	roundService := usecase.NewRoundService(roundRepo)
	matchService := usecase.NewMatchService(matchRepo, clubRepo, roundRepo, store)
	resolver := usecase.NewPlayerResolverService(playerRepo, false)
	eventService := usecase.NewEventEntryService(matchRepo, goalRepo, cardRepo, eventStore, resolver, matchevent.DefaultProfile(), store)
	standingsService := usecase.NewStandingsService(clubRepo, matchRepo, snapshotRepo, store)
	topScorerService := usecase.NewTopScorerService(goalRepo, playerRepo, clubRepo, store, 50)
	statsRefreshService := usecase.NewStatsRefreshService(standingsService, topScorerService, 50, 2, logger)

	handler := NewHandler(
		clubService,
		playerService,
		roundService,
		matchService,
		eventService,
		standingsService,
		topScorerService,
		statsRefreshService,
		26,
		logger,
	)
	return NewRouter(handler, testAdminToken, logger, []string{"*"})
}

func ptrInt(v int) *int       { return &v }
func ptrInt64(v int64) *int64 { return &v }

func TestSubmitMatchEvents_EndToEnd(t *testing.T) {
	router := newTestRouter(t)

	payload := `{
		"home_goals": "#9 12'\nMomo Camara 34' (pen)\n\n",
		"away_goals": "#7 78' csc",
		"home_cards": "#10 40' Y",
		"away_cards": ""
	}`
	req := httptest.NewRequest(http.MethodPost, "/v1/matches/1/events", strings.NewReader(payload))
	req.Header.Set("X-Admin-Token", testAdminToken)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data usecase.EventBatchResult `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	if body.Data.GoalsCreated != 3 {
		t.Fatalf("expected 3 goals created, got %d", body.Data.GoalsCreated)
	}
	if body.Data.CardsCreated != 1 {
		t.Fatalf("expected 1 card created, got %d", body.Data.CardsCreated)
	}
	if body.Data.SkippedCount != 0 {
		t.Fatalf("expected no skipped lines, got %d", body.Data.SkippedCount)
	}

	listReq := httptest.NewRequest(http.MethodGet, "/v1/matches/1/events", nil)
	listRec := httptest.NewRecorder()
	router.ServeHTTP(listRec, listReq)

	if listRec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", listRec.Code)
	}
	var listBody struct {
		Data matchEventsDTO `json:"data"`
	}
	if err := sonic.Unmarshal(listRec.Body.Bytes(), &listBody); err != nil {
		t.Fatalf("unmarshal events body: %v", err)
	}
	if len(listBody.Data.Goals) != 3 || len(listBody.Data.Cards) != 1 {
		t.Fatalf("expected 3 goals and 1 card, got %d/%d", len(listBody.Data.Goals), len(listBody.Data.Cards))
	}
	if !listBody.Data.Goals[1].IsPenalty {
		t.Fatalf("expected second goal to be a penalty: %+v", listBody.Data.Goals[1])
	}
	if !listBody.Data.Goals[2].IsOwnGoal {
		t.Fatalf("expected third goal to be an own goal: %+v", listBody.Data.Goals[2])
	}
	if !listBody.Data.Cards[0].IsYellow {
		t.Fatalf("expected a yellow card: %+v", listBody.Data.Cards[0])
	}
}

func TestSubmitMatchEvents_RequiresAdminToken(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/matches/1/events", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestGetMatch_UnknownIDIsNotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/999", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestListStandings_SeededClubsPresent(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/standings", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body struct {
		Data []standingsRowDTO `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal standings body: %v", err)
	}
	if len(body.Data) != 2 {
		t.Fatalf("expected 2 table rows, got %d", len(body.Data))
	}
	if body.Data[0].Position != 1 {
		t.Fatalf("expected positions starting at 1, got %d", body.Data[0].Position)
	}
}
