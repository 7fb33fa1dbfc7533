package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/profootgn/league-api/internal/platform/logging"
	"github.com/profootgn/league-api/internal/usecase"
)

type Handler struct {
	clubService         *usecase.ClubService
	playerService       *usecase.PlayerService
	roundService        *usecase.RoundService
	matchService        *usecase.MatchService
	eventService        *usecase.EventEntryService
	standingsService    *usecase.StandingsService
	topScorerService    *usecase.TopScorerService
	statsRefreshService *usecase.StatsRefreshService
	roundsTotal         int
	logger              *logging.Logger
	validator           *validator.Validate
}

func NewHandler(
	clubService *usecase.ClubService,
	playerService *usecase.PlayerService,
	roundService *usecase.RoundService,
	matchService *usecase.MatchService,
	eventService *usecase.EventEntryService,
	standingsService *usecase.StandingsService,
	topScorerService *usecase.TopScorerService,
	statsRefreshService *usecase.StatsRefreshService,
	roundsTotal int,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		clubService:         clubService,
		playerService:       playerService,
		roundService:        roundService,
		matchService:        matchService,
		eventService:        eventService,
		standingsService:    standingsService,
		topScorerService:    topScorerService,
		statsRefreshService: statsRefreshService,
		roundsTotal:         roundsTotal,
		logger:              logger,
		validator:           validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func decodeRequest(r *http.Request, payload any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}

func queryBool(r *http.Request, name string) bool {
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get(name))) {
	case "1", "true", "t", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}
