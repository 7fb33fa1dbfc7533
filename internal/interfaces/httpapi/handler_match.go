package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/profootgn/league-api/internal/domain/match"
	"github.com/profootgn/league-api/internal/usecase"
)

// Defaults for the list views when the query string stays silent.
const (
	defaultRecentWindowDays   = 14
	defaultUpcomingWindowDays = 14
	defaultMatchListLimit     = 50
)

type matchDTO struct {
	ID         int64     `json:"id"`
	RoundID    *int64    `json:"round_id,omitempty"`
	KickoffAt  time.Time `json:"kickoff_at"`
	HomeClubID int64     `json:"home_club_id"`
	AwayClubID int64     `json:"away_club_id"`
	HomeScore  *int      `json:"home_score,omitempty"`
	AwayScore  *int      `json:"away_score,omitempty"`
	Status     string    `json:"status"`
	Minute     int       `json:"minute,omitempty"`
	Venue      string    `json:"venue,omitempty"`
}

func matchToDTO(item match.Match) matchDTO {
	return matchDTO{
		ID:         item.ID,
		RoundID:    item.RoundID,
		KickoffAt:  item.KickoffAt,
		HomeClubID: item.HomeClubID,
		AwayClubID: item.AwayClubID,
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
		Status:     item.Status,
		Minute:     item.Minute,
		Venue:      item.Venue,
	}
}

func matchesToDTOs(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchToDTO(item))
	}
	return out
}

type createMatchRequest struct {
	RoundID    *int64    `json:"round_id" validate:"omitempty,gt=0"`
	KickoffAt  time.Time `json:"kickoff_at" validate:"required"`
	HomeClubID int64     `json:"home_club_id" validate:"required,gt=0"`
	AwayClubID int64     `json:"away_club_id" validate:"required,gt=0"`
	Status     string    `json:"status" validate:"omitempty,max=20"`
	Venue      string    `json:"venue" validate:"omitempty,max=120"`
}

type updateMatchRequest struct {
	RoundID   *int64     `json:"round_id" validate:"omitempty,gt=0"`
	KickoffAt *time.Time `json:"kickoff_at"`
	HomeScore *int       `json:"home_score" validate:"omitempty,gte=0"`
	AwayScore *int       `json:"away_score" validate:"omitempty,gte=0"`
	Status    *string    `json:"status" validate:"omitempty,max=20"`
	Minute    *int       `json:"minute" validate:"omitempty,gte=0,lte=130"`
	Venue     *string    `json:"venue" validate:"omitempty,max=120"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	input := usecase.ListMatchesInput{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
	}

	roundID, err := queryInt(r, "round_id", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if roundID > 0 {
		id := int64(roundID)
		input.RoundID = &id
	}

	input.Limit, err = queryInt(r, "limit", defaultMatchListLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.List(ctx, input)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(items))
}

func (h *Handler) ListLiveMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveMatches")
	defer span.End()

	items, err := h.matchService.Live(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list live matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(items))
}

func (h *Handler) ListRecentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentMatches")
	defer span.End()

	days, err := queryInt(r, "days", defaultRecentWindowDays)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(r, "limit", defaultMatchListLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.Recent(ctx, time.Duration(days)*24*time.Hour, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list recent matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(items))
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	days, err := queryInt(r, "days", defaultUpcomingWindowDays)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	limit, err := queryInt(r, "limit", defaultMatchListLimit)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchService.Upcoming(ctx, time.Duration(days)*24*time.Hour, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "list upcoming matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(items))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.GetByID(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var payload createMatchRequest
	if err := decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.matchService.Create(ctx, usecase.CreateMatchInput{
		RoundID:    payload.RoundID,
		KickoffAt:  payload.KickoffAt,
		HomeClubID: payload.HomeClubID,
		AwayClubID: payload.AwayClubID,
		Status:     payload.Status,
		Venue:      payload.Venue,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed",
			"home_club_id", payload.HomeClubID,
			"away_club_id", payload.AwayClubID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(created))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var payload updateMatchRequest
	if err := decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.matchService.Update(ctx, id, usecase.UpdateMatchInput{
		RoundID:   payload.RoundID,
		KickoffAt: payload.KickoffAt,
		HomeScore: payload.HomeScore,
		AwayScore: payload.AwayScore,
		Status:    payload.Status,
		Minute:    payload.Minute,
		Venue:     payload.Venue,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, matchToDTO(updated))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	id, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.matchService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deleted": id})
}
