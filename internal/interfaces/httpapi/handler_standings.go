package httpapi

import (
	"net/http"

	"github.com/profootgn/league-api/internal/domain/standings"
	"github.com/profootgn/league-api/internal/domain/topscorer"
)

type standingsRowDTO struct {
	Position     int    `json:"position"`
	ClubID       int64  `json:"club_id"`
	ClubName     string `json:"club_name"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	GoalDiff     int    `json:"goal_diff"`
	Points       int    `json:"points"`
}

func standingsToDTOs(rows []standings.Row) []standingsRowDTO {
	out := make([]standingsRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, standingsRowDTO{
			Position:     row.Position,
			ClubID:       row.ClubID,
			ClubName:     row.ClubName,
			Played:       row.Played,
			Wins:         row.Wins,
			Draws:        row.Draws,
			Losses:       row.Losses,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			GoalDiff:     row.GoalDiff,
			Points:       row.Points,
		})
	}
	return out
}

type topScorerRowDTO struct {
	Rank         int    `json:"rank"`
	PlayerID     int64  `json:"player_id"`
	PlayerName   string `json:"player_name"`
	PlayerNumber *int   `json:"player_number,omitempty"`
	PhotoURL     string `json:"photo_url,omitempty"`
	ClubID       *int64 `json:"club_id,omitempty"`
	ClubName     string `json:"club_name,omitempty"`
	Goals        int    `json:"goals"`
}

func topScorersToDTOs(rows []topscorer.Row) []topScorerRowDTO {
	out := make([]topScorerRowDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, topScorerRowDTO{
			Rank:         row.Rank,
			PlayerID:     row.PlayerID,
			PlayerName:   row.PlayerName,
			PlayerNumber: row.PlayerNumber,
			PhotoURL:     row.PhotoURL,
			ClubID:       row.ClubID,
			ClubName:     row.ClubName,
			Goals:        row.Goals,
		})
	}
	return out
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	rows, err := h.standingsService.Table(ctx, false)
	if err != nil {
		h.logger.ErrorContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingsToDTOs(rows))
}

// ListLiveStandings folds in-progress scores into the table.
func (h *Handler) ListLiveStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLiveStandings")
	defer span.End()

	rows, err := h.standingsService.Table(ctx, true)
	if err != nil {
		h.logger.ErrorContext(ctx, "list live standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingsToDTOs(rows))
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.topScorerService.Ranking(ctx, limit, queryBool(r, "live"))
	if err != nil {
		h.logger.ErrorContext(ctx, "list top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, topScorersToDTOs(rows))
}

// RefreshStats recomputes every cached aggregate on demand.
func (h *Handler) RefreshStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshStats")
	defer span.End()

	result, err := h.statsRefreshService.RefreshAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "stats refresh failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "stats refresh finished",
		"tasks", result.TaskCount,
		"succeeded", result.SuccessCount,
		"failed", result.FailedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
