package httpapi

import (
	"net/http"

	"github.com/profootgn/league-api/internal/domain/matchevent"
	"github.com/profootgn/league-api/internal/usecase"
)

type goalDTO struct {
	ID             int64  `json:"id"`
	MatchID        int64  `json:"match_id"`
	ClubID         int64  `json:"club_id"`
	PlayerID       *int64 `json:"player_id,omitempty"`
	Minute         int    `json:"minute"`
	AssistPlayerID *int64 `json:"assist_player_id,omitempty"`
	AssistName     string `json:"assist_name,omitempty"`
	IsPenalty      bool   `json:"is_penalty"`
	IsOwnGoal      bool   `json:"is_own_goal"`
	Kind           string `json:"kind,omitempty"`
}

func goalToDTO(item matchevent.Goal) goalDTO {
	return goalDTO{
		ID:             item.ID,
		MatchID:        item.MatchID,
		ClubID:         item.ClubID,
		PlayerID:       item.PlayerID,
		Minute:         item.Minute,
		AssistPlayerID: item.AssistPlayerID,
		AssistName:     item.AssistName,
		IsPenalty:      item.IsPenalty,
		IsOwnGoal:      item.IsOwnGoal,
		Kind:           item.Kind,
	}
}

type cardDTO struct {
	ID       int64  `json:"id"`
	MatchID  int64  `json:"match_id"`
	ClubID   int64  `json:"club_id"`
	PlayerID *int64 `json:"player_id,omitempty"`
	Minute   int    `json:"minute"`
	Color    string `json:"color"`
	IsYellow bool   `json:"is_yellow"`
	IsRed    bool   `json:"is_red"`
}

func cardToDTO(item matchevent.Card) cardDTO {
	return cardDTO{
		ID:       item.ID,
		MatchID:  item.MatchID,
		ClubID:   item.ClubID,
		PlayerID: item.PlayerID,
		Minute:   item.Minute,
		Color:    item.Color,
		IsYellow: item.IsYellow,
		IsRed:    item.IsRed,
	}
}

type matchEventsDTO struct {
	Goals []goalDTO `json:"goals"`
	Cards []cardDTO `json:"cards"`
}

// submitEventsRequest carries the four free-text blocks of the admin event
// form. Each block is one event per line.
type submitEventsRequest struct {
	HomeGoals string `json:"home_goals" validate:"omitempty,max=8000"`
	AwayGoals string `json:"away_goals" validate:"omitempty,max=8000"`
	HomeCards string `json:"home_cards" validate:"omitempty,max=8000"`
	AwayCards string `json:"away_cards" validate:"omitempty,max=8000"`
}

type updateGoalRequest struct {
	Minute         *int    `json:"minute" validate:"omitempty,gte=0,lte=130"`
	PlayerID       *int64  `json:"player_id" validate:"omitempty,gt=0"`
	ClearPlayer    bool    `json:"clear_player"`
	AssistPlayerID *int64  `json:"assist_player_id" validate:"omitempty,gt=0"`
	ClearAssist    bool    `json:"clear_assist"`
	AssistName     *string `json:"assist_name" validate:"omitempty,max=120"`
	IsPenalty      *bool   `json:"is_penalty"`
	IsOwnGoal      *bool   `json:"is_own_goal"`
}

type updateCardRequest struct {
	Minute      *int    `json:"minute" validate:"omitempty,gte=0,lte=130"`
	PlayerID    *int64  `json:"player_id" validate:"omitempty,gt=0"`
	ClearPlayer bool    `json:"clear_player"`
	Color       *string `json:"color" validate:"omitempty,max=10"`
}

func (h *Handler) ListMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchEvents")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	events, err := h.eventService.ListByMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "list match events failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := matchEventsDTO{
		Goals: make([]goalDTO, 0, len(events.Goals)),
		Cards: make([]cardDTO, 0, len(events.Cards)),
	}
	for _, g := range events.Goals {
		out.Goals = append(out.Goals, goalToDTO(g))
	}
	for _, c := range events.Cards {
		out.Cards = append(out.Cards, cardToDTO(c))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

// SubmitMatchEvents stores a whole admin form submission atomically and
// reports the per-line outcomes back.
func (h *Handler) SubmitMatchEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitMatchEvents")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var payload submitEventsRequest
	if err := decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.eventService.SubmitBatch(ctx, usecase.EventBatchInput{
		MatchID:   matchID,
		HomeGoals: payload.HomeGoals,
		AwayGoals: payload.AwayGoals,
		HomeCards: payload.HomeCards,
		AwayCards: payload.AwayCards,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "submit match events failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "match events submitted",
		"match_id", matchID,
		"goals_created", result.GoalsCreated,
		"cards_created", result.CardsCreated,
		"skipped", result.SkippedCount,
	)
	writeSuccess(ctx, w, http.StatusCreated, result)
}

func (h *Handler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateGoal")
	defer span.End()

	id, err := pathID(r, "goalID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var payload updateGoalRequest
	if err := decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.eventService.UpdateGoal(ctx, id, usecase.UpdateGoalInput{
		Minute:         payload.Minute,
		PlayerID:       payload.PlayerID,
		ClearPlayer:    payload.ClearPlayer,
		AssistPlayerID: payload.AssistPlayerID,
		ClearAssist:    payload.ClearAssist,
		AssistName:     payload.AssistName,
		IsPenalty:      payload.IsPenalty,
		IsOwnGoal:      payload.IsOwnGoal,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update goal failed", "goal_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, goalToDTO(updated))
}

func (h *Handler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteGoal")
	defer span.End()

	id, err := pathID(r, "goalID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.eventService.DeleteGoal(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete goal failed", "goal_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deleted": id})
}

func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCard")
	defer span.End()

	id, err := pathID(r, "cardID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var payload updateCardRequest
	if err := decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.eventService.UpdateCard(ctx, id, usecase.UpdateCardInput{
		Minute:      payload.Minute,
		PlayerID:    payload.PlayerID,
		ClearPlayer: payload.ClearPlayer,
		Color:       payload.Color,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update card failed", "card_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, cardToDTO(updated))
}

func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteCard")
	defer span.End()

	id, err := pathID(r, "cardID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.eventService.DeleteCard(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete card failed", "card_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deleted": id})
}
