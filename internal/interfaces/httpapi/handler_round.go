package httpapi

import (
	"net/http"
	"time"

	"github.com/profootgn/league-api/internal/domain/round"
)

type roundDTO struct {
	ID     int64      `json:"id"`
	Number *int       `json:"number,omitempty"`
	Name   string     `json:"name"`
	Date   *time.Time `json:"date,omitempty"`
}

func roundToDTO(item round.Round) roundDTO {
	return roundDTO{
		ID:     item.ID,
		Number: item.Number,
		Name:   item.Name,
		Date:   item.Date,
	}
}

type createRoundRequest struct {
	Number *int       `json:"number" validate:"omitempty,gt=0"`
	Name   string     `json:"name" validate:"required,max=60"`
	Date   *time.Time `json:"date"`
}

func (h *Handler) ListRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRounds")
	defer span.End()

	rounds, err := h.roundService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list rounds failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]roundDTO, 0, len(rounds))
	for _, item := range rounds {
		items = append(items, roundToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRound")
	defer span.End()

	id, err := pathID(r, "roundID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.roundService.GetByID(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get round failed", "round_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, roundToDTO(item))
}

func (h *Handler) CreateRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateRound")
	defer span.End()

	var payload createRoundRequest
	if err := decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.roundService.Create(ctx, round.Round{
		Number: payload.Number,
		Name:   payload.Name,
		Date:   payload.Date,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create round failed", "name", payload.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, roundToDTO(created))
}

type seedRoundsResponse struct {
	Requested int `json:"requested"`
	Created   int `json:"created"`
}

// SeedRounds creates the missing rounds of the season calendar. The total
// comes from configuration unless the request overrides it.
func (h *Handler) SeedRounds(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SeedRounds")
	defer span.End()

	total, err := queryInt(r, "total", h.roundsTotal)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.roundService.EnsureSeeded(ctx, total)
	if err != nil {
		h.logger.WarnContext(ctx, "seed rounds failed", "total", total, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, seedRoundsResponse{Requested: total, Created: created})
}
