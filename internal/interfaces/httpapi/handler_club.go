package httpapi

import (
	"net/http"

	"github.com/profootgn/league-api/internal/domain/club"
)

type clubDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name,omitempty"`
	City      string `json:"city,omitempty"`
	Stadium   string `json:"stadium,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
	Coach     string `json:"coach,omitempty"`
	President string `json:"president,omitempty"`
}

func clubToDTO(item club.Club) clubDTO {
	return clubDTO{
		ID:        item.ID,
		Name:      item.Name,
		ShortName: item.ShortName,
		City:      item.City,
		Stadium:   item.Stadium,
		LogoURL:   item.LogoURL,
		Coach:     item.Coach,
		President: item.President,
	}
}

type createClubRequest struct {
	Name      string `json:"name" validate:"required,max=120"`
	ShortName string `json:"short_name" validate:"omitempty,max=10"`
	City      string `json:"city" validate:"omitempty,max=120"`
	Stadium   string `json:"stadium" validate:"omitempty,max=120"`
	LogoURL   string `json:"logo_url" validate:"omitempty,url"`
	Coach     string `json:"coach" validate:"omitempty,max=120"`
	President string `json:"president" validate:"omitempty,max=120"`
}

func (h *Handler) ListClubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClubs")
	defer span.End()

	clubs, err := h.clubService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list clubs failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]clubDTO, 0, len(clubs))
	for _, item := range clubs {
		items = append(items, clubToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClub")
	defer span.End()

	id, err := pathID(r, "clubID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.clubService.GetByID(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get club failed", "club_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, clubToDTO(item))
}

func (h *Handler) CreateClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateClub")
	defer span.End()

	var payload createClubRequest
	if err := decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.clubService.Create(ctx, club.Club{
		Name:      payload.Name,
		ShortName: payload.ShortName,
		City:      payload.City,
		Stadium:   payload.Stadium,
		LogoURL:   payload.LogoURL,
		Coach:     payload.Coach,
		President: payload.President,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create club failed", "name", payload.Name, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, clubToDTO(created))
}
