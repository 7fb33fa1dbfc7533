package httpapi

import (
	"fmt"
	"net/http"

	"github.com/profootgn/league-api/internal/domain/player"
	"github.com/profootgn/league-api/internal/usecase"
)

// maxPhotoUploadBytes bounds the multipart body of a portrait upload.
const maxPhotoUploadBytes = 5 << 20

type playerDTO struct {
	ID        int64  `json:"id"`
	ClubID    *int64 `json:"club_id,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	FullName  string `json:"full_name"`
	Number    *int   `json:"number,omitempty"`
	Position  string `json:"position,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

func playerToDTO(item player.Player) playerDTO {
	return playerDTO{
		ID:        item.ID,
		ClubID:    item.ClubID,
		FirstName: item.FirstName,
		LastName:  item.LastName,
		FullName:  item.FullName(),
		Number:    item.Number,
		Position:  item.Position,
		PhotoURL:  item.PhotoURL,
	}
}

type createPlayerRequest struct {
	ClubID    *int64 `json:"club_id" validate:"omitempty,gt=0"`
	FirstName string `json:"first_name" validate:"omitempty,max=120"`
	LastName  string `json:"last_name" validate:"omitempty,max=120"`
	Number    *int   `json:"number" validate:"omitempty,gt=0,lte=99"`
	Position  string `json:"position" validate:"omitempty,max=40"`
	PhotoURL  string `json:"photo_url" validate:"omitempty,url"`
}

type updatePlayerRequest struct {
	ClubID      *int64  `json:"club_id" validate:"omitempty,gt=0"`
	ClearClub   bool    `json:"clear_club"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=120"`
	LastName    *string `json:"last_name" validate:"omitempty,max=120"`
	Number      *int    `json:"number" validate:"omitempty,gt=0,lte=99"`
	ClearNumber bool    `json:"clear_number"`
	Position    *string `json:"position" validate:"omitempty,max=40"`
	PhotoURL    *string `json:"photo_url" validate:"omitempty,url"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.playerService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, item := range players {
		items = append(items, playerToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.GetByID(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var payload createPlayerRequest
	if err := decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.playerService.Create(ctx, player.Player{
		ClubID:    payload.ClubID,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Number:    payload.Number,
		Position:  payload.Position,
		PhotoURL:  payload.PhotoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(created))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var payload updatePlayerRequest
	if err := decodeRequest(r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.playerService.Update(ctx, id, usecase.UpdatePlayerInput{
		ClubID:      payload.ClubID,
		ClearClub:   payload.ClearClub,
		FirstName:   payload.FirstName,
		LastName:    payload.LastName,
		Number:      payload.Number,
		ClearNumber: payload.ClearNumber,
		Position:    payload.Position,
		PhotoURL:    payload.PhotoURL,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.playerService.Delete(ctx, id); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]int64{"deleted": id})
}

// UploadPlayerPhoto accepts a multipart form with a "photo" file part and
// stores it through the media store.
func (h *Handler) UploadPlayerPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadPlayerPhoto")
	defer span.End()

	id, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoUploadBytes)
	file, header, err := r.FormFile("photo")
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: photo file part is required: %v", usecase.ErrInvalidInput, err))
		return
	}
	defer file.Close()

	updated, err := h.playerService.UploadPhoto(ctx, id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.WarnContext(ctx, "upload player photo failed", "player_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, playerToDTO(updated))
}
