package postgres

import (
	"time"

	"github.com/profootgn/league-api/internal/domain/player"
)

type playerTableModel struct {
	ID        int64     `db:"id"`
	ClubID    *int64    `db:"club_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Number    *int      `db:"number"`
	Position  string    `db:"position"`
	PhotoURL  string    `db:"photo_url"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:        m.ID,
		ClubID:    m.ClubID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Number:    m.Number,
		Position:  m.Position,
		PhotoURL:  m.PhotoURL,
	}
}

type playerInsertModel struct {
	ClubID    *int64 `db:"club_id"`
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Number    *int   `db:"number"`
	Position  string `db:"position"`
	PhotoURL  string `db:"photo_url"`
}
