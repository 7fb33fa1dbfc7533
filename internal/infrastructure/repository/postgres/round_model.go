package postgres

import (
	"time"

	"github.com/profootgn/league-api/internal/domain/round"
)

type roundTableModel struct {
	ID        int64      `db:"id"`
	Number    *int       `db:"number"`
	Name      string     `db:"name"`
	Date      *time.Time `db:"date"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func (m roundTableModel) toDomain() round.Round {
	return round.Round{
		ID:     m.ID,
		Number: m.Number,
		Name:   m.Name,
		Date:   m.Date,
	}
}

type roundInsertModel struct {
	Number *int       `db:"number"`
	Name   string     `db:"name"`
	Date   *time.Time `db:"date"`
}
