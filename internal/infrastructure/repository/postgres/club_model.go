package postgres

import (
	"time"

	"github.com/profootgn/league-api/internal/domain/club"
)

type clubTableModel struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	ShortName string    `db:"short_name"`
	City      string    `db:"city"`
	Stadium   string    `db:"stadium"`
	LogoURL   string    `db:"logo_url"`
	Coach     string    `db:"coach"`
	President string    `db:"president"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m clubTableModel) toDomain() club.Club {
	return club.Club{
		ID:        m.ID,
		Name:      m.Name,
		ShortName: m.ShortName,
		City:      m.City,
		Stadium:   m.Stadium,
		LogoURL:   m.LogoURL,
		Coach:     m.Coach,
		President: m.President,
	}
}

type clubInsertModel struct {
	Name      string `db:"name"`
	ShortName string `db:"short_name"`
	City      string `db:"city"`
	Stadium   string `db:"stadium"`
	LogoURL   string `db:"logo_url"`
	Coach     string `db:"coach"`
	President string `db:"president"`
}
