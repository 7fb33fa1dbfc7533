package postgres

import (
	"time"

	"github.com/profootgn/league-api/internal/domain/match"
)

type matchTableModel struct {
	ID         int64     `db:"id"`
	RoundID    *int64    `db:"round_id"`
	KickoffAt  time.Time `db:"kickoff_at"`
	HomeClubID int64     `db:"home_club_id"`
	AwayClubID int64     `db:"away_club_id"`
	HomeScore  *int      `db:"home_score"`
	AwayScore  *int      `db:"away_score"`
	Status     string    `db:"status"`
	Minute     int       `db:"minute"`
	Venue      string    `db:"venue"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:         m.ID,
		RoundID:    m.RoundID,
		KickoffAt:  m.KickoffAt,
		HomeClubID: m.HomeClubID,
		AwayClubID: m.AwayClubID,
		HomeScore:  m.HomeScore,
		AwayScore:  m.AwayScore,
		Status:     m.Status,
		Minute:     m.Minute,
		Venue:      m.Venue,
	}
}

type matchInsertModel struct {
	RoundID    *int64    `db:"round_id"`
	KickoffAt  time.Time `db:"kickoff_at"`
	HomeClubID int64     `db:"home_club_id"`
	AwayClubID int64     `db:"away_club_id"`
	HomeScore  *int      `db:"home_score"`
	AwayScore  *int      `db:"away_score"`
	Status     string    `db:"status"`
	Minute     int       `db:"minute"`
	Venue      string    `db:"venue"`
}
