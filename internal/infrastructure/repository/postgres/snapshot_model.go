package postgres

import (
	"time"

	"github.com/profootgn/league-api/internal/domain/standings"
)

type snapshotRowTableModel struct {
	ID           int64     `db:"id"`
	Live         bool      `db:"live"`
	Position     int       `db:"position"`
	ClubID       int64     `db:"club_id"`
	ClubName     string    `db:"club_name"`
	Played       int       `db:"played"`
	Wins         int       `db:"wins"`
	Draws        int       `db:"draws"`
	Losses       int       `db:"losses"`
	GoalsFor     int       `db:"goals_for"`
	GoalsAgainst int       `db:"goals_against"`
	GoalDiff     int       `db:"goal_diff"`
	Points       int       `db:"points"`
	ComputedAt   time.Time `db:"computed_at"`
}

func (m snapshotRowTableModel) toDomain() standings.Row {
	return standings.Row{
		Position:     m.Position,
		ClubID:       m.ClubID,
		ClubName:     m.ClubName,
		Played:       m.Played,
		Wins:         m.Wins,
		Draws:        m.Draws,
		Losses:       m.Losses,
		GoalsFor:     m.GoalsFor,
		GoalsAgainst: m.GoalsAgainst,
		GoalDiff:     m.GoalDiff,
		Points:       m.Points,
	}
}

type snapshotRowInsertModel struct {
	Live         bool      `db:"live"`
	Position     int       `db:"position"`
	ClubID       int64     `db:"club_id"`
	ClubName     string    `db:"club_name"`
	Played       int       `db:"played"`
	Wins         int       `db:"wins"`
	Draws        int       `db:"draws"`
	Losses       int       `db:"losses"`
	GoalsFor     int       `db:"goals_for"`
	GoalsAgainst int       `db:"goals_against"`
	GoalDiff     int       `db:"goal_diff"`
	Points       int       `db:"points"`
	ComputedAt   time.Time `db:"computed_at"`
}
