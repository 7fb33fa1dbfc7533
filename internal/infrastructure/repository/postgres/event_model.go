package postgres

import (
	"time"

	"github.com/profootgn/league-api/internal/domain/matchevent"
)

type goalTableModel struct {
	ID             int64     `db:"id"`
	MatchID        int64     `db:"match_id"`
	ClubID         int64     `db:"club_id"`
	PlayerID       *int64    `db:"player_id"`
	Minute         int       `db:"minute"`
	AssistPlayerID *int64    `db:"assist_player_id"`
	AssistName     string    `db:"assist_name"`
	IsPenalty      bool      `db:"is_penalty"`
	IsOwnGoal      bool      `db:"is_own_goal"`
	Kind           string    `db:"kind"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (m goalTableModel) toDomain() matchevent.Goal {
	return matchevent.Goal{
		ID:             m.ID,
		MatchID:        m.MatchID,
		ClubID:         m.ClubID,
		PlayerID:       m.PlayerID,
		Minute:         m.Minute,
		AssistPlayerID: m.AssistPlayerID,
		AssistName:     m.AssistName,
		IsPenalty:      m.IsPenalty,
		IsOwnGoal:      m.IsOwnGoal,
		Kind:           m.Kind,
	}
}

type goalInsertModel struct {
	MatchID        int64  `db:"match_id"`
	ClubID         int64  `db:"club_id"`
	PlayerID       *int64 `db:"player_id"`
	Minute         int    `db:"minute"`
	AssistPlayerID *int64 `db:"assist_player_id"`
	AssistName     string `db:"assist_name"`
	IsPenalty      bool   `db:"is_penalty"`
	IsOwnGoal      bool   `db:"is_own_goal"`
	Kind           string `db:"kind"`
}

func goalToInsertModel(item matchevent.Goal) goalInsertModel {
	return goalInsertModel{
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

type cardTableModel struct {
	ID        int64     `db:"id"`
	MatchID   int64     `db:"match_id"`
	ClubID    int64     `db:"club_id"`
	PlayerID  *int64    `db:"player_id"`
	Minute    int       `db:"minute"`
	Color     string    `db:"color"`
	IsYellow  bool      `db:"is_yellow"`
	IsRed     bool      `db:"is_red"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (m cardTableModel) toDomain() matchevent.Card {
	return matchevent.Card{
		ID:       m.ID,
		MatchID:  m.MatchID,
		ClubID:   m.ClubID,
		PlayerID: m.PlayerID,
		Minute:   m.Minute,
		Color:    m.Color,
		IsYellow: m.IsYellow,
		IsRed:    m.IsRed,
	}
}

type cardInsertModel struct {
	MatchID  int64  `db:"match_id"`
	ClubID   int64  `db:"club_id"`
	PlayerID *int64 `db:"player_id"`
	Minute   int    `db:"minute"`
	Color    string `db:"color"`
	IsYellow bool   `db:"is_yellow"`
	IsRed    bool   `db:"is_red"`
}

func cardToInsertModel(item matchevent.Card) cardInsertModel {
	return cardInsertModel{
		MatchID:  item.MatchID,
		ClubID:   item.ClubID,
		PlayerID: item.PlayerID,
		Minute:   item.Minute,
		Color:    item.Color,
		IsYellow: item.IsYellow,
		IsRed:    item.IsRed,
	}
}
