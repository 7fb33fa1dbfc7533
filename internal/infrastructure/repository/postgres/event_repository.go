package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/profootgn/league-api/internal/domain/matchevent"
	qb "github.com/profootgn/league-api/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID int64) ([]matchevent.Goal, error) {
	query, args, err := qb.Select("*").From("goals").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("minute", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals query: %w", err)
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goals match_id=%d: %w", matchID, err)
	}

	out := make([]matchevent.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GoalRepository) ListByMatchStatuses(ctx context.Context, statuses []string) ([]matchevent.Goal, error) {
	if len(statuses) == 0 {
		return []matchevent.Goal{}, nil
	}

	values := make([]any, len(statuses))
	for i, s := range statuses {
		values[i] = s
	}
	query, args, err := qb.Select("g.*").From("goals g JOIN matches m ON m.id = g.match_id").
		Where(qb.In("m.status", values)).
		OrderBy("g.minute", "g.id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals by status query: %w", err)
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goals by match status: %w", err)
	}

	out := make([]matchevent.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *GoalRepository) GetByID(ctx context.Context, id int64) (matchevent.Goal, bool, error) {
	query, args, err := qb.Select("*").From("goals").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return matchevent.Goal{}, false, fmt.Errorf("build select goal query: %w", err)
	}

	var row goalTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchevent.Goal{}, false, nil
		}
		return matchevent.Goal{}, false, fmt.Errorf("select goal id=%d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

func (r *GoalRepository) Save(ctx context.Context, item matchevent.Goal) error {
	if item.ID == 0 {
		query, args, err := qb.InsertModel("goals", goalToInsertModel(item), "RETURNING id")
		if err != nil {
			return fmt.Errorf("build insert goal query: %w", err)
		}
		var id int64
		if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
			return fmt.Errorf("insert goal: %w", err)
		}
		return nil
	}

	query, args, err := qb.Update("goals").
		Set("player_id", item.PlayerID).
		Set("minute", item.Minute).
		Set("assist_player_id", item.AssistPlayerID).
		Set("assist_name", item.AssistName).
		Set("is_penalty", item.IsPenalty).
		Set("is_own_goal", item.IsOwnGoal).
		Set("kind", item.Kind).
		Set("updated_at", time.Now()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update goal query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update goal id=%d: %w", item.ID, err)
	}
	return nil
}

func (r *GoalRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM goals WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete goal id=%d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete goal rows affected: %w", err)
	}
	return affected > 0, nil
}

type CardRepository struct {
	db *sqlx.DB
}

func NewCardRepository(db *sqlx.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) ListByMatch(ctx context.Context, matchID int64) ([]matchevent.Card, error) {
	query, args, err := qb.Select("*").From("cards").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("minute", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select cards query: %w", err)
	}

	var rows []cardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select cards match_id=%d: %w", matchID, err)
	}

	out := make([]matchevent.Card, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id int64) (matchevent.Card, bool, error) {
	query, args, err := qb.Select("*").From("cards").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return matchevent.Card{}, false, fmt.Errorf("build select card query: %w", err)
	}

	var row cardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchevent.Card{}, false, nil
		}
		return matchevent.Card{}, false, fmt.Errorf("select card id=%d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

func (r *CardRepository) Save(ctx context.Context, item matchevent.Card) error {
	if item.ID == 0 {
		query, args, err := qb.InsertModel("cards", cardToInsertModel(item), "RETURNING id")
		if err != nil {
			return fmt.Errorf("build insert card query: %w", err)
		}
		var id int64
		if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
			return fmt.Errorf("insert card: %w", err)
		}
		return nil
	}

	query, args, err := qb.Update("cards").
		Set("player_id", item.PlayerID).
		Set("minute", item.Minute).
		Set("color", item.Color).
		Set("is_yellow", item.IsYellow).
		Set("is_red", item.IsRed).
		Set("updated_at", time.Now()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update card query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update card id=%d: %w", item.ID, err)
	}
	return nil
}

func (r *CardRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM cards WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete card id=%d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete card rows affected: %w", err)
	}
	return affected > 0, nil
}

// EventStore writes one submitted batch inside a single transaction.
type EventStore struct {
	db *sqlx.DB
}

func NewEventStore(db *sqlx.DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) CreateBatch(ctx context.Context, goals []matchevent.Goal, cards []matchevent.Card) error {
	if len(goals) == 0 && len(cards) == 0 {
		return nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx create events: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range goals {
		query, args, err := qb.InsertModel("goals", goalToInsertModel(item), "")
		if err != nil {
			return fmt.Errorf("build insert goal query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert goal match_id=%d minute=%d: %w", item.MatchID, item.Minute, err)
		}
	}
	for _, item := range cards {
		query, args, err := qb.InsertModel("cards", cardToInsertModel(item), "")
		if err != nil {
			return fmt.Errorf("build insert card query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert card match_id=%d minute=%d: %w", item.MatchID, item.Minute, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create events tx: %w", err)
	}
	return nil
}
