package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/profootgn/league-api/internal/domain/player"
	qb "github.com/profootgn/league-api/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func scopeCondition(clubID *int64) qb.Condition {
	if clubID == nil {
		return nil
	}
	return qb.Eq("club_id", *clubID)
}

func (r *PlayerRepository) selectOne(ctx context.Context, conditions ...qb.Condition) (player.Player, bool, error) {
	where := make([]qb.Condition, 0, len(conditions))
	for _, c := range conditions {
		if c != nil {
			where = append(where, c)
		}
	}

	query, args, err := qb.Select("*").From("players").
		Where(where...).
		OrderBy("id ASC").
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		OrderBy("LOWER(last_name)", "LOWER(first_name)", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return r.selectOne(ctx, qb.Eq("id", id))
}

func (r *PlayerRepository) GetByIDScoped(ctx context.Context, id int64, clubID *int64) (player.Player, bool, error) {
	return r.selectOne(ctx, qb.Eq("id", id), scopeCondition(clubID))
}

func (r *PlayerRepository) FindByNumber(ctx context.Context, number int, clubID *int64) (player.Player, bool, error) {
	return r.selectOne(ctx, qb.Eq("number", number), scopeCondition(clubID))
}

func (r *PlayerRepository) FindByFullName(ctx context.Context, first, last string, clubID *int64) (player.Player, bool, error) {
	return r.selectOne(ctx,
		qb.Expr("LOWER(first_name) = LOWER(?)", first),
		qb.Expr("LOWER(last_name) = LOWER(?)", last),
		scopeCondition(clubID),
	)
}

func (r *PlayerRepository) FindBySingleName(ctx context.Context, name string, clubID *int64) (player.Player, bool, error) {
	return r.selectOne(ctx,
		qb.Expr("(LOWER(first_name) = LOWER(?) OR LOWER(last_name) = LOWER(?))", name, name),
		scopeCondition(clubID),
	)
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, ids []int64) ([]player.Player, error) {
	if len(ids) == 0 {
		return []player.Player{}, nil
	}

	values := make([]any, len(ids))
	for i, id := range ids {
		values[i] = id
	}
	query, args, err := qb.Select("*").From("players").
		Where(qb.In("id", values)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) (player.Player, error) {
	insertModel := playerInsertModel{
		ClubID:    item.ClubID,
		FirstName: item.FirstName,
		LastName:  item.LastName,
		Number:    item.Number,
		Position:  item.Position,
		PhotoURL:  item.PhotoURL,
	}
	query, args, err := qb.InsertModel("players", insertModel, "RETURNING id")
	if err != nil {
		return player.Player{}, fmt.Errorf("build insert player query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return player.Player{}, fmt.Errorf("insert player: %w", err)
	}
	item.ID = id
	return item, nil
}

func (r *PlayerRepository) Save(ctx context.Context, item player.Player) error {
	query, args, err := qb.Update("players").
		Set("club_id", item.ClubID).
		Set("first_name", item.FirstName).
		Set("last_name", item.LastName).
		Set("number", item.Number).
		Set("position", item.Position).
		Set("photo_url", item.PhotoURL).
		Set("updated_at", time.Now()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update player id=%d: %w", item.ID, err)
	}
	return nil
}

func (r *PlayerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM players WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete player id=%d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete player rows affected: %w", err)
	}
	return affected > 0, nil
}
