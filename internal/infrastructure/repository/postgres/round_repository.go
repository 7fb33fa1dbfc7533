package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/profootgn/league-api/internal/domain/round"
	qb "github.com/profootgn/league-api/internal/platform/querybuilder"
)

type RoundRepository struct {
	db *sqlx.DB
}

func NewRoundRepository(db *sqlx.DB) *RoundRepository {
	return &RoundRepository{db: db}
}

// Legacy rows may have a NULL number, so NULLS FIRST keeps them ahead of
// the numbered calendar the same way id order did before numbering.
const roundOrder = "number ASC NULLS FIRST, id ASC"

func (r *RoundRepository) List(ctx context.Context) ([]round.Round, error) {
	query, args, err := qb.Select("*").From("rounds").
		OrderBy(roundOrder).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rounds query: %w", err)
	}

	var rows []roundTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rounds: %w", err)
	}

	out := make([]round.Round, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *RoundRepository) GetByID(ctx context.Context, id int64) (round.Round, bool, error) {
	query, args, err := qb.Select("*").From("rounds").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return round.Round{}, false, fmt.Errorf("build select round query: %w", err)
	}

	var row roundTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return round.Round{}, false, nil
		}
		return round.Round{}, false, fmt.Errorf("select round id=%d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

func (r *RoundRepository) GetByNumber(ctx context.Context, number int) (round.Round, bool, error) {
	query, args, err := qb.Select("*").From("rounds").
		Where(qb.Eq("number", number)).
		ToSQL()
	if err != nil {
		return round.Round{}, false, fmt.Errorf("build select round by number query: %w", err)
	}

	var row roundTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return round.Round{}, false, nil
		}
		return round.Round{}, false, fmt.Errorf("select round number=%d: %w", number, err)
	}
	return row.toDomain(), true, nil
}

func (r *RoundRepository) First(ctx context.Context) (round.Round, bool, error) {
	query, args, err := qb.Select("*").From("rounds").
		OrderBy(roundOrder).
		Limit(1).
		ToSQL()
	if err != nil {
		return round.Round{}, false, fmt.Errorf("build select first round query: %w", err)
	}

	var row roundTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return round.Round{}, false, nil
		}
		return round.Round{}, false, fmt.Errorf("select first round: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *RoundRepository) Create(ctx context.Context, item round.Round) (round.Round, error) {
	insertModel := roundInsertModel{
		Number: item.Number,
		Name:   item.Name,
		Date:   item.Date,
	}
	query, args, err := qb.InsertModel("rounds", insertModel, "RETURNING id")
	if err != nil {
		return round.Round{}, fmt.Errorf("build insert round query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return round.Round{}, fmt.Errorf("insert round: %w", err)
	}
	item.ID = id
	return item, nil
}

func (r *RoundRepository) Save(ctx context.Context, item round.Round) error {
	query, args, err := qb.Update("rounds").
		Set("number", item.Number).
		Set("name", item.Name).
		Set("date", item.Date).
		Set("updated_at", time.Now()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update round query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update round id=%d: %w", item.ID, err)
	}
	return nil
}
