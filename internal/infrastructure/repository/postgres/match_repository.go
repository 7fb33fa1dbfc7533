package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/profootgn/league-api/internal/domain/match"
	qb "github.com/profootgn/league-api/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	conditions := make([]qb.Condition, 0, 4)
	if len(filter.Statuses) > 0 {
		values := make([]any, len(filter.Statuses))
		for i, s := range filter.Statuses {
			values[i] = s
		}
		conditions = append(conditions, qb.In("status", values))
	}
	if filter.RoundID != nil {
		conditions = append(conditions, qb.Eq("round_id", *filter.RoundID))
	}
	if filter.From != nil {
		conditions = append(conditions, qb.Expr("kickoff_at >= ?", *filter.From))
	}
	if filter.To != nil {
		conditions = append(conditions, qb.Expr("kickoff_at <= ?", *filter.To))
	}

	query, args, err := qb.Select("*").From("matches").
		Where(conditions...).
		OrderBy("kickoff_at DESC", "id DESC").
		Limit(filter.Limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match id=%d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) ExistsFixture(ctx context.Context, roundID *int64, clubA, clubB int64) (bool, error) {
	conditions := []qb.Condition{
		qb.Expr("((home_club_id = ? AND away_club_id = ?) OR (home_club_id = ? AND away_club_id = ?))",
			clubA, clubB, clubB, clubA),
	}
	if roundID != nil {
		conditions = append(conditions, qb.Eq("round_id", *roundID))
	} else {
		conditions = append(conditions, qb.IsNull("round_id"))
	}

	query, args, err := qb.Select("COUNT(*)").From("matches").
		Where(conditions...).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build fixture exists query: %w", err)
	}

	var count int
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return false, fmt.Errorf("check fixture exists: %w", err)
	}
	return count > 0, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) (match.Match, error) {
	insertModel := matchInsertModel{
		RoundID:    item.RoundID,
		KickoffAt:  item.KickoffAt,
		HomeClubID: item.HomeClubID,
		AwayClubID: item.AwayClubID,
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
		Status:     item.Status,
		Minute:     item.Minute,
		Venue:      item.Venue,
	}
	query, args, err := qb.InsertModel("matches", insertModel, "RETURNING id")
	if err != nil {
		return match.Match{}, fmt.Errorf("build insert match query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return match.Match{}, fmt.Errorf("insert match: %w", err)
	}
	item.ID = id
	return item, nil
}

func (r *MatchRepository) Save(ctx context.Context, item match.Match) error {
	query, args, err := qb.Update("matches").
		Set("round_id", item.RoundID).
		Set("kickoff_at", item.KickoffAt).
		Set("home_club_id", item.HomeClubID).
		Set("away_club_id", item.AwayClubID).
		Set("home_score", item.HomeScore).
		Set("away_score", item.AwayScore).
		Set("status", item.Status).
		Set("minute", item.Minute).
		Set("venue", item.Venue).
		Set("updated_at", time.Now()).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update match id=%d: %w", item.ID, err)
	}
	return nil
}

func (r *MatchRepository) Delete(ctx context.Context, id int64) (bool, error) {
	// Goals and cards cascade via their foreign keys.
	result, err := r.db.ExecContext(ctx, "DELETE FROM matches WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("delete match id=%d: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete match rows affected: %w", err)
	}
	return affected > 0, nil
}
