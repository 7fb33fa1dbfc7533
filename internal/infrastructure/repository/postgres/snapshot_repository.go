package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/profootgn/league-api/internal/domain/standings"
	qb "github.com/profootgn/league-api/internal/platform/querybuilder"
)

type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Get(ctx context.Context, live bool) (standings.Snapshot, bool, error) {
	query, args, err := qb.Select("*").From("standing_snapshots").
		Where(qb.Eq("live", live)).
		OrderBy("position").
		ToSQL()
	if err != nil {
		return standings.Snapshot{}, false, fmt.Errorf("build select snapshot query: %w", err)
	}

	var rows []snapshotRowTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return standings.Snapshot{}, false, fmt.Errorf("select snapshot live=%t: %w", live, err)
	}
	if len(rows) == 0 {
		return standings.Snapshot{}, false, nil
	}

	snapshot := standings.Snapshot{
		Live:       live,
		ComputedAt: rows[0].ComputedAt,
		Rows:       make([]standings.Row, 0, len(rows)),
	}
	for _, row := range rows {
		snapshot.Rows = append(snapshot.Rows, row.toDomain())
	}
	return snapshot, true, nil
}

func (r *SnapshotRepository) Replace(ctx context.Context, snapshot standings.Snapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace snapshot: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "DELETE FROM standing_snapshots WHERE live = $1", snapshot.Live); err != nil {
		return fmt.Errorf("clear snapshot live=%t: %w", snapshot.Live, err)
	}

	for _, row := range snapshot.Rows {
		insertModel := snapshotRowInsertModel{
			Live:         snapshot.Live,
			Position:     row.Position,
			ClubID:       row.ClubID,
			ClubName:     row.ClubName,
			Played:       row.Played,
			Wins:         row.Wins,
			Draws:        row.Draws,
			Losses:       row.Losses,
			GoalsFor:     row.GoalsFor,
			GoalsAgainst: row.GoalsAgainst,
			GoalDiff:     row.GoalDiff,
			Points:       row.Points,
			ComputedAt:   snapshot.ComputedAt,
		}
		query, args, err := qb.InsertModel("standing_snapshots", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert snapshot row query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert snapshot row club=%d live=%t: %w", row.ClubID, snapshot.Live, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace snapshot tx: %w", err)
	}
	return nil
}
