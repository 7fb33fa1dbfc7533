package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/profootgn/league-api/internal/domain/club"
	qb "github.com/profootgn/league-api/internal/platform/querybuilder"
)

type ClubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	query, args, err := qb.Select("*").From("clubs").
		OrderBy("LOWER(name)").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ClubRepository) GetByID(ctx context.Context, id int64) (club.Club, bool, error) {
	query, args, err := qb.Select("*").From("clubs").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build select club query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("select club id=%d: %w", id, err)
	}
	return row.toDomain(), true, nil
}

func (r *ClubRepository) GetByName(ctx context.Context, name string) (club.Club, bool, error) {
	query, args, err := qb.Select("*").From("clubs").
		Where(qb.Expr("LOWER(name) = LOWER(?)", name)).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build select club by name query: %w", err)
	}

	var row clubTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("select club name=%q: %w", name, err)
	}
	return row.toDomain(), true, nil
}

func (r *ClubRepository) Create(ctx context.Context, item club.Club) (club.Club, error) {
	insertModel := clubInsertModel{
		Name:      item.Name,
		ShortName: item.ShortName,
		City:      item.City,
		Stadium:   item.Stadium,
		LogoURL:   item.LogoURL,
		Coach:     item.Coach,
		President: item.President,
	}
	query, args, err := qb.InsertModel("clubs", insertModel, "RETURNING id")
	if err != nil {
		return club.Club{}, fmt.Errorf("build insert club query: %w", err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, query, args...); err != nil {
		return club.Club{}, fmt.Errorf("insert club: %w", err)
	}
	item.ID = id
	return item, nil
}
