package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitlabs/workout-api/internal/model"
)

// CategoryFilter holds the optional filters for listing categories.
// Name applies case-insensitive substring matching.
type CategoryFilter struct {
	Name string
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates the pgx-backed CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Rollback is a no-op after a successful commit.
	defer tx.Rollback(ctx)

	category := &model.Category{Name: name}
	err = tx.QueryRow(ctx,
		`insert into categories (name) values ($1) returning id`,
		name,
	).Scan(&category.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	category := &model.Category{}
	err := r.pool.QueryRow(ctx,
		`select id, name from categories where id = $1`,
		id,
	).Scan(&category.ID, &category.Name)
	if err != nil {
		return nil, err
	}
	return category, nil
}

func (r *categoryRepository) List(ctx context.Context, filter CategoryFilter, params PageParams) ([]model.Category, int64, error) {
	params = params.Normalize()

	where := ""
	args := []any{}
	if filter.Name != "" {
		args = append(args, filter.Name)
		where = fmt.Sprintf(" where name ilike '%%' || $%d || '%%'", len(args))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "select count(*) from categories"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"select id, name from categories%s order by id limit $%d offset $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, params.PageSize, params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.Category
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name); err != nil {
			return nil, 0, err
		}
		items = append(items, category)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
