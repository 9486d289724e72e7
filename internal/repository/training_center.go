package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitlabs/workout-api/internal/model"
)

// CreateTrainingCenterParams holds the fields for a new training center.
type CreateTrainingCenterParams struct {
	Name    string
	Address string
	Owner   string
}

// TrainingCenterFilter holds the optional filters for listing training
// centers. Name applies case-insensitive substring matching.
type TrainingCenterFilter struct {
	Name string
}

type trainingCenterRepository struct {
	pool *pgxpool.Pool
}

// NewTrainingCenterRepository creates the pgx-backed TrainingCenterRepository.
func NewTrainingCenterRepository(pool *pgxpool.Pool) TrainingCenterRepository {
	return &trainingCenterRepository{pool: pool}
}

func (r *trainingCenterRepository) Create(ctx context.Context, params CreateTrainingCenterParams) (*model.TrainingCenter, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	center := &model.TrainingCenter{
		Name:    params.Name,
		Address: params.Address,
		Owner:   params.Owner,
	}
	err = tx.QueryRow(ctx,
		`insert into training_centers (name, address, owner) values ($1, $2, $3) returning id`,
		params.Name, params.Address, params.Owner,
	).Scan(&center.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return center, nil
}

func (r *trainingCenterRepository) GetByID(ctx context.Context, id int64) (*model.TrainingCenter, error) {
	center := &model.TrainingCenter{}
	err := r.pool.QueryRow(ctx,
		`select id, name, address, owner from training_centers where id = $1`,
		id,
	).Scan(&center.ID, &center.Name, &center.Address, &center.Owner)
	if err != nil {
		return nil, err
	}
	return center, nil
}

func (r *trainingCenterRepository) List(ctx context.Context, filter TrainingCenterFilter, params PageParams) ([]model.TrainingCenter, int64, error) {
	params = params.Normalize()

	where := ""
	args := []any{}
	if filter.Name != "" {
		args = append(args, filter.Name)
		where = fmt.Sprintf(" where name ilike '%%' || $%d || '%%'", len(args))
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "select count(*) from training_centers"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(
		"select id, name, address, owner from training_centers%s order by id limit $%d offset $%d",
		where, len(args)+1, len(args)+2,
	)
	args = append(args, params.PageSize, params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.TrainingCenter
	for rows.Next() {
		var center model.TrainingCenter
		if err := rows.Scan(&center.ID, &center.Name, &center.Address, &center.Owner); err != nil {
			return nil, 0, err
		}
		items = append(items, center)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
