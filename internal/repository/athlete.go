package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitlabs/workout-api/internal/model"
)

// CreateAthleteParams holds the fields for a new athlete.
type CreateAthleteParams struct {
	Name             string
	NationalID       string
	Age              int
	Weight           float64
	Height           float64
	Sex              string
	CategoryID       int64
	TrainingCenterID int64
}

// AthleteFilter holds the optional filters for listing athletes.
// Name applies case-insensitive substring matching; NationalID is an exact
// match.
type AthleteFilter struct {
	Name       string
	NationalID string
}

// AthletePatch is the explicit present-vs-absent representation of a partial
// update. A nil field is left untouched; a non-nil field is written. The
// national id and creation timestamp are immutable and therefore absent here.
type AthletePatch struct {
	Name             *string
	Age              *int
	Weight           *float64
	Height           *float64
	Sex              *string
	CategoryID       *int64
	TrainingCenterID *int64
}

// assignments builds the SET clause fragments for the fields present in the
// patch, numbering placeholders from start.
func (p AthletePatch) assignments(start int) ([]string, []any) {
	var clauses []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, start+len(args)-1))
	}

	if p.Name != nil {
		add("name", *p.Name)
	}
	if p.Age != nil {
		add("age", *p.Age)
	}
	if p.Weight != nil {
		add("weight", *p.Weight)
	}
	if p.Height != nil {
		add("height", *p.Height)
	}
	if p.Sex != nil {
		add("sex", *p.Sex)
	}
	if p.CategoryID != nil {
		add("category_id", *p.CategoryID)
	}
	if p.TrainingCenterID != nil {
		add("training_center_id", *p.TrainingCenterID)
	}

	return clauses, args
}

type athleteRepository struct {
	pool *pgxpool.Pool
}

// NewAthleteRepository creates the pgx-backed AthleteRepository.
func NewAthleteRepository(pool *pgxpool.Pool) AthleteRepository {
	return &athleteRepository{pool: pool}
}

func (r *athleteRepository) Create(ctx context.Context, params CreateAthleteParams) (*model.Athlete, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	athlete := &model.Athlete{
		Name:             params.Name,
		NationalID:       params.NationalID,
		Age:              params.Age,
		Weight:           params.Weight,
		Height:           params.Height,
		Sex:              params.Sex,
		CategoryID:       params.CategoryID,
		TrainingCenterID: params.TrainingCenterID,
	}
	err = tx.QueryRow(ctx,
		`insert into athletes (name, national_id, age, weight, height, sex, category_id, training_center_id)
		 values ($1, $2, $3, $4, $5, $6, $7, $8)
		 returning id, created_at`,
		params.Name, params.NationalID, params.Age, params.Weight,
		params.Height, params.Sex, params.CategoryID, params.TrainingCenterID,
	).Scan(&athlete.ID, &athlete.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return athlete, nil
}

// athleteSelect is the joined projection used by every athlete read path, so
// responses can embed the referenced category and training center.
const athleteSelect = `
select a.id, a.name, a.national_id, a.age, a.weight, a.height, a.sex,
       a.category_id, a.training_center_id, a.created_at,
       c.name, t.name, t.address, t.owner
from athletes a
join categories c on c.id = a.category_id
join training_centers t on t.id = a.training_center_id`

// scanAthlete scans one joined athlete row.
func scanAthlete(row interface{ Scan(...any) error }) (*model.Athlete, error) {
	athlete := &model.Athlete{
		Category:       &model.Category{},
		TrainingCenter: &model.TrainingCenter{},
	}
	err := row.Scan(
		&athlete.ID, &athlete.Name, &athlete.NationalID, &athlete.Age,
		&athlete.Weight, &athlete.Height, &athlete.Sex,
		&athlete.CategoryID, &athlete.TrainingCenterID, &athlete.CreatedAt,
		&athlete.Category.Name,
		&athlete.TrainingCenter.Name, &athlete.TrainingCenter.Address, &athlete.TrainingCenter.Owner,
	)
	if err != nil {
		return nil, err
	}
	athlete.Category.ID = athlete.CategoryID
	athlete.TrainingCenter.ID = athlete.TrainingCenterID
	return athlete, nil
}

func (r *athleteRepository) GetByID(ctx context.Context, id int64) (*model.Athlete, error) {
	return scanAthlete(r.pool.QueryRow(ctx, athleteSelect+" where a.id = $1", id))
}

func (r *athleteRepository) List(ctx context.Context, filter AthleteFilter, params PageParams) ([]model.Athlete, int64, error) {
	params = params.Normalize()

	var conditions []string
	args := []any{}
	if filter.Name != "" {
		args = append(args, filter.Name)
		conditions = append(conditions, fmt.Sprintf("a.name ilike '%%' || $%d || '%%'", len(args)))
	}
	if filter.NationalID != "" {
		args = append(args, filter.NationalID)
		conditions = append(conditions, fmt.Sprintf("a.national_id = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " where " + strings.Join(conditions, " and ")
	}

	var total int64
	if err := r.pool.QueryRow(ctx, "select count(*) from athletes a"+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf("%s%s order by a.id limit $%d offset $%d",
		athleteSelect, where, len(args)+1, len(args)+2)
	args = append(args, params.PageSize, params.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []model.Athlete
	for rows.Next() {
		athlete, err := scanAthlete(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *athlete)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *athleteRepository) Update(ctx context.Context, id int64, patch AthletePatch) (*model.Athlete, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the row first; an absent row surfaces as pgx.ErrNoRows before any
	// write is attempted.
	var lockedID int64
	if err := tx.QueryRow(ctx, `select id from athletes where id = $1 for update`, id).Scan(&lockedID); err != nil {
		return nil, err
	}

	clauses, args := patch.assignments(2)
	if len(clauses) > 0 {
		query := fmt.Sprintf("update athletes set %s where id = $1", strings.Join(clauses, ", "))
		if _, err := tx.Exec(ctx, query, append([]any{id}, args...)...); err != nil {
			return nil, err
		}
	}

	athlete, err := scanAthlete(tx.QueryRow(ctx, athleteSelect+" where a.id = $1", id))
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return athlete, nil
}

func (r *athleteRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var deletedID int64
	if err := tx.QueryRow(ctx, `delete from athletes where id = $1 returning id`, id).Scan(&deletedID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
