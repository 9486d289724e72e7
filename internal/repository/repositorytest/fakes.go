// Package repositorytest provides in-memory repository fakes for tests.
//
// The fakes mirror the store's observable behavior: pgx.ErrNoRows for absent
// rows and *pgconn.PgError with the real SQLSTATE and constraint metadata for
// uniqueness collisions, so error translation can be exercised without a
// database.
package repositorytest

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/fitlabs/workout-api/internal/model"
	"github.com/fitlabs/workout-api/internal/repository"
)

// NewRepositories builds a repository container backed entirely by fakes.
func NewRepositories() *repository.Repositories {
	categories := NewCategoryRepo()
	centers := NewTrainingCenterRepo()
	return &repository.Repositories{
		Category:       categories,
		TrainingCenter: centers,
		Athlete:        NewAthleteRepo(categories, centers),
	}
}

// CategoryRepo is an in-memory repository.CategoryRepository.
type CategoryRepo struct {
	nextID     int64
	categories map[int64]model.Category
}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{nextID: 1, categories: map[int64]model.Category{}}
}

func (f *CategoryRepo) Create(ctx context.Context, name string) (*model.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return nil, &pgconn.PgError{
				Code:           "23505",
				TableName:      "categories",
				ConstraintName: "categories_name_key",
				Detail:         "Key (name)=(" + name + ") already exists.",
			}
		}
	}
	category := model.Category{ID: f.nextID, Name: name}
	f.categories[category.ID] = category
	f.nextID++
	return &category, nil
}

func (f *CategoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &category, nil
}

func (f *CategoryRepo) List(ctx context.Context, filter repository.CategoryFilter, params repository.PageParams) ([]model.Category, int64, error) {
	params = params.Normalize()

	var matched []model.Category
	for id := int64(1); id < f.nextID; id++ {
		category, ok := f.categories[id]
		if !ok {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(category.Name), strings.ToLower(filter.Name)) {
			continue
		}
		matched = append(matched, category)
	}

	return pageOf(matched, params), int64(len(matched)), nil
}

// TrainingCenterRepo is an in-memory repository.TrainingCenterRepository.
type TrainingCenterRepo struct {
	nextID  int64
	centers map[int64]model.TrainingCenter
}

func NewTrainingCenterRepo() *TrainingCenterRepo {
	return &TrainingCenterRepo{nextID: 1, centers: map[int64]model.TrainingCenter{}}
}

func (f *TrainingCenterRepo) Create(ctx context.Context, params repository.CreateTrainingCenterParams) (*model.TrainingCenter, error) {
	for _, c := range f.centers {
		if c.Name == params.Name {
			return nil, &pgconn.PgError{
				Code:           "23505",
				TableName:      "training_centers",
				ConstraintName: "training_centers_name_key",
				Detail:         "Key (name)=(" + params.Name + ") already exists.",
			}
		}
	}
	center := model.TrainingCenter{
		ID:      f.nextID,
		Name:    params.Name,
		Address: params.Address,
		Owner:   params.Owner,
	}
	f.centers[center.ID] = center
	f.nextID++
	return &center, nil
}

func (f *TrainingCenterRepo) GetByID(ctx context.Context, id int64) (*model.TrainingCenter, error) {
	center, ok := f.centers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &center, nil
}

func (f *TrainingCenterRepo) List(ctx context.Context, filter repository.TrainingCenterFilter, params repository.PageParams) ([]model.TrainingCenter, int64, error) {
	params = params.Normalize()

	var matched []model.TrainingCenter
	for id := int64(1); id < f.nextID; id++ {
		center, ok := f.centers[id]
		if !ok {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(center.Name), strings.ToLower(filter.Name)) {
			continue
		}
		matched = append(matched, center)
	}

	return pageOf(matched, params), int64(len(matched)), nil
}

// AthleteRepo is an in-memory repository.AthleteRepository. It resolves the
// referenced category and training center on reads, like the store's joined
// queries.
type AthleteRepo struct {
	nextID   int64
	athletes map[int64]model.Athlete

	categories *CategoryRepo
	centers    *TrainingCenterRepo
}

func NewAthleteRepo(categories *CategoryRepo, centers *TrainingCenterRepo) *AthleteRepo {
	return &AthleteRepo{
		nextID:     1,
		athletes:   map[int64]model.Athlete{},
		categories: categories,
		centers:    centers,
	}
}

func (f *AthleteRepo) Create(ctx context.Context, params repository.CreateAthleteParams) (*model.Athlete, error) {
	for _, a := range f.athletes {
		if a.NationalID == params.NationalID {
			return nil, &pgconn.PgError{
				Code:           "23505",
				TableName:      "athletes",
				ConstraintName: "athletes_national_id_key",
				Detail:         "Key (national_id)=(" + params.NationalID + ") already exists.",
			}
		}
	}
	athlete := model.Athlete{
		ID:               f.nextID,
		Name:             params.Name,
		NationalID:       params.NationalID,
		Age:              params.Age,
		Weight:           params.Weight,
		Height:           params.Height,
		Sex:              params.Sex,
		CategoryID:       params.CategoryID,
		TrainingCenterID: params.TrainingCenterID,
		CreatedAt:        time.Now().UTC(),
	}
	f.athletes[athlete.ID] = athlete
	f.nextID++
	return &athlete, nil
}

func (f *AthleteRepo) embed(athlete model.Athlete) model.Athlete {
	if category, ok := f.categories.categories[athlete.CategoryID]; ok {
		athlete.Category = &category
	}
	if center, ok := f.centers.centers[athlete.TrainingCenterID]; ok {
		athlete.TrainingCenter = &center
	}
	return athlete
}

func (f *AthleteRepo) GetByID(ctx context.Context, id int64) (*model.Athlete, error) {
	athlete, ok := f.athletes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	athlete = f.embed(athlete)
	return &athlete, nil
}

func (f *AthleteRepo) List(ctx context.Context, filter repository.AthleteFilter, params repository.PageParams) ([]model.Athlete, int64, error) {
	params = params.Normalize()

	var matched []model.Athlete
	for id := int64(1); id < f.nextID; id++ {
		athlete, ok := f.athletes[id]
		if !ok {
			continue
		}
		if filter.Name != "" && !strings.Contains(strings.ToLower(athlete.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.NationalID != "" && athlete.NationalID != filter.NationalID {
			continue
		}
		matched = append(matched, f.embed(athlete))
	}

	return pageOf(matched, params), int64(len(matched)), nil
}

func (f *AthleteRepo) Update(ctx context.Context, id int64, patch repository.AthletePatch) (*model.Athlete, error) {
	athlete, ok := f.athletes[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}

	if patch.Name != nil {
		athlete.Name = *patch.Name
	}
	if patch.Age != nil {
		athlete.Age = *patch.Age
	}
	if patch.Weight != nil {
		athlete.Weight = *patch.Weight
	}
	if patch.Height != nil {
		athlete.Height = *patch.Height
	}
	if patch.Sex != nil {
		athlete.Sex = *patch.Sex
	}
	if patch.CategoryID != nil {
		athlete.CategoryID = *patch.CategoryID
	}
	if patch.TrainingCenterID != nil {
		athlete.TrainingCenterID = *patch.TrainingCenterID
	}

	f.athletes[id] = athlete
	athlete = f.embed(athlete)
	return &athlete, nil
}

func (f *AthleteRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.athletes[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.athletes, id)
	return nil
}

// pageOf applies the offset/limit window to an already filtered slice.
func pageOf[T any](items []T, params repository.PageParams) []T {
	offset := params.Offset()
	if offset >= len(items) {
		return nil
	}
	end := offset + params.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
