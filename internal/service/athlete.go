package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/fitlabs/workout-api/internal/errs"
	"github.com/fitlabs/workout-api/internal/model"
	"github.com/fitlabs/workout-api/internal/repository"
	"github.com/fitlabs/workout-api/internal/server"
)

// athleteNotFoundCode is the machine code for a missing athlete row.
var athleteNotFoundCode = "ATHLETE_NOT_FOUND"

// AthleteService owns the athlete lifecycle: create, get, list, partial
// update, delete.
//
// Reference integrity is enforced here: before any write that sets
// category_id or training_center_id, the referenced row must exist. Both
// checks run before the write is attempted, so a failed check has no side
// effects.
type AthleteService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewAthleteService constructs an AthleteService.
func NewAthleteService(s *server.Server, repos *repository.Repositories) *AthleteService {
	return &AthleteService{server: s, repos: repos}
}

// resolveCategory loads the referenced category, mapping an absent row to a
// 400 naming the kind and id.
func (s *AthleteService) resolveCategory(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.repos.Category.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewBadRequestError(
				fmt.Sprintf("Category with id %d not found", id), &categoryNotFoundCode, nil)
		}
		return nil, err
	}
	return category, nil
}

// resolveTrainingCenter loads the referenced training center, mapping an
// absent row to a 400 naming the kind and id.
func (s *AthleteService) resolveTrainingCenter(ctx context.Context, id int64) (*model.TrainingCenter, error) {
	center, err := s.repos.TrainingCenter.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewBadRequestError(
				fmt.Sprintf("Training center with id %d not found", id), &trainingCenterNotFoundCode, nil)
		}
		return nil, err
	}
	return center, nil
}

// Create validates both references, then inserts the athlete. A duplicate
// national id surfaces as the store's unique violation and is translated
// downstream. The returned athlete embeds the resolved references.
func (s *AthleteService) Create(ctx context.Context, params repository.CreateAthleteParams) (*model.Athlete, error) {
	category, err := s.resolveCategory(ctx, params.CategoryID)
	if err != nil {
		return nil, err
	}

	center, err := s.resolveTrainingCenter(ctx, params.TrainingCenterID)
	if err != nil {
		return nil, err
	}

	athlete, err := s.repos.Athlete.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	athlete.Category = category
	athlete.TrainingCenter = center
	return athlete, nil
}

// Get returns the athlete with the given id (references embedded), or a 404
// naming the id.
func (s *AthleteService) Get(ctx context.Context, id int64) (*model.Athlete, error) {
	athlete, err := s.repos.Athlete.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(
				fmt.Sprintf("Athlete not found for id %d", id), &athleteNotFoundCode)
		}
		return nil, err
	}
	return athlete, nil
}

// List returns the filtered, paginated athletes and the filtered total.
func (s *AthleteService) List(ctx context.Context, filter repository.AthleteFilter, params repository.PageParams) ([]model.Athlete, int64, error) {
	return s.repos.Athlete.List(ctx, filter, params)
}

// Update applies a partial update. Reference checks run only for whichever of
// category_id / training_center_id is present in the patch; fields absent
// from the patch keep their prior values. An empty patch is a no-op that
// returns the entity unchanged.
func (s *AthleteService) Update(ctx context.Context, id int64, patch repository.AthletePatch) (*model.Athlete, error) {
	if patch.CategoryID != nil {
		if _, err := s.resolveCategory(ctx, *patch.CategoryID); err != nil {
			return nil, err
		}
	}
	if patch.TrainingCenterID != nil {
		if _, err := s.resolveTrainingCenter(ctx, *patch.TrainingCenterID); err != nil {
			return nil, err
		}
	}

	athlete, err := s.repos.Athlete.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(
				fmt.Sprintf("Athlete not found for id %d", id), &athleteNotFoundCode)
		}
		return nil, err
	}
	return athlete, nil
}

// Delete removes the athlete with the given id, or returns a 404 naming the
// id.
func (s *AthleteService) Delete(ctx context.Context, id int64) error {
	if err := s.repos.Athlete.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errs.NewNotFoundError(
				fmt.Sprintf("Athlete not found for id %d", id), &athleteNotFoundCode)
		}
		return err
	}
	return nil
}
