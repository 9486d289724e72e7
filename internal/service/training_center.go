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

// trainingCenterNotFoundCode is the machine code for a missing training
// center row.
var trainingCenterNotFoundCode = "TRAINING_CENTER_NOT_FOUND"

// TrainingCenterService owns the training center operations: create, get,
// list. Training centers are create-only; no update or delete is exposed.
type TrainingCenterService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewTrainingCenterService constructs a TrainingCenterService.
func NewTrainingCenterService(s *server.Server, repos *repository.Repositories) *TrainingCenterService {
	return &TrainingCenterService{server: s, repos: repos}
}

// Create inserts a new training center. A duplicate name surfaces as the
// store's unique violation and is translated downstream.
func (s *TrainingCenterService) Create(ctx context.Context, params repository.CreateTrainingCenterParams) (*model.TrainingCenter, error) {
	return s.repos.TrainingCenter.Create(ctx, params)
}

// Get returns the training center with the given id, or a 404 naming the id.
func (s *TrainingCenterService) Get(ctx context.Context, id int64) (*model.TrainingCenter, error) {
	center, err := s.repos.TrainingCenter.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(
				fmt.Sprintf("Training center not found for id %d", id), &trainingCenterNotFoundCode)
		}
		return nil, err
	}
	return center, nil
}

// List returns the filtered, paginated training centers and the filtered
// total.
func (s *TrainingCenterService) List(ctx context.Context, filter repository.TrainingCenterFilter, params repository.PageParams) ([]model.TrainingCenter, int64, error) {
	return s.repos.TrainingCenter.List(ctx, filter, params)
}
