package repository

import (
	"context"

	"github.com/fitlabs/workout-api/internal/model"
	"github.com/fitlabs/workout-api/internal/server"
)

// CategoryRepository persists and queries Category rows.
type CategoryRepository interface {
	Create(ctx context.Context, name string) (*model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	List(ctx context.Context, filter CategoryFilter, params PageParams) ([]model.Category, int64, error)
}

// TrainingCenterRepository persists and queries TrainingCenter rows.
type TrainingCenterRepository interface {
	Create(ctx context.Context, params CreateTrainingCenterParams) (*model.TrainingCenter, error)
	GetByID(ctx context.Context, id int64) (*model.TrainingCenter, error)
	List(ctx context.Context, filter TrainingCenterFilter, params PageParams) ([]model.TrainingCenter, int64, error)
}

// AthleteRepository persists and queries Athlete rows.
//
// GetByID, List, and Update return athletes with the referenced Category
// and TrainingCenter embedded; Create returns the bare row.
type AthleteRepository interface {
	Create(ctx context.Context, params CreateAthleteParams) (*model.Athlete, error)
	GetByID(ctx context.Context, id int64) (*model.Athlete, error)
	List(ctx context.Context, filter AthleteFilter, params PageParams) ([]model.Athlete, int64, error)
	Update(ctx context.Context, id int64, patch AthletePatch) (*model.Athlete, error)
	Delete(ctx context.Context, id int64) error
}

// Repositories is the container that groups all repository instances,
// injected into the service layer as one object.
type Repositories struct {
	Category       CategoryRepository
	TrainingCenter TrainingCenterRepository
	Athlete        AthleteRepository
}

// NewRepositories constructs the repository container on the server's
// database pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Category:       NewCategoryRepository(s.DB.Pool),
		TrainingCenter: NewTrainingCenterRepository(s.DB.Pool),
		Athlete:        NewAthleteRepository(s.DB.Pool),
	}
}
