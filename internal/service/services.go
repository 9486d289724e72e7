package service

import (
	"github.com/fitlabs/workout-api/internal/repository"
	"github.com/fitlabs/workout-api/internal/server"
)

// Services is the container that groups all business-layer services.
type Services struct {
	Category       *CategoryService
	TrainingCenter *TrainingCenterService
	Athlete        *AthleteService
}

// NewServices constructs the service container.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Category:       NewCategoryService(s, repos),
		TrainingCenter: NewTrainingCenterService(s, repos),
		Athlete:        NewAthleteService(s, repos),
	}, nil
}
