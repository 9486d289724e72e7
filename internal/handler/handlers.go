package handler

import (
	"github.com/fitlabs/workout-api/internal/server"
	"github.com/fitlabs/workout-api/internal/service"
)

// Handlers is the container for all HTTP handlers.
type Handlers struct {
	Health         *HealthHandler
	OpenAPI        *OpenAPIHandler
	Category       *CategoryHandler
	TrainingCenter *TrainingCenterHandler
	Athlete        *AthleteHandler
}

// NewHandlers creates the handler container wired to the service layer.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:         NewHealthHandler(s),
		OpenAPI:        NewOpenAPIHandler(s),
		Category:       NewCategoryHandler(s, services.Category),
		TrainingCenter: NewTrainingCenterHandler(s, services.TrainingCenter),
		Athlete:        NewAthleteHandler(s, services.Athlete),
	}
}
