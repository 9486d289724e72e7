package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitlabs/workout-api/internal/model"
	"github.com/fitlabs/workout-api/internal/repository"
	"github.com/fitlabs/workout-api/internal/server"
	"github.com/fitlabs/workout-api/internal/service"
)

// TrainingCenterHandler exposes the training center endpoints.
type TrainingCenterHandler struct {
	Handler
	service *service.TrainingCenterService
}

// NewTrainingCenterHandler constructs a TrainingCenterHandler.
func NewTrainingCenterHandler(s *server.Server, svc *service.TrainingCenterService) *TrainingCenterHandler {
	return &TrainingCenterHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// CreateTrainingCenterRequest is the payload for creating a training center.
type CreateTrainingCenterRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=100"`
	Owner   string `json:"owner" validate:"required,max=50"`
}

func (r *CreateTrainingCenterRequest) Validate() error {
	return validate.Struct(r)
}

// GetTrainingCenterRequest identifies a training center by path id.
type GetTrainingCenterRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetTrainingCenterRequest) Validate() error {
	return validate.Struct(r)
}

// ListTrainingCentersRequest carries the optional name filter and page
// controls.
type ListTrainingCentersRequest struct {
	Name     string `query:"name"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1"`
}

func (r *ListTrainingCentersRequest) Validate() error {
	return validate.Struct(r)
}

// TrainingCenterResponse is the wire representation of a training center.
type TrainingCenterResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Owner   string `json:"owner"`
}

func newTrainingCenterResponse(center *model.TrainingCenter) TrainingCenterResponse {
	return TrainingCenterResponse{
		ID:      center.ID,
		Name:    center.Name,
		Address: center.Address,
		Owner:   center.Owner,
	}
}

// Create handles POST /training-centers.
func (h *TrainingCenterHandler) Create(c echo.Context, req *CreateTrainingCenterRequest) (TrainingCenterResponse, error) {
	center, err := h.service.Create(c.Request().Context(), repository.CreateTrainingCenterParams{
		Name:    req.Name,
		Address: req.Address,
		Owner:   req.Owner,
	})
	if err != nil {
		return TrainingCenterResponse{}, err
	}
	return newTrainingCenterResponse(center), nil
}

// Get handles GET /training-centers/:id.
func (h *TrainingCenterHandler) Get(c echo.Context, req *GetTrainingCenterRequest) (TrainingCenterResponse, error) {
	center, err := h.service.Get(c.Request().Context(), req.ID)
	if err != nil {
		return TrainingCenterResponse{}, err
	}
	return newTrainingCenterResponse(center), nil
}

// List handles GET /training-centers.
func (h *TrainingCenterHandler) List(c echo.Context, req *ListTrainingCentersRequest) (repository.Page[TrainingCenterResponse], error) {
	params := repository.PageParams{Page: req.Page, PageSize: req.PageSize}.Normalize()

	centers, total, err := h.service.List(c.Request().Context(), repository.TrainingCenterFilter{Name: req.Name}, params)
	if err != nil {
		return repository.Page[TrainingCenterResponse]{}, err
	}

	items := make([]TrainingCenterResponse, 0, len(centers))
	for i := range centers {
		items = append(items, newTrainingCenterResponse(&centers[i]))
	}

	return repository.NewPage(items, total, params), nil
}
