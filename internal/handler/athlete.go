package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fitlabs/workout-api/internal/model"
	"github.com/fitlabs/workout-api/internal/repository"
	"github.com/fitlabs/workout-api/internal/server"
	"github.com/fitlabs/workout-api/internal/service"
)

// AthleteHandler exposes the athlete endpoints.
type AthleteHandler struct {
	Handler
	service *service.AthleteService
}

// NewAthleteHandler constructs an AthleteHandler.
func NewAthleteHandler(s *server.Server, svc *service.AthleteService) *AthleteHandler {
	return &AthleteHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// CreateAthleteRequest is the payload for registering an athlete.
type CreateAthleteRequest struct {
	Name             string  `json:"name" validate:"required,max=50"`
	NationalID       string  `json:"national_id" validate:"required,len=11"`
	Age              int     `json:"age" validate:"required,gt=0"`
	Weight           float64 `json:"weight" validate:"required,gt=0"`
	Height           float64 `json:"height" validate:"required,gt=0"`
	Sex              string  `json:"sex" validate:"required,oneof=M F"`
	CategoryID       int64   `json:"category_id" validate:"required,gt=0"`
	TrainingCenterID int64   `json:"training_center_id" validate:"required,gt=0"`
}

func (r *CreateAthleteRequest) Validate() error {
	return validate.Struct(r)
}

// GetAthleteRequest identifies an athlete by path id.
type GetAthleteRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetAthleteRequest) Validate() error {
	return validate.Struct(r)
}

// ListAthletesRequest carries the optional filters and page controls. Name
// matches case-insensitively on substring; national_id matches exactly.
type ListAthletesRequest struct {
	Name       string `query:"name"`
	NationalID string `query:"national_id"`
	Page       int    `query:"page" validate:"omitempty,min=1"`
	PageSize   int    `query:"page_size" validate:"omitempty,min=1"`
}

func (r *ListAthletesRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateAthleteRequest is the partial update payload. Absent fields keep
// their stored values; the national id is immutable and not accepted here.
type UpdateAthleteRequest struct {
	ID               int64    `json:"-" param:"id" validate:"required,gt=0"`
	Name             *string  `json:"name" validate:"omitempty,min=1,max=50"`
	Age              *int     `json:"age" validate:"omitempty,gt=0"`
	Weight           *float64 `json:"weight" validate:"omitempty,gt=0"`
	Height           *float64 `json:"height" validate:"omitempty,gt=0"`
	Sex              *string  `json:"sex" validate:"omitempty,oneof=M F"`
	CategoryID       *int64   `json:"category_id" validate:"omitempty,gt=0"`
	TrainingCenterID *int64   `json:"training_center_id" validate:"omitempty,gt=0"`
}

func (r *UpdateAthleteRequest) Validate() error {
	return validate.Struct(r)
}

// DeleteAthleteRequest identifies an athlete to remove.
type DeleteAthleteRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *DeleteAthleteRequest) Validate() error {
	return validate.Struct(r)
}

// AthleteResponse is the wire representation of an athlete, with the
// referenced category and training center embedded when available.
type AthleteResponse struct {
	ID             int64                   `json:"id"`
	Name           string                  `json:"name"`
	NationalID     string                  `json:"national_id"`
	Age            int                     `json:"age"`
	Weight         float64                 `json:"weight"`
	Height         float64                 `json:"height"`
	Sex            string                  `json:"sex"`
	CreatedAt      time.Time               `json:"created_at"`
	Category       *CategoryResponse       `json:"category,omitempty"`
	TrainingCenter *TrainingCenterResponse `json:"training_center,omitempty"`
}

func newAthleteResponse(athlete *model.Athlete) AthleteResponse {
	resp := AthleteResponse{
		ID:         athlete.ID,
		Name:       athlete.Name,
		NationalID: athlete.NationalID,
		Age:        athlete.Age,
		Weight:     athlete.Weight,
		Height:     athlete.Height,
		Sex:        athlete.Sex,
		CreatedAt:  athlete.CreatedAt,
	}
	if athlete.Category != nil {
		category := newCategoryResponse(athlete.Category)
		resp.Category = &category
	}
	if athlete.TrainingCenter != nil {
		center := newTrainingCenterResponse(athlete.TrainingCenter)
		resp.TrainingCenter = &center
	}
	return resp
}

// Create handles POST /athletes.
func (h *AthleteHandler) Create(c echo.Context, req *CreateAthleteRequest) (AthleteResponse, error) {
	athlete, err := h.service.Create(c.Request().Context(), repository.CreateAthleteParams{
		Name:             req.Name,
		NationalID:       req.NationalID,
		Age:              req.Age,
		Weight:           req.Weight,
		Height:           req.Height,
		Sex:              req.Sex,
		CategoryID:       req.CategoryID,
		TrainingCenterID: req.TrainingCenterID,
	})
	if err != nil {
		return AthleteResponse{}, err
	}
	return newAthleteResponse(athlete), nil
}

// Get handles GET /athletes/:id.
func (h *AthleteHandler) Get(c echo.Context, req *GetAthleteRequest) (AthleteResponse, error) {
	athlete, err := h.service.Get(c.Request().Context(), req.ID)
	if err != nil {
		return AthleteResponse{}, err
	}
	return newAthleteResponse(athlete), nil
}

// List handles GET /athletes.
func (h *AthleteHandler) List(c echo.Context, req *ListAthletesRequest) (repository.Page[AthleteResponse], error) {
	params := repository.PageParams{Page: req.Page, PageSize: req.PageSize}.Normalize()
	filter := repository.AthleteFilter{
		Name:       req.Name,
		NationalID: req.NationalID,
	}

	athletes, total, err := h.service.List(c.Request().Context(), filter, params)
	if err != nil {
		return repository.Page[AthleteResponse]{}, err
	}

	items := make([]AthleteResponse, 0, len(athletes))
	for i := range athletes {
		items = append(items, newAthleteResponse(&athletes[i]))
	}

	return repository.NewPage(items, total, params), nil
}

// Update handles PATCH /athletes/:id.
func (h *AthleteHandler) Update(c echo.Context, req *UpdateAthleteRequest) (AthleteResponse, error) {
	athlete, err := h.service.Update(c.Request().Context(), req.ID, repository.AthletePatch{
		Name:             req.Name,
		Age:              req.Age,
		Weight:           req.Weight,
		Height:           req.Height,
		Sex:              req.Sex,
		CategoryID:       req.CategoryID,
		TrainingCenterID: req.TrainingCenterID,
	})
	if err != nil {
		return AthleteResponse{}, err
	}
	return newAthleteResponse(athlete), nil
}

// Delete handles DELETE /athletes/:id.
func (h *AthleteHandler) Delete(c echo.Context, req *DeleteAthleteRequest) error {
	return h.service.Delete(c.Request().Context(), req.ID)
}
