package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fitlabs/workout-api/internal/model"
	"github.com/fitlabs/workout-api/internal/repository"
	"github.com/fitlabs/workout-api/internal/server"
	"github.com/fitlabs/workout-api/internal/service"
)

// CategoryHandler exposes the competition category endpoints.
type CategoryHandler struct {
	Handler
	service *service.CategoryService
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(s *server.Server, svc *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// CreateCategoryRequest is the payload for creating a category.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

func (r *CreateCategoryRequest) Validate() error {
	return validate.Struct(r)
}

// GetCategoryRequest identifies a category by path id.
type GetCategoryRequest struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

func (r *GetCategoryRequest) Validate() error {
	return validate.Struct(r)
}

// ListCategoriesRequest carries the optional name filter and page controls.
type ListCategoriesRequest struct {
	Name     string `query:"name"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PageSize int    `query:"page_size" validate:"omitempty,min=1"`
}

func (r *ListCategoriesRequest) Validate() error {
	return validate.Struct(r)
}

// CategoryResponse is the wire representation of a category.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newCategoryResponse(category *model.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
	}
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(c echo.Context, req *CreateCategoryRequest) (CategoryResponse, error) {
	category, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return CategoryResponse{}, err
	}
	return newCategoryResponse(category), nil
}

// Get handles GET /categories/:id.
func (h *CategoryHandler) Get(c echo.Context, req *GetCategoryRequest) (CategoryResponse, error) {
	category, err := h.service.Get(c.Request().Context(), req.ID)
	if err != nil {
		return CategoryResponse{}, err
	}
	return newCategoryResponse(category), nil
}

// List handles GET /categories.
func (h *CategoryHandler) List(c echo.Context, req *ListCategoriesRequest) (repository.Page[CategoryResponse], error) {
	params := repository.PageParams{Page: req.Page, PageSize: req.PageSize}.Normalize()

	categories, total, err := h.service.List(c.Request().Context(), repository.CategoryFilter{Name: req.Name}, params)
	if err != nil {
		return repository.Page[CategoryResponse]{}, err
	}

	items := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, newCategoryResponse(&categories[i]))
	}

	return repository.NewPage(items, total, params), nil
}
