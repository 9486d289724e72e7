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

// categoryNotFoundCode is the machine code for a missing category row.
var categoryNotFoundCode = "CATEGORY_NOT_FOUND"

// CategoryService owns the category operations: create, get, list.
// Categories are create-only; no update or delete is exposed.
type CategoryService struct {
	server *server.Server
	repos  *repository.Repositories
}

// NewCategoryService constructs a CategoryService.
func NewCategoryService(s *server.Server, repos *repository.Repositories) *CategoryService {
	return &CategoryService{server: s, repos: repos}
}

// Create inserts a new category. A duplicate name surfaces as the store's
// unique violation and is translated downstream.
func (s *CategoryService) Create(ctx context.Context, name string) (*model.Category, error) {
	return s.repos.Category.Create(ctx, name)
}

// Get returns the category with the given id, or a 404 naming the id.
func (s *CategoryService) Get(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.repos.Category.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.NewNotFoundError(
				fmt.Sprintf("Category not found for id %d", id), &categoryNotFoundCode)
		}
		return nil, err
	}
	return category, nil
}

// List returns the filtered, paginated categories and the filtered total.
func (s *CategoryService) List(ctx context.Context, filter repository.CategoryFilter, params repository.PageParams) ([]model.Category, int64, error) {
	return s.repos.Category.List(ctx, filter, params)
}
