package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlabs/workout-api/internal/repository"
)

func TestCategoryCreateAndGet(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	created, err := services.Category.Create(ctx, "Scale")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := services.Category.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Scale", got.Name)
}

func TestCategoryGetNotFound(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.Category.Get(context.Background(), 9)

	httpErr := assertHTTPStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "CATEGORY_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "Category not found for id 9", httpErr.Message)
}

func TestCategoryListPagination(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	names := []string{"Scale", "Rx", "Elite", "Beginner", "Master"}
	for _, name := range names {
		_, err := services.Category.Create(ctx, name)
		require.NoError(t, err)
	}

	categories, total, err := services.Category.List(ctx, repository.CategoryFilter{}, repository.PageParams{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, categories, 2)
	assert.Equal(t, "Elite", categories[0].Name)
	assert.Equal(t, "Beginner", categories[1].Name)

	// Past the last page: empty items, same total.
	categories, total, err = services.Category.List(ctx, repository.CategoryFilter{}, repository.PageParams{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, categories)
}

func TestCategoryListNameFilter(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	for _, name := range []string{"Scale", "Rx", "Master Scale"} {
		_, err := services.Category.Create(ctx, name)
		require.NoError(t, err)
	}

	categories, total, err := services.Category.List(ctx, repository.CategoryFilter{Name: "scale"}, repository.PageParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, categories, 2)
}

func TestTrainingCenterCreateAndGet(t *testing.T) {
	services, _ := newTestServices(t)
	ctx := context.Background()

	created, err := services.TrainingCenter.Create(ctx, repository.CreateTrainingCenterParams{
		Name:    "CT King",
		Address: "Av Central 500",
		Owner:   "Marcos",
	})
	require.NoError(t, err)

	got, err := services.TrainingCenter.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "CT King", got.Name)
	assert.Equal(t, "Av Central 500", got.Address)
	assert.Equal(t, "Marcos", got.Owner)
}

func TestTrainingCenterGetNotFound(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.TrainingCenter.Get(context.Background(), 3)

	httpErr := assertHTTPStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "TRAINING_CENTER_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "Training center not found for id 3", httpErr.Message)
}
