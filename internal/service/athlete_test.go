package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlabs/workout-api/internal/errs"
	"github.com/fitlabs/workout-api/internal/repository"
	"github.com/fitlabs/workout-api/internal/repository/repositorytest"
	"github.com/fitlabs/workout-api/internal/server"
)

func newTestServices(t *testing.T) (*Services, *repository.Repositories) {
	t.Helper()

	repos := repositorytest.NewRepositories()
	services, err := NewServices(&server.Server{}, repos)
	require.NoError(t, err)
	return services, repos
}

func seedReferences(t *testing.T, services *Services) (categoryID, centerID int64) {
	t.Helper()
	ctx := context.Background()

	category, err := services.Category.Create(ctx, "Scale")
	require.NoError(t, err)

	center, err := services.TrainingCenter.Create(ctx, repository.CreateTrainingCenterParams{
		Name:    "CT King",
		Address: "Av Central 500",
		Owner:   "Marcos",
	})
	require.NoError(t, err)

	return category.ID, center.ID
}

func validAthleteParams(categoryID, centerID int64) repository.CreateAthleteParams {
	return repository.CreateAthleteParams{
		Name:             "Joana",
		NationalID:       "12345678900",
		Age:              25,
		Weight:           64.5,
		Height:           1.70,
		Sex:              "F",
		CategoryID:       categoryID,
		TrainingCenterID: centerID,
	}
}

func assertHTTPStatus(t *testing.T, err error, status int) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, status, httpErr.Status)
	return httpErr
}

func TestAthleteCreateEmbedsReferences(t *testing.T) {
	services, _ := newTestServices(t)
	categoryID, centerID := seedReferences(t, services)
	ctx := context.Background()

	athlete, err := services.Athlete.Create(ctx, validAthleteParams(categoryID, centerID))
	require.NoError(t, err)

	assert.NotZero(t, athlete.ID)
	assert.False(t, athlete.CreatedAt.IsZero())
	require.NotNil(t, athlete.Category)
	assert.Equal(t, "Scale", athlete.Category.Name)
	require.NotNil(t, athlete.TrainingCenter)
	assert.Equal(t, "CT King", athlete.TrainingCenter.Name)
}

func TestAthleteCreateMissingCategory(t *testing.T) {
	services, _ := newTestServices(t)
	_, centerID := seedReferences(t, services)
	ctx := context.Background()

	params := validAthleteParams(999, centerID)
	_, err := services.Athlete.Create(ctx, params)

	httpErr := assertHTTPStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "CATEGORY_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "Category with id 999 not found", httpErr.Message)
}

func TestAthleteCreateMissingTrainingCenter(t *testing.T) {
	services, _ := newTestServices(t)
	categoryID, _ := seedReferences(t, services)
	ctx := context.Background()

	params := validAthleteParams(categoryID, 999)
	_, err := services.Athlete.Create(ctx, params)

	httpErr := assertHTTPStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "TRAINING_CENTER_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "Training center with id 999 not found", httpErr.Message)
}

func TestAthleteCreateDuplicateNationalIDPropagatesDriverError(t *testing.T) {
	// Uniqueness is not pre-checked in the business layer; the driver error
	// must reach the global error handler untranslated.
	services, _ := newTestServices(t)
	categoryID, centerID := seedReferences(t, services)
	ctx := context.Background()

	_, err := services.Athlete.Create(ctx, validAthleteParams(categoryID, centerID))
	require.NoError(t, err)

	params := validAthleteParams(categoryID, centerID)
	params.Name = "Outra Pessoa"
	_, err = services.Athlete.Create(ctx, params)

	require.Error(t, err)
	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, "23505", pgErr.Code)
}

func TestAthleteGetNotFound(t *testing.T) {
	services, _ := newTestServices(t)

	_, err := services.Athlete.Get(context.Background(), 42)

	httpErr := assertHTTPStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "ATHLETE_NOT_FOUND", httpErr.Code)
	assert.Equal(t, "Athlete not found for id 42", httpErr.Message)
}

func TestAthleteUpdatePartial(t *testing.T) {
	services, _ := newTestServices(t)
	categoryID, centerID := seedReferences(t, services)
	ctx := context.Background()

	created, err := services.Athlete.Create(ctx, validAthleteParams(categoryID, centerID))
	require.NoError(t, err)

	weight := 66.0
	updated, err := services.Athlete.Update(ctx, created.ID, repository.AthletePatch{Weight: &weight})
	require.NoError(t, err)

	assert.Equal(t, 66.0, updated.Weight)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.NationalID, updated.NationalID)
	assert.Equal(t, created.Age, updated.Age)
}

func TestAthleteUpdateEmptyPatchIsNoOp(t *testing.T) {
	services, _ := newTestServices(t)
	categoryID, centerID := seedReferences(t, services)
	ctx := context.Background()

	created, err := services.Athlete.Create(ctx, validAthleteParams(categoryID, centerID))
	require.NoError(t, err)

	updated, err := services.Athlete.Update(ctx, created.ID, repository.AthletePatch{})
	require.NoError(t, err)
	assert.Equal(t, created.Weight, updated.Weight)
	assert.Equal(t, created.Name, updated.Name)
}

func TestAthleteUpdateChecksNewReferenceOnly(t *testing.T) {
	services, _ := newTestServices(t)
	categoryID, centerID := seedReferences(t, services)
	ctx := context.Background()

	created, err := services.Athlete.Create(ctx, validAthleteParams(categoryID, centerID))
	require.NoError(t, err)

	missing := int64(999)
	_, err = services.Athlete.Update(ctx, created.ID, repository.AthletePatch{CategoryID: &missing})

	httpErr := assertHTTPStatus(t, err, http.StatusBadRequest)
	assert.Equal(t, "CATEGORY_NOT_FOUND", httpErr.Code)

	// The failed check must leave the athlete untouched.
	athlete, err := services.Athlete.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, categoryID, athlete.CategoryID)
}

func TestAthleteUpdateNotFound(t *testing.T) {
	services, _ := newTestServices(t)
	seedReferences(t, services)

	name := "Nova"
	_, err := services.Athlete.Update(context.Background(), 42, repository.AthletePatch{Name: &name})

	httpErr := assertHTTPStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "ATHLETE_NOT_FOUND", httpErr.Code)
}

func TestAthleteDelete(t *testing.T) {
	services, _ := newTestServices(t)
	categoryID, centerID := seedReferences(t, services)
	ctx := context.Background()

	created, err := services.Athlete.Create(ctx, validAthleteParams(categoryID, centerID))
	require.NoError(t, err)

	require.NoError(t, services.Athlete.Delete(ctx, created.ID))

	_, err = services.Athlete.Get(ctx, created.ID)
	assertHTTPStatus(t, err, http.StatusNotFound)

	err = services.Athlete.Delete(ctx, created.ID)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestAthleteListFilters(t *testing.T) {
	services, _ := newTestServices(t)
	categoryID, centerID := seedReferences(t, services)
	ctx := context.Background()

	first := validAthleteParams(categoryID, centerID)
	_, err := services.Athlete.Create(ctx, first)
	require.NoError(t, err)

	second := validAthleteParams(categoryID, centerID)
	second.Name = "Carlos"
	second.NationalID = "98765432100"
	_, err = services.Athlete.Create(ctx, second)
	require.NoError(t, err)

	// Case-insensitive substring on name.
	athletes, total, err := services.Athlete.List(ctx, repository.AthleteFilter{Name: "joa"}, repository.PageParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, athletes, 1)
	assert.Equal(t, "Joana", athletes[0].Name)

	// Exact match on national id.
	athletes, total, err = services.Athlete.List(ctx, repository.AthleteFilter{NationalID: "98765432100"}, repository.PageParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, athletes, 1)
	assert.Equal(t, "Carlos", athletes[0].Name)

	// No filter returns everything.
	_, total, err = services.Athlete.List(ctx, repository.AthleteFilter{}, repository.PageParams{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}
