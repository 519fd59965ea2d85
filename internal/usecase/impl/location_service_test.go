package impl

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/errors"
	mockrepo "clinic/internal/mocks/repository"
	"clinic/internal/usecase"
)

func newLocationService(t *testing.T) (usecase.LocationUsecase, *mockrepo.MockLocationRepository) {
	t.Helper()
	repo := new(mockrepo.MockLocationRepository)
	return NewLocationService(repo, testConfig(), slog.Default()), repo
}

func strPtr(s string) *string { return &s }

func TestLocationService_CreateLocation(t *testing.T) {
	svc, repo := newLocationService(t)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.Location) bool {
		return l.Name == "General Hospital" && l.ID != uuid.Nil
	})).Return(nil)

	location, err := svc.CreateLocation(context.Background(), usecase.LocationInput{
		Name: "General Hospital",
		City: strPtr("Springfield"),
	})

	require.NoError(t, err)
	assert.Equal(t, "General Hospital", location.Name)
	assert.Equal(t, "Springfield", *location.City)
	assert.False(t, location.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestLocationService_UpdateLocation(t *testing.T) {
	locationID := uuid.New()

	t.Run("replaces all fields", func(t *testing.T) {
		svc, repo := newLocationService(t)

		existing := &entity.Location{ID: locationID, Name: "Old Name", City: strPtr("Oldtown")}
		repo.On("FindByID", mock.Anything, locationID).Return(existing, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(l *entity.Location) bool {
			return l.Name == "New Name" && l.City == nil
		})).Return(nil)

		updated, err := svc.UpdateLocation(context.Background(), locationID, usecase.LocationInput{
			Name: "New Name",
		})

		require.NoError(t, err)
		assert.Equal(t, "New Name", updated.Name)
		assert.Nil(t, updated.City)
	})

	t.Run("missing location", func(t *testing.T) {
		svc, repo := newLocationService(t)

		repo.On("FindByID", mock.Anything, locationID).Return(nil, domainerrors.ErrLocationNotFound)

		_, err := svc.UpdateLocation(context.Background(), locationID, usecase.LocationInput{Name: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
	})
}

func TestLocationService_BlankNameRejected(t *testing.T) {
	locationID := uuid.New()

	for _, name := range []string{"", "   ", "\t\n"} {
		t.Run("create", func(t *testing.T) {
			svc, repo := newLocationService(t)

			_, err := svc.CreateLocation(context.Background(), usecase.LocationInput{Name: name})

			require.Error(t, err)
			valErr, ok := errors.AsType[*domainerrors.ValidationError](err)
			require.True(t, ok)
			assert.Contains(t, valErr.Fields(), "name")
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})

		t.Run("update", func(t *testing.T) {
			svc, repo := newLocationService(t)

			_, err := svc.UpdateLocation(context.Background(), locationID, usecase.LocationInput{Name: name})

			require.Error(t, err)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})

		t.Run("partial update", func(t *testing.T) {
			svc, repo := newLocationService(t)

			_, err := svc.PartialUpdateLocation(context.Background(), locationID, usecase.LocationPatch{Name: &name})

			require.Error(t, err)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestLocationService_PartialUpdateLocation(t *testing.T) {
	locationID := uuid.New()
	svc, repo := newLocationService(t)

	existing := &entity.Location{ID: locationID, Name: "Old Name", City: strPtr("Springfield")}
	repo.On("FindByID", mock.Anything, locationID).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(l *entity.Location) bool {
		return l.Name == "New Name" && l.City != nil && *l.City == "Springfield"
	})).Return(nil)

	updated, err := svc.PartialUpdateLocation(context.Background(), locationID, usecase.LocationPatch{
		Name: strPtr("New Name"),
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Springfield", *updated.City)
	repo.AssertExpectations(t)
}

func TestLocationService_DeleteLocation(t *testing.T) {
	locationID := uuid.New()
	svc, repo := newLocationService(t)

	repo.On("Delete", mock.Anything, locationID).Return(nil)

	require.NoError(t, svc.DeleteLocation(context.Background(), locationID))
	repo.AssertExpectations(t)
}

func TestLocationService_ListLocations(t *testing.T) {
	svc, repo := newLocationService(t)

	locations := []*entity.Location{{ID: uuid.New(), Name: "Clinic A"}}
	repo.On("List", mock.Anything, mock.Anything).Return(locations, int64(1), nil)

	result, total, err := svc.ListLocations(context.Background(), usecase.ListInput{Search: "Clinic"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, result, 1)
}
