package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

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

func newPatientService(t *testing.T) (usecase.PatientUsecase, *mockrepo.MockPatientRepository, *mockrepo.MockLocationRepository) {
	t.Helper()
	patientRepo := new(mockrepo.MockPatientRepository)
	locationRepo := new(mockrepo.MockLocationRepository)
	svc := NewPatientService(patientRepo, locationRepo, testConfig(), slog.Default())
	return svc, patientRepo, locationRepo
}

func patientInput(userID uuid.UUID) usecase.PatientInput {
	return usecase.PatientInput{
		UserID:      userID,
		FirstName:   "John",
		LastName:    "Smith",
		DateOfBirth: time.Date(1980, 5, 12, 0, 0, 0, 0, time.UTC),
		Gender:      entity.GenderMale,
	}
}

func TestPatientService_CreatePatient(t *testing.T) {
	userID := uuid.New()

	t.Run("creates and reloads the patient", func(t *testing.T) {
		svc, patientRepo, _ := newPatientService(t)

		var createdID uuid.UUID
		patientRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Patient) bool {
			createdID = p.ID
			return p.UserID == userID && p.FirstName == "John"
		})).Return(nil)
		patientRepo.On("FindByID", mock.Anything, mock.Anything).
			Return(&entity.Patient{FirstName: "John", LastName: "Smith", UserID: userID}, nil)

		patient, err := svc.CreatePatient(context.Background(), patientInput(userID))

		require.NoError(t, err)
		assert.Equal(t, "John Smith", patient.FullName())
		assert.NotEqual(t, uuid.Nil, createdID)
	})

	t.Run("normalizes birth date to midnight UTC", func(t *testing.T) {
		svc, patientRepo, _ := newPatientService(t)

		input := patientInput(userID)
		input.DateOfBirth = time.Date(1980, 5, 12, 17, 30, 0, 0, time.FixedZone("X", 3600))

		patientRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Patient) bool {
			want := time.Date(1980, 5, 12, 0, 0, 0, 0, time.UTC)
			return p.DateOfBirth.Equal(want)
		})).Return(nil)
		patientRepo.On("FindByID", mock.Anything, mock.Anything).
			Return(&entity.Patient{}, nil)

		_, err := svc.CreatePatient(context.Background(), input)
		require.NoError(t, err)
		patientRepo.AssertExpectations(t)
	})

	t.Run("rejects an unknown place", func(t *testing.T) {
		svc, patientRepo, locationRepo := newPatientService(t)

		placeID := uuid.New()
		input := patientInput(userID)
		input.PlaceID = &placeID

		locationRepo.On("FindByID", mock.Anything, placeID).
			Return(nil, domainerrors.ErrLocationNotFound)

		_, err := svc.CreatePatient(context.Background(), input)

		require.Error(t, err)
		valErr, ok := errors.AsType[*domainerrors.ValidationError](err)
		require.True(t, ok)
		assert.Contains(t, valErr.Fields(), "place")
		patientRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("surfaces a duplicate patient", func(t *testing.T) {
		svc, patientRepo, _ := newPatientService(t)

		patientRepo.On("Create", mock.Anything, mock.Anything).
			Return(domainerrors.ErrPatientAlreadyExists)

		_, err := svc.CreatePatient(context.Background(), patientInput(userID))

		assert.ErrorIs(t, err, domainerrors.ErrPatientAlreadyExists)
	})
}

func TestPatientService_UpdatePatient(t *testing.T) {
	userID := uuid.New()
	patientID := uuid.New()

	t.Run("keeps the original owner", func(t *testing.T) {
		svc, patientRepo, _ := newPatientService(t)

		existing := &entity.Patient{ID: patientID, UserID: userID, FirstName: "John", LastName: "Smith"}
		patientRepo.On("FindByID", mock.Anything, patientID).Return(existing, nil)
		patientRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Patient) bool {
			return p.UserID == userID && p.FirstName == "Johnny"
		})).Return(nil)

		input := patientInput(uuid.Nil)
		input.FirstName = "Johnny"

		_, err := svc.UpdatePatient(context.Background(), patientID, input)
		require.NoError(t, err)
		patientRepo.AssertExpectations(t)
	})

	t.Run("missing patient", func(t *testing.T) {
		svc, patientRepo, _ := newPatientService(t)

		patientRepo.On("FindByID", mock.Anything, patientID).
			Return(nil, domainerrors.ErrPatientNotFound)

		_, err := svc.UpdatePatient(context.Background(), patientID, patientInput(uuid.Nil))

		assert.ErrorIs(t, err, domainerrors.ErrPatientNotFound)
	})
}

func TestPatientService_PartialUpdatePatient(t *testing.T) {
	userID := uuid.New()
	patientID := uuid.New()

	t.Run("changes only the provided fields", func(t *testing.T) {
		svc, patientRepo, _ := newPatientService(t)
		dob := time.Date(1980, 5, 12, 0, 0, 0, 0, time.UTC)

		existing := &entity.Patient{
			ID:          patientID,
			UserID:      userID,
			FirstName:   "John",
			LastName:    "Smith",
			DateOfBirth: dob,
			Gender:      entity.GenderMale,
		}
		patientRepo.On("FindByID", mock.Anything, patientID).Return(existing, nil)
		patientRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *entity.Patient) bool {
			return p.LastName == "Jones" && p.FirstName == "John" &&
				p.UserID == userID && p.DateOfBirth.Equal(dob) && p.Gender == entity.GenderMale
		})).Return(nil)

		lastName := "Jones"
		_, err := svc.PartialUpdatePatient(context.Background(), patientID, usecase.PatientPatch{
			LastName: &lastName,
		})

		require.NoError(t, err)
		patientRepo.AssertExpectations(t)
	})

	t.Run("rejects an unknown place", func(t *testing.T) {
		svc, patientRepo, locationRepo := newPatientService(t)
		placeID := uuid.New()

		patientRepo.On("FindByID", mock.Anything, patientID).
			Return(&entity.Patient{ID: patientID, UserID: userID}, nil)
		locationRepo.On("FindByID", mock.Anything, placeID).
			Return(nil, domainerrors.ErrLocationNotFound)

		_, err := svc.PartialUpdatePatient(context.Background(), patientID, usecase.PatientPatch{
			PlaceID: &placeID,
		})

		require.Error(t, err)
		valErr, ok := errors.AsType[*domainerrors.ValidationError](err)
		require.True(t, ok)
		assert.Contains(t, valErr.Fields(), "place")
		patientRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestPatientService_DeletePatient(t *testing.T) {
	patientID := uuid.New()
	svc, patientRepo, _ := newPatientService(t)

	patientRepo.On("Delete", mock.Anything, patientID).Return(nil)

	require.NoError(t, svc.DeletePatient(context.Background(), patientID))
	patientRepo.AssertExpectations(t)
}
