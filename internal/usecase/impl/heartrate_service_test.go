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

func newHeartRateService(t *testing.T) (usecase.HeartRateUsecase, *mockrepo.MockHeartRateRepository, *mockrepo.MockPatientRepository) {
	t.Helper()
	heartRateRepo := new(mockrepo.MockHeartRateRepository)
	patientRepo := new(mockrepo.MockPatientRepository)
	svc := NewHeartRateService(heartRateRepo, patientRepo, testConfig(), slog.Default())
	return svc, heartRateRepo, patientRepo
}

func TestHeartRateService_CreateHeartRate(t *testing.T) {
	patientID := uuid.New()
	recordedBy := uuid.New()

	t.Run("records a reading with explicit timestamp", func(t *testing.T) {
		svc, heartRateRepo, patientRepo := newHeartRateService(t)
		recordedAt := time.Date(2026, 2, 1, 9, 15, 0, 0, time.UTC)

		patientRepo.On("FindByID", mock.Anything, patientID).Return(&entity.Patient{ID: patientID}, nil)
		heartRateRepo.On("Create", mock.Anything, mock.MatchedBy(func(hr *entity.HeartRate) bool {
			return hr.PatientID == patientID && hr.BPM == 72 && hr.RecordedAt.Equal(recordedAt)
		})).Return(nil)
		heartRateRepo.On("FindByID", mock.Anything, mock.Anything).
			Return(&entity.HeartRate{PatientID: patientID, BPM: 72, RecordedAt: recordedAt}, nil)

		record, err := svc.CreateHeartRate(context.Background(), usecase.CreateHeartRateInput{
			PatientID:    patientID,
			RecordedByID: &recordedBy,
			BPM:          72,
			RecordedAt:   &recordedAt,
		})

		require.NoError(t, err)
		assert.Equal(t, 72, record.BPM)
	})

	t.Run("defaults the timestamp to now", func(t *testing.T) {
		svc, heartRateRepo, patientRepo := newHeartRateService(t)
		before := time.Now()

		patientRepo.On("FindByID", mock.Anything, patientID).Return(&entity.Patient{ID: patientID}, nil)
		heartRateRepo.On("Create", mock.Anything, mock.MatchedBy(func(hr *entity.HeartRate) bool {
			return !hr.RecordedAt.Before(before)
		})).Return(nil)
		heartRateRepo.On("FindByID", mock.Anything, mock.Anything).
			Return(&entity.HeartRate{PatientID: patientID, BPM: 72}, nil)

		_, err := svc.CreateHeartRate(context.Background(), usecase.CreateHeartRateInput{
			PatientID: patientID,
			BPM:       72,
		})
		require.NoError(t, err)
		heartRateRepo.AssertExpectations(t)
	})

	t.Run("rejects readings outside the physiological range", func(t *testing.T) {
		svc, heartRateRepo, _ := newHeartRateService(t)

		for _, bpm := range []int{29, 251, 0, -10} {
			_, err := svc.CreateHeartRate(context.Background(), usecase.CreateHeartRateInput{
				PatientID: patientID,
				BPM:       bpm,
			})
			require.Error(t, err, "bpm %d", bpm)
			valErr, ok := errors.AsType[*domainerrors.ValidationError](err)
			require.True(t, ok)
			assert.Contains(t, valErr.Fields(), "bpm")
		}
		heartRateRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("accepts the range boundaries", func(t *testing.T) {
		svc, heartRateRepo, patientRepo := newHeartRateService(t)

		patientRepo.On("FindByID", mock.Anything, patientID).Return(&entity.Patient{ID: patientID}, nil)
		heartRateRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		heartRateRepo.On("FindByID", mock.Anything, mock.Anything).
			Return(&entity.HeartRate{PatientID: patientID}, nil)

		for _, bpm := range []int{entity.MinBPM, entity.MaxBPM} {
			_, err := svc.CreateHeartRate(context.Background(), usecase.CreateHeartRateInput{
				PatientID: patientID,
				BPM:       bpm,
			})
			assert.NoError(t, err, "bpm %d", bpm)
		}
	})

	t.Run("rejects an unknown patient", func(t *testing.T) {
		svc, _, patientRepo := newHeartRateService(t)

		patientRepo.On("FindByID", mock.Anything, patientID).
			Return(nil, domainerrors.ErrPatientNotFound)

		_, err := svc.CreateHeartRate(context.Background(), usecase.CreateHeartRateInput{
			PatientID: patientID,
			BPM:       72,
		})

		require.Error(t, err)
		valErr, ok := errors.AsType[*domainerrors.ValidationError](err)
		require.True(t, ok)
		assert.Contains(t, valErr.Fields(), "patient")
	})
}

func TestHeartRateService_UpdateHeartRate(t *testing.T) {
	recordID := uuid.New()
	patientID := uuid.New()

	t.Run("keeps the recording timestamp", func(t *testing.T) {
		svc, heartRateRepo, _ := newHeartRateService(t)
		recordedAt := time.Date(2026, 2, 1, 9, 15, 0, 0, time.UTC)

		existing := &entity.HeartRate{ID: recordID, PatientID: patientID, BPM: 72, RecordedAt: recordedAt}
		heartRateRepo.On("FindByID", mock.Anything, recordID).Return(existing, nil)
		heartRateRepo.On("Update", mock.Anything, mock.MatchedBy(func(hr *entity.HeartRate) bool {
			return hr.BPM == 90 && hr.RecordedAt.Equal(recordedAt)
		})).Return(nil)

		_, err := svc.UpdateHeartRate(context.Background(), recordID, usecase.UpdateHeartRateInput{
			PatientID: patientID,
			BPM:       90,
		})
		require.NoError(t, err)
		heartRateRepo.AssertExpectations(t)
	})

	t.Run("verifies a changed patient reference", func(t *testing.T) {
		svc, heartRateRepo, patientRepo := newHeartRateService(t)
		otherPatient := uuid.New()

		existing := &entity.HeartRate{ID: recordID, PatientID: patientID, BPM: 72}
		heartRateRepo.On("FindByID", mock.Anything, recordID).Return(existing, nil)
		patientRepo.On("FindByID", mock.Anything, otherPatient).
			Return(nil, domainerrors.ErrPatientNotFound)

		_, err := svc.UpdateHeartRate(context.Background(), recordID, usecase.UpdateHeartRateInput{
			PatientID: otherPatient,
			BPM:       90,
		})

		require.Error(t, err)
		heartRateRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestHeartRateService_PartialUpdateHeartRate(t *testing.T) {
	recordID := uuid.New()
	patientID := uuid.New()

	t.Run("changes the bpm and keeps the rest", func(t *testing.T) {
		svc, heartRateRepo, _ := newHeartRateService(t)
		recordedAt := time.Date(2026, 2, 1, 9, 15, 0, 0, time.UTC)

		existing := &entity.HeartRate{ID: recordID, PatientID: patientID, BPM: 72, RecordedAt: recordedAt}
		heartRateRepo.On("FindByID", mock.Anything, recordID).Return(existing, nil)
		heartRateRepo.On("Update", mock.Anything, mock.MatchedBy(func(hr *entity.HeartRate) bool {
			return hr.BPM == 95 && hr.PatientID == patientID && hr.RecordedAt.Equal(recordedAt)
		})).Return(nil)

		bpm := 95
		_, err := svc.PartialUpdateHeartRate(context.Background(), recordID, usecase.HeartRatePatch{BPM: &bpm})

		require.NoError(t, err)
		heartRateRepo.AssertExpectations(t)
	})

	t.Run("rejects an out-of-range bpm before loading", func(t *testing.T) {
		svc, heartRateRepo, _ := newHeartRateService(t)

		bpm := 29
		_, err := svc.PartialUpdateHeartRate(context.Background(), recordID, usecase.HeartRatePatch{BPM: &bpm})

		require.Error(t, err)
		valErr, ok := errors.AsType[*domainerrors.ValidationError](err)
		require.True(t, ok)
		assert.Contains(t, valErr.Fields(), "bpm")
		heartRateRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("verifies a changed patient reference", func(t *testing.T) {
		svc, heartRateRepo, patientRepo := newHeartRateService(t)
		otherPatient := uuid.New()

		existing := &entity.HeartRate{ID: recordID, PatientID: patientID, BPM: 72}
		heartRateRepo.On("FindByID", mock.Anything, recordID).Return(existing, nil)
		patientRepo.On("FindByID", mock.Anything, otherPatient).
			Return(nil, domainerrors.ErrPatientNotFound)

		_, err := svc.PartialUpdateHeartRate(context.Background(), recordID, usecase.HeartRatePatch{
			PatientID: &otherPatient,
		})

		require.Error(t, err)
		heartRateRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestHeartRateService_DeleteHeartRate(t *testing.T) {
	recordID := uuid.New()
	svc, heartRateRepo, _ := newHeartRateService(t)

	heartRateRepo.On("Delete", mock.Anything, recordID).Return(nil)

	require.NoError(t, svc.DeleteHeartRate(context.Background(), recordID))
	heartRateRepo.AssertExpectations(t)
}
