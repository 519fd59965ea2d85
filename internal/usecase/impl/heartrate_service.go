package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"clinic/config"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/errors"
	"clinic/internal/usecase"
)

// HeartRateService implements usecase.HeartRateUsecase.
type HeartRateService struct {
	heartRateRepo repository.HeartRateRepository
	patientRepo   repository.PatientRepository
	pagination    config.PaginationConfig
	logger        *slog.Logger
}

// NewHeartRateService creates the heart rate use case implementation.
func NewHeartRateService(
	heartRateRepo repository.HeartRateRepository,
	patientRepo repository.PatientRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.HeartRateUsecase {
	return &HeartRateService{
		heartRateRepo: heartRateRepo,
		patientRepo:   patientRepo,
		pagination:    cfg.Pagination,
		logger:        logger,
	}
}

// CreateHeartRate records a heart rate reading for a patient. The recording
// timestamp defaults to now when the caller does not supply one.
func (s *HeartRateService) CreateHeartRate(ctx context.Context, input usecase.CreateHeartRateInput) (*entity.HeartRate, error) {
	if err := validateBPM(input.BPM); err != nil {
		return nil, err
	}
	if err := s.checkPatient(ctx, input.PatientID); err != nil {
		return nil, err
	}

	now := time.Now()
	recordedAt := now
	if input.RecordedAt != nil {
		recordedAt = *input.RecordedAt
	}

	record := &entity.HeartRate{
		ID:           uuid.New(),
		PatientID:    input.PatientID,
		RecordedByID: input.RecordedByID,
		BPM:          input.BPM,
		RecordedAt:   recordedAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.heartRateRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "heart rate recorded",
		slog.String("heart_rate_id", record.ID.String()),
		slog.String("patient_id", record.PatientID.String()),
		slog.Int("bpm", record.BPM),
	)
	return s.heartRateRepo.FindByID(ctx, record.ID)
}

// GetHeartRate returns a reading by ID.
func (s *HeartRateService) GetHeartRate(ctx context.Context, id uuid.UUID) (*entity.HeartRate, error) {
	return s.heartRateRepo.FindByID(ctx, id)
}

// ListHeartRates returns a page of readings with the total count.
func (s *HeartRateService) ListHeartRates(ctx context.Context, input usecase.ListInput) ([]*entity.HeartRate, int64, error) {
	return s.heartRateRepo.List(ctx, toListQuery(input, s.pagination))
}

// UpdateHeartRate replaces the updatable fields of a reading. The recording
// timestamp is immutable.
func (s *HeartRateService) UpdateHeartRate(ctx context.Context, id uuid.UUID, input usecase.UpdateHeartRateInput) (*entity.HeartRate, error) {
	if err := validateBPM(input.BPM); err != nil {
		return nil, err
	}

	record, err := s.heartRateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PatientID != record.PatientID {
		if err := s.checkPatient(ctx, input.PatientID); err != nil {
			return nil, err
		}
	}

	record.PatientID = input.PatientID
	record.BPM = input.BPM
	record.UpdatedAt = time.Now()

	if err := s.heartRateRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.heartRateRepo.FindByID(ctx, id)
}

// PartialUpdateHeartRate applies the non-nil fields of a patch. The
// recording timestamp is immutable.
func (s *HeartRateService) PartialUpdateHeartRate(ctx context.Context, id uuid.UUID, patch usecase.HeartRatePatch) (*entity.HeartRate, error) {
	if patch.BPM != nil {
		if err := validateBPM(*patch.BPM); err != nil {
			return nil, err
		}
	}

	record, err := s.heartRateRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.PatientID != nil && *patch.PatientID != record.PatientID {
		if err := s.checkPatient(ctx, *patch.PatientID); err != nil {
			return nil, err
		}
		record.PatientID = *patch.PatientID
	}
	if patch.BPM != nil {
		record.BPM = *patch.BPM
	}
	record.UpdatedAt = time.Now()

	if err := s.heartRateRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return s.heartRateRepo.FindByID(ctx, id)
}

// DeleteHeartRate removes a reading.
func (s *HeartRateService) DeleteHeartRate(ctx context.Context, id uuid.UUID) error {
	if err := s.heartRateRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "heart rate deleted", slog.String("heart_rate_id", id.String()))
	return nil
}

// checkPatient verifies the referenced patient exists.
func (s *HeartRateService) checkPatient(ctx context.Context, patientID uuid.UUID) error {
	if _, err := s.patientRepo.FindByID(ctx, patientID); err != nil {
		if errors.Is(err, domainerrors.ErrPatientNotFound) {
			return domainerrors.NewValidationError(map[string]string{
				"patient": "referenced patient does not exist",
			})
		}
		return err
	}
	return nil
}

// validateBPM enforces the physiological bounds on a reading.
func validateBPM(bpm int) error {
	if bpm < entity.MinBPM || bpm > entity.MaxBPM {
		return domainerrors.NewValidationError(map[string]string{
			"bpm": fmt.Sprintf("must be between %d and %d", entity.MinBPM, entity.MaxBPM),
		})
	}
	return nil
}
