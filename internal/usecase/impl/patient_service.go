package impl

import (
	"context"
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

// PatientService implements usecase.PatientUsecase.
type PatientService struct {
	patientRepo  repository.PatientRepository
	locationRepo repository.LocationRepository
	pagination   config.PaginationConfig
	logger       *slog.Logger
}

// NewPatientService creates the patient use case implementation.
func NewPatientService(
	patientRepo repository.PatientRepository,
	locationRepo repository.LocationRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PatientUsecase {
	return &PatientService{
		patientRepo:  patientRepo,
		locationRepo: locationRepo,
		pagination:   cfg.Pagination,
		logger:       logger,
	}
}

// CreatePatient creates a patient record owned by the given caregiver.
func (s *PatientService) CreatePatient(ctx context.Context, input usecase.PatientInput) (*entity.Patient, error) {
	if err := s.checkPlace(ctx, input.PlaceID); err != nil {
		return nil, err
	}

	now := time.Now()
	patient := &entity.Patient{
		ID:            uuid.New(),
		UserID:        input.UserID,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		DateOfBirth:   normalizeDate(input.DateOfBirth),
		Gender:        input.Gender,
		PlaceID:       input.PlaceID,
		Email:         input.Email,
		ContactNumber: input.ContactNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "patient created",
		slog.String("patient_id", patient.ID.String()),
		slog.String("user_id", patient.UserID.String()),
	)
	return s.patientRepo.FindByID(ctx, patient.ID)
}

// GetPatient returns a patient by ID.
func (s *PatientService) GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	return s.patientRepo.FindByID(ctx, id)
}

// ListPatients returns a page of patients with the total count.
func (s *PatientService) ListPatients(ctx context.Context, input usecase.ListInput) ([]*entity.Patient, int64, error) {
	return s.patientRepo.List(ctx, toListQuery(input, s.pagination))
}

// UpdatePatient replaces the fields of an existing patient. Ownership stays
// with the original caregiver.
func (s *PatientService) UpdatePatient(ctx context.Context, id uuid.UUID, input usecase.PatientInput) (*entity.Patient, error) {
	patient, err := s.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkPlace(ctx, input.PlaceID); err != nil {
		return nil, err
	}

	patient.FirstName = input.FirstName
	patient.LastName = input.LastName
	patient.DateOfBirth = normalizeDate(input.DateOfBirth)
	patient.Gender = input.Gender
	patient.PlaceID = input.PlaceID
	patient.Email = input.Email
	patient.ContactNumber = input.ContactNumber
	patient.UpdatedAt = time.Now()

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return s.patientRepo.FindByID(ctx, id)
}

// PartialUpdatePatient applies the non-nil fields of a patch. Ownership
// stays with the original caregiver.
func (s *PatientService) PartialUpdatePatient(ctx context.Context, id uuid.UUID, patch usecase.PatientPatch) (*entity.Patient, error) {
	patient, err := s.patientRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.PlaceID != nil {
		if err := s.checkPlace(ctx, patch.PlaceID); err != nil {
			return nil, err
		}
		patient.PlaceID = patch.PlaceID
	}
	if patch.FirstName != nil {
		patient.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		patient.LastName = *patch.LastName
	}
	if patch.DateOfBirth != nil {
		patient.DateOfBirth = normalizeDate(*patch.DateOfBirth)
	}
	if patch.Gender != nil {
		patient.Gender = *patch.Gender
	}
	if patch.Email != nil {
		patient.Email = patch.Email
	}
	if patch.ContactNumber != nil {
		patient.ContactNumber = patch.ContactNumber
	}
	patient.UpdatedAt = time.Now()

	if err := s.patientRepo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return s.patientRepo.FindByID(ctx, id)
}

// DeletePatient removes a patient and, through the schema, its heart rate
// records.
func (s *PatientService) DeletePatient(ctx context.Context, id uuid.UUID) error {
	if err := s.patientRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "patient deleted", slog.String("patient_id", id.String()))
	return nil
}

// checkPlace verifies the referenced location exists when one is given.
func (s *PatientService) checkPlace(ctx context.Context, placeID *uuid.UUID) error {
	if placeID == nil {
		return nil
	}
	if _, err := s.locationRepo.FindByID(ctx, *placeID); err != nil {
		if errors.Is(err, domainerrors.ErrLocationNotFound) {
			return domainerrors.NewValidationError(map[string]string{
				"place": "referenced location does not exist",
			})
		}
		return err
	}
	return nil
}

// normalizeDate truncates a birth date to midnight UTC.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
