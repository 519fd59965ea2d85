package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// PatientInput carries the fields for creating or replacing a patient.
// UserID is the owning caregiver, taken from the authenticated request on
// create and left unchanged on update.
type PatientInput struct {
	UserID        uuid.UUID
	FirstName     string
	LastName      string
	DateOfBirth   time.Time
	Gender        entity.Gender
	PlaceID       *uuid.UUID
	Email         *string
	ContactNumber *string
}

// PatientPatch carries the fields of a partial update. Nil fields are left
// unchanged; the place reference cannot be cleared through a patch.
type PatientPatch struct {
	FirstName     *string
	LastName      *string
	DateOfBirth   *time.Time
	Gender        *entity.Gender
	PlaceID       *uuid.UUID
	Email         *string
	ContactNumber *string
}

// PatientUsecase covers CRUD for patient records.
type PatientUsecase interface {
	CreatePatient(ctx context.Context, input PatientInput) (*entity.Patient, error)
	GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	ListPatients(ctx context.Context, input ListInput) ([]*entity.Patient, int64, error)
	UpdatePatient(ctx context.Context, id uuid.UUID, input PatientInput) (*entity.Patient, error)
	PartialUpdatePatient(ctx context.Context, id uuid.UUID, patch PatientPatch) (*entity.Patient, error)
	DeletePatient(ctx context.Context, id uuid.UUID) error
}
