package repository

import (
	"context"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// PatientRepository defines persistence operations for patient records.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error)
	List(ctx context.Context, query ListQuery) ([]*entity.Patient, int64, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id uuid.UUID) error
}
