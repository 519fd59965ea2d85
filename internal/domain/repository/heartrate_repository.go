package repository

import (
	"context"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// HeartRateRepository defines persistence operations for heart rate readings.
// List search matches against the owning patient's first and last name.
type HeartRateRepository interface {
	Create(ctx context.Context, record *entity.HeartRate) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HeartRate, error)
	List(ctx context.Context, query ListQuery) ([]*entity.HeartRate, int64, error)
	Update(ctx context.Context, record *entity.HeartRate) error
	Delete(ctx context.Context, id uuid.UUID) error
}
