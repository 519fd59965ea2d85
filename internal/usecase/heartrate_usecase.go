package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// CreateHeartRateInput carries the fields for recording a heart rate
// reading. RecordedAt defaults to the current time when nil.
type CreateHeartRateInput struct {
	PatientID    uuid.UUID
	RecordedByID *uuid.UUID
	BPM          int
	RecordedAt   *time.Time
}

// UpdateHeartRateInput carries the updatable fields of a reading. The
// recording timestamp cannot be changed after creation.
type UpdateHeartRateInput struct {
	PatientID uuid.UUID
	BPM       int
}

// HeartRatePatch carries the fields of a partial update. Nil fields are
// left unchanged.
type HeartRatePatch struct {
	PatientID *uuid.UUID
	BPM       *int
}

// HeartRateUsecase covers CRUD for heart rate readings.
type HeartRateUsecase interface {
	CreateHeartRate(ctx context.Context, input CreateHeartRateInput) (*entity.HeartRate, error)
	GetHeartRate(ctx context.Context, id uuid.UUID) (*entity.HeartRate, error)
	ListHeartRates(ctx context.Context, input ListInput) ([]*entity.HeartRate, int64, error)
	UpdateHeartRate(ctx context.Context, id uuid.UUID, input UpdateHeartRateInput) (*entity.HeartRate, error)
	PartialUpdateHeartRate(ctx context.Context, id uuid.UUID, patch HeartRatePatch) (*entity.HeartRate, error)
	DeleteHeartRate(ctx context.Context, id uuid.UUID) error
}
