package repository

import (
	"context"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// LocationRepository defines persistence operations for care locations.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	List(ctx context.Context, query ListQuery) ([]*entity.Location, int64, error)
	Update(ctx context.Context, location *entity.Location) error
	Delete(ctx context.Context, id uuid.UUID) error
}
