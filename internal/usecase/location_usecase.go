package usecase

import (
	"context"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// LocationInput carries the fields for creating or replacing a location.
type LocationInput struct {
	Name        string
	AddressLine *string
	City        *string
	State       *string
	ZipCode     *string
	Country     *string
}

// LocationPatch carries the fields of a partial update. Nil fields are left
// unchanged.
type LocationPatch struct {
	Name        *string
	AddressLine *string
	City        *string
	State       *string
	ZipCode     *string
	Country     *string
}

// LocationUsecase covers CRUD for care locations.
type LocationUsecase interface {
	CreateLocation(ctx context.Context, input LocationInput) (*entity.Location, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	ListLocations(ctx context.Context, input ListInput) ([]*entity.Location, int64, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, input LocationInput) (*entity.Location, error)
	PartialUpdateLocation(ctx context.Context, id uuid.UUID, patch LocationPatch) (*entity.Location, error)
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}
