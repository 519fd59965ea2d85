package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"clinic/config"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/usecase"
)

// LocationService implements usecase.LocationUsecase.
type LocationService struct {
	locationRepo repository.LocationRepository
	pagination   config.PaginationConfig
	logger       *slog.Logger
}

// NewLocationService creates the location use case implementation.
func NewLocationService(locationRepo repository.LocationRepository, cfg *config.Config, logger *slog.Logger) usecase.LocationUsecase {
	return &LocationService{
		locationRepo: locationRepo,
		pagination:   cfg.Pagination,
		logger:       logger,
	}
}

// CreateLocation creates a new care location.
func (s *LocationService) CreateLocation(ctx context.Context, input usecase.LocationInput) (*entity.Location, error) {
	if err := validateLocationName(input.Name); err != nil {
		return nil, err
	}

	now := time.Now()
	location := &entity.Location{
		ID:          uuid.New(),
		Name:        input.Name,
		AddressLine: input.AddressLine,
		City:        input.City,
		State:       input.State,
		ZipCode:     input.ZipCode,
		Country:     input.Country,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.locationRepo.Create(ctx, location); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "location created", slog.String("location_id", location.ID.String()))
	return location, nil
}

// GetLocation returns a location by ID.
func (s *LocationService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	return s.locationRepo.FindByID(ctx, id)
}

// ListLocations returns a page of locations with the total count.
func (s *LocationService) ListLocations(ctx context.Context, input usecase.ListInput) ([]*entity.Location, int64, error) {
	return s.locationRepo.List(ctx, toListQuery(input, s.pagination))
}

// UpdateLocation replaces the fields of an existing location.
func (s *LocationService) UpdateLocation(ctx context.Context, id uuid.UUID, input usecase.LocationInput) (*entity.Location, error) {
	if err := validateLocationName(input.Name); err != nil {
		return nil, err
	}

	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	location.Name = input.Name
	location.AddressLine = input.AddressLine
	location.City = input.City
	location.State = input.State
	location.ZipCode = input.ZipCode
	location.Country = input.Country
	location.UpdatedAt = time.Now()

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// PartialUpdateLocation applies the non-nil fields of a patch.
func (s *LocationService) PartialUpdateLocation(ctx context.Context, id uuid.UUID, patch usecase.LocationPatch) (*entity.Location, error) {
	if patch.Name != nil {
		if err := validateLocationName(*patch.Name); err != nil {
			return nil, err
		}
	}

	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		location.Name = *patch.Name
	}
	if patch.AddressLine != nil {
		location.AddressLine = patch.AddressLine
	}
	if patch.City != nil {
		location.City = patch.City
	}
	if patch.State != nil {
		location.State = patch.State
	}
	if patch.ZipCode != nil {
		location.ZipCode = patch.ZipCode
	}
	if patch.Country != nil {
		location.Country = patch.Country
	}
	location.UpdatedAt = time.Now()

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// DeleteLocation removes a location. Patients keep their rows with the place
// reference cleared.
func (s *LocationService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "location deleted", slog.String("location_id", id.String()))
	return nil
}

// validateLocationName rejects names that are empty or whitespace-only.
func validateLocationName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.NewValidationError(map[string]string{
			"name": "must not be blank",
		})
	}
	return nil
}
