package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/infra/persistence/model"
)

// locationOrderColumns is the ordering allow-list for location listing.
var locationOrderColumns = map[string]string{
	"created_at": "created_at",
	"name":       "name",
	"city":       "city",
}

// LocationRepository implements repository.LocationRepository with gorm.
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a gorm-backed location repository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &LocationRepository{db: db}
}

// Create inserts a new location.
func (r *LocationRepository) Create(ctx context.Context, location *entity.Location) error {
	m := model.LocationFromEntity(location)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "create location")
	}
	return nil
}

// FindByID looks up a location by primary key.
func (r *LocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var m model.Location
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrLocationNotFound
		}
		return nil, domainerrors.NewDatabaseExecuteError(err, "find location by id")
	}
	return m.ToEntity(), nil
}

// List returns a page of locations with the total count. Search matches
// name, city, and state.
func (r *LocationRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.Location, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Location{})

	if query.Search != "" {
		pattern := likePattern(query.Search)
		tx = tx.Where("name ILIKE ? OR city ILIKE ? OR state ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "count locations")
	}

	tx = applyOrdering(tx, query.Ordering, locationOrderColumns, "created_at DESC")
	tx = applyPagination(tx, query)

	var models []model.Location
	if err := tx.Find(&models).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "list locations")
	}

	locations := make([]*entity.Location, 0, len(models))
	for i := range models {
		locations = append(locations, models[i].ToEntity())
	}
	return locations, total, nil
}

// Update saves changes to an existing location.
func (r *LocationRepository) Update(ctx context.Context, location *entity.Location) error {
	m := model.LocationFromEntity(location)
	result := r.db.WithContext(ctx).Model(&model.Location{}).Where("id = ?", m.ID).Updates(map[string]any{
		"name":         m.Name,
		"address_line": m.AddressLine,
		"city":         m.City,
		"state":        m.State,
		"zip_code":     m.ZipCode,
		"country":      m.Country,
		"updated_at":   m.UpdatedAt,
	})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "update location")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrLocationNotFound
	}
	return nil
}

// Delete removes a location. Patients referencing it keep their rows with
// the place cleared by the SET NULL constraint.
func (r *LocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Location{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "delete location")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrLocationNotFound
	}
	return nil
}
