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

// heartRateOrderColumns is the ordering allow-list for heart rate listing.
var heartRateOrderColumns = map[string]string{
	"recorded_at": "heart_rates.recorded_at",
	"bpm":         "heart_rates.bpm",
}

// HeartRateRepository implements repository.HeartRateRepository with gorm.
type HeartRateRepository struct {
	db *gorm.DB
}

// NewHeartRateRepository creates a gorm-backed heart rate repository.
func NewHeartRateRepository(db *gorm.DB) repository.HeartRateRepository {
	return &HeartRateRepository{db: db}
}

// Create inserts a new heart rate reading.
func (r *HeartRateRepository) Create(ctx context.Context, record *entity.HeartRate) error {
	m := model.HeartRateFromEntity(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domainerrors.ErrInvalidReference
		}
		return domainerrors.NewDatabaseExecuteError(err, "create heart rate")
	}
	return nil
}

// FindByID looks up a heart rate reading with its patient preloaded.
func (r *HeartRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HeartRate, error) {
	var m model.HeartRate
	if err := r.db.WithContext(ctx).Preload("Patient").First(&m, "id = ?", id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrHeartRateNotFound
		}
		return nil, domainerrors.NewDatabaseExecuteError(err, "find heart rate by id")
	}
	return m.ToEntity(), nil
}

// List returns a page of heart rate readings with the total count. Search
// matches the owning patient's first and last name through a join; newest
// readings come first by default.
func (r *HeartRateRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.HeartRate, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.HeartRate{})

	if query.Search != "" {
		pattern := likePattern(query.Search)
		tx = tx.Joins("JOIN patients ON patients.id = heart_rates.patient_id").
			Where("patients.first_name ILIKE ? OR patients.last_name ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "count heart rates")
	}

	tx = applyOrdering(tx, query.Ordering, heartRateOrderColumns, "heart_rates.recorded_at DESC")
	tx = applyPagination(tx, query)

	var models []model.HeartRate
	if err := tx.Preload("Patient").Find(&models).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "list heart rates")
	}

	records := make([]*entity.HeartRate, 0, len(models))
	for i := range models {
		records = append(records, models[i].ToEntity())
	}
	return records, total, nil
}

// Update saves changes to an existing heart rate reading. The recorded_at
// timestamp is immutable after creation.
func (r *HeartRateRepository) Update(ctx context.Context, record *entity.HeartRate) error {
	m := model.HeartRateFromEntity(record)
	result := r.db.WithContext(ctx).Model(&model.HeartRate{}).Where("id = ?", m.ID).Updates(map[string]any{
		"patient_id": m.PatientID,
		"bpm":        m.BPM,
		"updated_at": m.UpdatedAt,
	})
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return domainerrors.ErrInvalidReference
		}
		return domainerrors.NewDatabaseExecuteError(result.Error, "update heart rate")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrHeartRateNotFound
	}
	return nil
}

// Delete removes a heart rate reading.
func (r *HeartRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.HeartRate{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "delete heart rate")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrHeartRateNotFound
	}
	return nil
}
