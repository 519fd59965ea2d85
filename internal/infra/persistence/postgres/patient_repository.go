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

// patientOrderColumns is the ordering allow-list for patient listing.
var patientOrderColumns = map[string]string{
	"created_at": "patients.created_at",
	"first_name": "patients.first_name",
}

// PatientRepository implements repository.PatientRepository with gorm.
type PatientRepository struct {
	db *gorm.DB
}

// NewPatientRepository creates a gorm-backed patient repository.
func NewPatientRepository(db *gorm.DB) repository.PatientRepository {
	return &PatientRepository{db: db}
}

// Create inserts a new patient record.
func (r *PatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	m := model.PatientFromEntity(patient)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrPatientAlreadyExists
		}
		if isForeignKeyViolation(err) {
			return domainerrors.ErrInvalidReference
		}
		return domainerrors.NewDatabaseExecuteError(err, "create patient")
	}
	return nil
}

// FindByID looks up a patient by primary key with its place preloaded.
func (r *PatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	var m model.Patient
	if err := r.db.WithContext(ctx).Preload("Place").First(&m, "id = ?", id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrPatientNotFound
		}
		return nil, domainerrors.NewDatabaseExecuteError(err, "find patient by id")
	}
	return m.ToEntity(), nil
}

// List returns a page of patients with the total count. Search matches
// first name, last name, and email.
func (r *PatientRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.Patient, int64, error) {
	tx := r.db.WithContext(ctx).Model(&model.Patient{})

	if query.Search != "" {
		pattern := likePattern(query.Search)
		tx = tx.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "count patients")
	}

	tx = applyOrdering(tx, query.Ordering, patientOrderColumns, "patients.created_at ASC, patients.id ASC")
	tx = applyPagination(tx, query)

	var models []model.Patient
	if err := tx.Preload("Place").Find(&models).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "list patients")
	}

	patients := make([]*entity.Patient, 0, len(models))
	for i := range models {
		patients = append(patients, models[i].ToEntity())
	}
	return patients, total, nil
}

// Update saves changes to an existing patient.
func (r *PatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	m := model.PatientFromEntity(patient)
	result := r.db.WithContext(ctx).Model(&model.Patient{}).Where("id = ?", m.ID).Updates(map[string]any{
		"first_name":     m.FirstName,
		"last_name":      m.LastName,
		"date_of_birth":  m.DateOfBirth,
		"gender":         m.Gender,
		"place_id":       m.PlaceID,
		"email":          m.Email,
		"contact_number": m.ContactNumber,
		"updated_at":     m.UpdatedAt,
	})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrPatientAlreadyExists
		}
		if isForeignKeyViolation(result.Error) {
			return domainerrors.ErrInvalidReference
		}
		return domainerrors.NewDatabaseExecuteError(result.Error, "update patient")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPatientNotFound
	}
	return nil
}

// Delete removes a patient. Its heart rate records go with it via the
// CASCADE constraint.
func (r *PatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Patient{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "delete patient")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPatientNotFound
	}
	return nil
}
