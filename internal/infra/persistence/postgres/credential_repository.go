package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/infra/persistence/model"
)

// CredentialRepository implements repository.CredentialRepository with gorm.
type CredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a gorm-backed credential repository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &CredentialRepository{db: db}
}

// Create inserts a new password credential.
func (r *CredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	m := model.CredentialFromEntity(credential)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		return domainerrors.NewDatabaseExecuteError(err, "create credential")
	}
	return nil
}

// FindByUserID looks up the credential for a user.
func (r *CredentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	var m model.Credential
	if err := r.db.WithContext(ctx).First(&m, "user_id = ?", userID).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, domainerrors.NewDatabaseExecuteError(err, "find credential by user id")
	}
	return m.ToEntity(), nil
}

// UpdatePasswordHash replaces the stored password hash for a user.
func (r *CredentialRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Credential{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "update password hash")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}
