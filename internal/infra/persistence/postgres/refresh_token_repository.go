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

// RefreshTokenRepository implements repository.RefreshTokenRepository with gorm.
type RefreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a gorm-backed refresh token repository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Create stores a new refresh token hash.
func (r *RefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	m := model.RefreshTokenFromEntity(token)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "create refresh token")
	}
	return nil
}

// FindByTokenHash looks up a refresh token by its storage hash.
func (r *RefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var m model.RefreshToken
	if err := r.db.WithContext(ctx).First(&m, "token_hash = ?", tokenHash).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}
		return nil, domainerrors.NewDatabaseExecuteError(err, "find refresh token")
	}
	return m.ToEntity(), nil
}

// DeleteByTokenHash removes a single refresh token.
func (r *RefreshTokenRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	if err := r.db.WithContext(ctx).Delete(&model.RefreshToken{}, "token_hash = ?", tokenHash).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete refresh token")
	}
	return nil
}

// DeleteByUserID removes all refresh tokens belonging to a user.
func (r *RefreshTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&model.RefreshToken{}, "user_id = ?", userID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "delete refresh tokens by user")
	}
	return nil
}

// DeleteExpired removes all tokens past their expiry and returns the count.
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&model.RefreshToken{}, "expires_at < ?", time.Now())
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "delete expired refresh tokens")
	}
	return result.RowsAffected, nil
}
