package repository

import (
	"context"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// RefreshTokenRepository defines persistence operations for refresh tokens.
// Tokens are stored hashed; lookups take the hash, never the raw token.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}
