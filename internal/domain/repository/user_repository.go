package repository

import (
	"context"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CredentialRepository defines persistence operations for password credentials.
type CredentialRepository interface {
	Create(ctx context.Context, credential *entity.Credential) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)
	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error
}
