package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
)

// RegisterInput carries the fields for account registration.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
}

// UpdateUserInput carries the full replacement profile for a user.
type UpdateUserInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// UserPatch carries the profile fields of a partial update. Nil fields are
// left unchanged.
type UserPatch struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
}

// TokenPair is an issued access/refresh token pair.
type TokenPair struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// AuthResult is a successful login: the authenticated user and their tokens.
type AuthResult struct {
	User   *entity.User
	Tokens TokenPair
}

// UserUsecase covers registration, authentication, and user administration.
type UserUsecase interface {
	// Register creates a user account with its credential.
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a token pair. Failures return
	// the same error regardless of whether the username exists.
	Login(ctx context.Context, username, password string) (*AuthResult, error)

	// RefreshTokens exchanges a valid refresh token for a new pair. The old
	// refresh token is revoked.
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes a refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetUser returns a user by ID.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// UpdateUser replaces a user's profile fields.
	UpdateUser(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error)

	// PartialUpdateUser applies the non-nil fields of a patch.
	PartialUpdateUser(ctx context.Context, id uuid.UUID, patch UserPatch) (*entity.User, error)

	// DeleteUser removes a user account. Credentials, refresh tokens, and
	// owned patients go with it.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// ListUsers returns the full user roster.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
