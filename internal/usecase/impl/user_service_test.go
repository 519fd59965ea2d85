package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"clinic/config"
	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/service"
	"clinic/internal/errors"
	mockrepo "clinic/internal/mocks/repository"
	mockservice "clinic/internal/mocks/service"
	"clinic/internal/usecase"
)

func testConfig() *config.Config {
	return &config.Config{
		Pagination: config.PaginationConfig{
			DefaultPageSize: 10,
			MaxPageSize:     100,
		},
	}
}

type userServiceMocks struct {
	userRepo     *mockrepo.MockUserRepository
	credRepo     *mockrepo.MockCredentialRepository
	tokenRepo    *mockrepo.MockRefreshTokenRepository
	txManager    *mockrepo.MockTransactionManager
	hasher       *mockservice.MockPasswordHasher
	tokenService *mockservice.MockTokenService
}

func newUserService(t *testing.T) (usecase.UserUsecase, *userServiceMocks) {
	t.Helper()

	m := &userServiceMocks{
		userRepo:     new(mockrepo.MockUserRepository),
		credRepo:     new(mockrepo.MockCredentialRepository),
		tokenRepo:    new(mockrepo.MockRefreshTokenRepository),
		txManager:    new(mockrepo.MockTransactionManager),
		hasher:       new(mockservice.MockPasswordHasher),
		tokenService: new(mockservice.MockTokenService),
	}
	m.txManager.Factory = &mockrepo.MockRepositoryFactory{
		Users:         m.userRepo,
		Credentials:   m.credRepo,
		RefreshTokens: m.tokenRepo,
	}

	svc := NewUserService(
		m.userRepo, m.credRepo, m.tokenRepo, m.txManager,
		m.hasher, m.tokenService, slog.Default(),
	)
	return svc, m
}

func claimsFor(userID uuid.UUID) *service.Claims {
	return &service.Claims{
		UserID: userID.String(),
		Roles:  []string{"user"},
		Type:   service.TokenTypeRefresh,
	}
}

func TestUserService_Register(t *testing.T) {
	input := usecase.RegisterInput{
		Username:  "jdoe",
		Email:     "jdoe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		Password:  "Str0ngPass!",
	}

	t.Run("creates user and credential", func(t *testing.T) {
		svc, m := newUserService(t)

		m.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
		m.hasher.On("HashPassword", input.Password).Return("hashed", nil)
		m.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
		m.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "jdoe" && u.IsActive && !u.IsStaff
		})).Return(nil)
		m.credRepo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Credential) bool {
			return c.PasswordHash == "hashed"
		})).Return(nil)

		user, err := svc.Register(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "jdoe", user.Username)
		assert.NotEqual(t, uuid.Nil, user.ID)
		m.userRepo.AssertExpectations(t)
		m.credRepo.AssertExpectations(t)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		svc, m := newUserService(t)

		m.hasher.On("ValidatePasswordStrength", input.Password).
			Return(errors.New("password must be at least 8 characters"))

		_, err := svc.Register(context.Background(), input)

		require.Error(t, err)
		valErr, ok := errors.AsType[*domainerrors.ValidationError](err)
		require.True(t, ok)
		assert.Contains(t, valErr.Fields(), "password")
		m.hasher.AssertNotCalled(t, "HashPassword", mock.Anything)
	})

	t.Run("maps duplicate account to user exists", func(t *testing.T) {
		svc, m := newUserService(t)

		m.hasher.On("ValidatePasswordStrength", input.Password).Return(nil)
		m.hasher.On("HashPassword", input.Password).Return("hashed", nil)
		m.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
		m.userRepo.On("Create", mock.Anything, mock.Anything).Return(domainerrors.ErrUserAlreadyExists)

		_, err := svc.Register(context.Background(), input)

		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func TestUserService_Login(t *testing.T) {
	userID := uuid.New()
	activeUser := &entity.User{
		ID:       userID,
		Username: "jdoe",
		IsActive: true,
	}

	t.Run("issues token pair on valid credentials", func(t *testing.T) {
		svc, m := newUserService(t)
		expiry := time.Now().Add(15 * time.Minute)

		m.userRepo.On("FindByUsername", mock.Anything, "jdoe").Return(activeUser, nil)
		m.credRepo.On("FindByUserID", mock.Anything, userID).
			Return(&entity.Credential{UserID: userID, PasswordHash: "hashed"}, nil)
		m.hasher.On("VerifyPassword", "hashed", "secret").Return(nil)
		m.tokenService.On("GenerateAccessToken", userID.String(), []string{"user"}).
			Return("access-token", expiry, nil)
		m.tokenService.On("GenerateRefreshToken", userID.String()).
			Return("refresh-token", expiry.Add(time.Hour), nil)
		m.tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
		m.tokenRepo.On("Create", mock.Anything, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
			return rt.UserID == userID && rt.TokenHash == "refresh-hash"
		})).Return(nil)

		result, err := svc.Login(context.Background(), "jdoe", "secret")

		require.NoError(t, err)
		assert.Equal(t, "access-token", result.Tokens.AccessToken)
		assert.Equal(t, "refresh-token", result.Tokens.RefreshToken)
		assert.Equal(t, userID, result.User.ID)
	})

	t.Run("unknown username yields invalid credentials", func(t *testing.T) {
		svc, m := newUserService(t)

		m.userRepo.On("FindByUsername", mock.Anything, "ghost").
			Return(nil, domainerrors.ErrUserNotFound)

		_, err := svc.Login(context.Background(), "ghost", "secret")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password yields invalid credentials", func(t *testing.T) {
		svc, m := newUserService(t)

		m.userRepo.On("FindByUsername", mock.Anything, "jdoe").Return(activeUser, nil)
		m.credRepo.On("FindByUserID", mock.Anything, userID).
			Return(&entity.Credential{UserID: userID, PasswordHash: "hashed"}, nil)
		m.hasher.On("VerifyPassword", "hashed", "wrong").Return(errors.New("password mismatch"))

		_, err := svc.Login(context.Background(), "jdoe", "wrong")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("inactive account yields invalid credentials", func(t *testing.T) {
		svc, m := newUserService(t)

		m.userRepo.On("FindByUsername", mock.Anything, "jdoe").
			Return(&entity.User{ID: userID, Username: "jdoe", IsActive: false}, nil)

		_, err := svc.Login(context.Background(), "jdoe", "secret")

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		m.credRepo.AssertNotCalled(t, "FindByUserID", mock.Anything, mock.Anything)
	})
}

func TestUserService_RefreshTokens(t *testing.T) {
	userID := uuid.New()

	t.Run("rotates the refresh token", func(t *testing.T) {
		svc, m := newUserService(t)
		expiry := time.Now().Add(time.Hour)

		m.tokenService.On("ValidateRefreshToken", "old-token").
			Return(claimsFor(userID), nil)
		m.tokenService.On("HashToken", "old-token").Return("old-hash")
		m.tokenRepo.On("FindByTokenHash", mock.Anything, "old-hash").
			Return(&entity.RefreshToken{UserID: userID, TokenHash: "old-hash", ExpiresAt: expiry}, nil)
		m.userRepo.On("FindByID", mock.Anything, userID).
			Return(&entity.User{ID: userID, IsActive: true}, nil)
		m.tokenRepo.On("DeleteByTokenHash", mock.Anything, "old-hash").Return(nil)
		m.tokenService.On("GenerateAccessToken", userID.String(), []string{"user"}).
			Return("new-access", expiry, nil)
		m.tokenService.On("GenerateRefreshToken", userID.String()).
			Return("new-refresh", expiry, nil)
		m.tokenService.On("HashToken", "new-refresh").Return("new-hash")
		m.tokenRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		tokens, err := svc.RefreshTokens(context.Background(), "old-token")

		require.NoError(t, err)
		assert.Equal(t, "new-access", tokens.AccessToken)
		assert.Equal(t, "new-refresh", tokens.RefreshToken)
		m.tokenRepo.AssertCalled(t, "DeleteByTokenHash", mock.Anything, "old-hash")
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		svc, m := newUserService(t)

		m.tokenService.On("ValidateRefreshToken", "bad-token").
			Return(nil, errors.New("parse token"))

		_, err := svc.RefreshTokens(context.Background(), "bad-token")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("rejects an expired stored token", func(t *testing.T) {
		svc, m := newUserService(t)

		m.tokenService.On("ValidateRefreshToken", "old-token").
			Return(claimsFor(userID), nil)
		m.tokenService.On("HashToken", "old-token").Return("old-hash")
		m.tokenRepo.On("FindByTokenHash", mock.Anything, "old-hash").
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: time.Now().Add(-time.Minute)}, nil)

		_, err := svc.RefreshTokens(context.Background(), "old-token")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestUserService_Logout(t *testing.T) {
	svc, m := newUserService(t)

	m.tokenService.On("HashToken", "refresh-token").Return("refresh-hash")
	m.tokenRepo.On("DeleteByTokenHash", mock.Anything, "refresh-hash").Return(nil)

	err := svc.Logout(context.Background(), "refresh-token")

	require.NoError(t, err)
	m.tokenRepo.AssertExpectations(t)
}

func TestUserService_ListUsers(t *testing.T) {
	svc, m := newUserService(t)

	users := []*entity.User{
		{ID: uuid.New(), Username: "a"},
		{ID: uuid.New(), Username: "b"},
		{ID: uuid.New(), Username: "c"},
	}
	m.userRepo.On("FindAll", mock.Anything).Return(users, nil)

	result, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 3)
}

func TestUserService_UpdateUser(t *testing.T) {
	t.Run("replaces the profile fields", func(t *testing.T) {
		svc, m := newUserService(t)
		id := uuid.New()

		m.userRepo.On("FindByID", mock.Anything, id).Return(&entity.User{
			ID:        id,
			Username:  "jdoe",
			Email:     "old@example.com",
			FirstName: "Jane",
			LastName:  "Doe",
			IsActive:  true,
		}, nil)
		m.userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == id && u.Email == "new@example.com" && u.Username == "jdoe2"
		})).Return(nil)

		user, err := svc.UpdateUser(context.Background(), id, usecase.UpdateUserInput{
			Username:  "jdoe2",
			Email:     "new@example.com",
			FirstName: "Jane",
			LastName:  "Doe",
		})

		require.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		m.userRepo.AssertExpectations(t)
	})

	t.Run("unknown user is reported", func(t *testing.T) {
		svc, m := newUserService(t)
		id := uuid.New()

		m.userRepo.On("FindByID", mock.Anything, id).Return(nil, domainerrors.ErrUserNotFound)

		_, err := svc.UpdateUser(context.Background(), id, usecase.UpdateUserInput{})

		assert.ErrorIs(t, errors.Cause(err), domainerrors.ErrUserNotFound)
	})
}

func TestUserService_PartialUpdateUser(t *testing.T) {
	svc, m := newUserService(t)
	id := uuid.New()

	m.userRepo.On("FindByID", mock.Anything, id).Return(&entity.User{
		ID:        id,
		Username:  "jdoe",
		Email:     "old@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
		IsActive:  true,
	}, nil)
	m.userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Email == "new@example.com" && u.Username == "jdoe" && u.FirstName == "Jane"
	})).Return(nil)

	email := "new@example.com"
	user, err := svc.PartialUpdateUser(context.Background(), id, usecase.UserPatch{Email: &email})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "jdoe", user.Username)
	m.userRepo.AssertExpectations(t)
}

func TestUserService_DeleteUser(t *testing.T) {
	svc, m := newUserService(t)
	id := uuid.New()

	m.userRepo.On("Delete", mock.Anything, id).Return(nil)

	err := svc.DeleteUser(context.Background(), id)

	require.NoError(t, err)
	m.userRepo.AssertExpectations(t)
}
