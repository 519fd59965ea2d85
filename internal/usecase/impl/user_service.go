package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"clinic/internal/domain/entity"
	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/domain/repository"
	"clinic/internal/domain/service"
	"clinic/internal/errors"
	"clinic/internal/usecase"
)

// UserService implements usecase.UserUsecase.
type UserService struct {
	userRepo     repository.UserRepository
	credRepo     repository.CredentialRepository
	tokenRepo    repository.RefreshTokenRepository
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService creates the user use case implementation.
func NewUserService(
	userRepo repository.UserRepository,
	credRepo repository.CredentialRepository,
	tokenRepo repository.RefreshTokenRepository,
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &UserService{
		userRepo:     userRepo,
		credRepo:     credRepo,
		tokenRepo:    tokenRepo,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// Register creates a user account with its credential in one transaction.
func (s *UserService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	if err := s.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerrors.NewValidationError(map[string]string{
			"password": err.Error(),
		})
	}

	passwordHash, err := s.hasher.HashPassword(input.Password)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		return nil, domainerrors.ErrPasswordHashFailed
	}

	now := time.Now()
	user := &entity.User{
		ID:        uuid.New(),
		Username:  input.Username,
		Email:     input.Email,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.txManager.Execute(ctx, func(ctx context.Context, factory repository.RepositoryFactory) error {
		if err := factory.UserRepository().Create(ctx, user); err != nil {
			return err
		}
		credential := &entity.Credential{
			ID:           uuid.New(),
			UserID:       user.ID,
			PasswordHash: passwordHash,
			CreatedAt:    now,
		}
		return factory.CredentialRepository().Create(ctx, credential)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrUserAlreadyExists
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Login verifies credentials and issues a token pair. Every failure path
// returns ErrInvalidCredentials so callers cannot tell whether the
// username exists.
func (s *UserService) Login(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.ErrInvalidCredentials
	}

	credential, err := s.credRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.VerifyPassword(credential.PasswordHash, password); err != nil {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
	return &usecase.AuthResult{User: user, Tokens: *tokens}, nil
}

// RefreshTokens exchanges a valid refresh token for a new pair, rotating the
// stored token.
func (s *UserService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	stored, err := s.tokenRepo.FindByTokenHash(ctx, s.tokenService.HashToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil || userID != stored.UserID {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	if err := s.tokenRepo.DeleteByTokenHash(ctx, stored.TokenHash); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes a refresh token. Unknown tokens are treated as already
// revoked.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.DeleteByTokenHash(ctx, s.tokenService.HashToken(refreshToken))
}

// GetUser returns a user by ID.
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateUser replaces a user's profile fields.
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.Username = input.Username
	user.Email = input.Email
	user.FirstName = input.FirstName
	user.LastName = input.LastName
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// PartialUpdateUser applies the non-nil fields of a patch.
func (s *UserService) PartialUpdateUser(ctx context.Context, id uuid.UUID, patch usecase.UserPatch) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes a user account. The schema cascades to credentials,
// refresh tokens, and owned patients with their readings.
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "user deleted", slog.String("user_id", id.String()))
	return nil
}

// ListUsers returns the full user roster.
func (s *UserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	return s.userRepo.FindAll(ctx)
}

func (s *UserService) issueTokens(ctx context.Context, user *entity.User) (*usecase.TokenPair, error) {
	accessToken, accessExpiry, err := s.tokenService.GenerateAccessToken(user.ID.String(), user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "generate access token")
	}

	refreshToken, refreshExpiry, err := s.tokenService.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, errors.Wrap(err, "generate refresh token")
	}

	record := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: s.tokenService.HashToken(refreshToken),
		ExpiresAt: refreshExpiry,
		CreatedAt: time.Now(),
	}
	if err := s.tokenRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return &usecase.TokenPair{
		AccessToken:      accessToken,
		AccessExpiresAt:  accessExpiry,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiry,
	}, nil
}
