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

// UserRepository implements repository.UserRepository with gorm.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a gorm-backed user repository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user account.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	m := model.UserFromEntity(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists
		}
		return domainerrors.NewDatabaseExecuteError(err, "create user")
	}
	return nil
}

// FindByID looks up a user by primary key.
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by id")
	}
	return m.ToEntity(), nil
}

// FindByUsername looks up a user by username.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).First(&m, "username = ?", username).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by username")
	}
	return m.ToEntity(), nil
}

// FindByEmail looks up a user by email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error; err != nil {
		if isRecordNotFound(err) {
			return nil, domainerrors.ErrUserNotFound
		}
		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by email")
	}
	return m.ToEntity(), nil
}

// FindAll returns every user account, oldest first.
func (r *UserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	var models []model.User
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&models).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list users")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, models[i].ToEntity())
	}
	return users, nil
}

// Update saves changes to a user's profile fields.
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	m := model.UserFromEntity(user)
	result := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", m.ID).Updates(map[string]any{
		"username":   m.Username,
		"email":      m.Email,
		"first_name": m.FirstName,
		"last_name":  m.LastName,
		"updated_at": m.UpdatedAt,
	})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrUserAlreadyExists
		}
		return domainerrors.NewDatabaseExecuteError(result.Error, "update user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user account. Credentials, refresh tokens, and owned
// patients follow via the CASCADE constraints.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "delete user")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrUserNotFound
	}
	return nil
}
