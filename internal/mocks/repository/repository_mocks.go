// Package repository provides testify mocks for the domain repository
// interfaces.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"clinic/internal/domain/entity"
	"clinic/internal/domain/repository"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCredentialRepository is a testify mock for repository.CredentialRepository.
type MockCredentialRepository struct {
	mock.Mock
}

func (m *MockCredentialRepository) Create(ctx context.Context, credential *entity.Credential) error {
	args := m.Called(ctx, credential)
	return args.Error(0)
}

func (m *MockCredentialRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error) {
	args := m.Called(ctx, userID)
	if credential := args.Get(0); credential != nil {
		return credential.(*entity.Credential), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCredentialRepository) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

// MockRefreshTokenRepository is a testify mock for repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if token := args.Get(0); token != nil {
		return token.(*entity.RefreshToken), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockLocationRepository is a testify mock for repository.LocationRepository.
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) Create(ctx context.Context, location *entity.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	args := m.Called(ctx, id)
	if location := args.Get(0); location != nil {
		return location.(*entity.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLocationRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.Location, int64, error) {
	args := m.Called(ctx, query)
	if locations := args.Get(0); locations != nil {
		return locations.([]*entity.Location), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockLocationRepository) Update(ctx context.Context, location *entity.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPatientRepository is a testify mock for repository.PatientRepository.
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	if patient := args.Get(0); patient != nil {
		return patient.(*entity.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.Patient, int64, error) {
	args := m.Called(ctx, query)
	if patients := args.Get(0); patients != nil {
		return patients.([]*entity.Patient), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockPatientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockHeartRateRepository is a testify mock for repository.HeartRateRepository.
type MockHeartRateRepository struct {
	mock.Mock
}

func (m *MockHeartRateRepository) Create(ctx context.Context, record *entity.HeartRate) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHeartRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HeartRate, error) {
	args := m.Called(ctx, id)
	if record := args.Get(0); record != nil {
		return record.(*entity.HeartRate), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHeartRateRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.HeartRate, int64, error) {
	args := m.Called(ctx, query)
	if records := args.Get(0); records != nil {
		return records.([]*entity.HeartRate), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockHeartRateRepository) Update(ctx context.Context, record *entity.HeartRate) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockHeartRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTransactionManager is a testify mock for repository.TransactionManager.
// Execute runs the callback against the configured factory so transactional
// flows can be exercised without a database.
type MockTransactionManager struct {
	mock.Mock
	Factory repository.RepositoryFactory
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context, factory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(ctx, m.Factory)
}

// MockRepositoryFactory is a testify-style factory returning the configured
// repository mocks.
type MockRepositoryFactory struct {
	Users         repository.UserRepository
	Credentials   repository.CredentialRepository
	RefreshTokens repository.RefreshTokenRepository
	Patients      repository.PatientRepository
}

func (f *MockRepositoryFactory) UserRepository() repository.UserRepository {
	return f.Users
}

func (f *MockRepositoryFactory) CredentialRepository() repository.CredentialRepository {
	return f.Credentials
}

func (f *MockRepositoryFactory) RefreshTokenRepository() repository.RefreshTokenRepository {
	return f.RefreshTokens
}

func (f *MockRepositoryFactory) PatientRepository() repository.PatientRepository {
	return f.Patients
}
