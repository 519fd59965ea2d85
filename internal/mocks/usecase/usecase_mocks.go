// Package usecase provides testify mocks for the application use case
// interfaces.
package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"clinic/internal/domain/entity"
	"clinic/internal/usecase"
)

// MockUserUsecase is a testify mock for usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, username, password string) (*usecase.AuthResult, error) {
	args := m.Called(ctx, username, password)
	if result := args.Get(0); result != nil {
		return result.(*usecase.AuthResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if tokens := args.Get(0); tokens != nil {
		return tokens.(*usecase.TokenPair), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

func (m *MockUserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	args := m.Called(ctx, id, input)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) PartialUpdateUser(ctx context.Context, id uuid.UUID, patch usecase.UserPatch) (*entity.User, error) {
	args := m.Called(ctx, id, patch)
	if user := args.Get(0); user != nil {
		return user.(*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]*entity.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockLocationUsecase is a testify mock for usecase.LocationUsecase.
type MockLocationUsecase struct {
	mock.Mock
}

func (m *MockLocationUsecase) CreateLocation(ctx context.Context, input usecase.LocationInput) (*entity.Location, error) {
	args := m.Called(ctx, input)
	if location := args.Get(0); location != nil {
		return location.(*entity.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLocationUsecase) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	args := m.Called(ctx, id)
	if location := args.Get(0); location != nil {
		return location.(*entity.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLocationUsecase) ListLocations(ctx context.Context, input usecase.ListInput) ([]*entity.Location, int64, error) {
	args := m.Called(ctx, input)
	if locations := args.Get(0); locations != nil {
		return locations.([]*entity.Location), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockLocationUsecase) UpdateLocation(ctx context.Context, id uuid.UUID, input usecase.LocationInput) (*entity.Location, error) {
	args := m.Called(ctx, id, input)
	if location := args.Get(0); location != nil {
		return location.(*entity.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLocationUsecase) PartialUpdateLocation(ctx context.Context, id uuid.UUID, patch usecase.LocationPatch) (*entity.Location, error) {
	args := m.Called(ctx, id, patch)
	if location := args.Get(0); location != nil {
		return location.(*entity.Location), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLocationUsecase) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPatientUsecase is a testify mock for usecase.PatientUsecase.
type MockPatientUsecase struct {
	mock.Mock
}

func (m *MockPatientUsecase) CreatePatient(ctx context.Context, input usecase.PatientInput) (*entity.Patient, error) {
	args := m.Called(ctx, input)
	if patient := args.Get(0); patient != nil {
		return patient.(*entity.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientUsecase) GetPatient(ctx context.Context, id uuid.UUID) (*entity.Patient, error) {
	args := m.Called(ctx, id)
	if patient := args.Get(0); patient != nil {
		return patient.(*entity.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientUsecase) ListPatients(ctx context.Context, input usecase.ListInput) ([]*entity.Patient, int64, error) {
	args := m.Called(ctx, input)
	if patients := args.Get(0); patients != nil {
		return patients.([]*entity.Patient), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockPatientUsecase) UpdatePatient(ctx context.Context, id uuid.UUID, input usecase.PatientInput) (*entity.Patient, error) {
	args := m.Called(ctx, id, input)
	if patient := args.Get(0); patient != nil {
		return patient.(*entity.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientUsecase) PartialUpdatePatient(ctx context.Context, id uuid.UUID, patch usecase.PatientPatch) (*entity.Patient, error) {
	args := m.Called(ctx, id, patch)
	if patient := args.Get(0); patient != nil {
		return patient.(*entity.Patient), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPatientUsecase) DeletePatient(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockHeartRateUsecase is a testify mock for usecase.HeartRateUsecase.
type MockHeartRateUsecase struct {
	mock.Mock
}

func (m *MockHeartRateUsecase) CreateHeartRate(ctx context.Context, input usecase.CreateHeartRateInput) (*entity.HeartRate, error) {
	args := m.Called(ctx, input)
	if record := args.Get(0); record != nil {
		return record.(*entity.HeartRate), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHeartRateUsecase) GetHeartRate(ctx context.Context, id uuid.UUID) (*entity.HeartRate, error) {
	args := m.Called(ctx, id)
	if record := args.Get(0); record != nil {
		return record.(*entity.HeartRate), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHeartRateUsecase) ListHeartRates(ctx context.Context, input usecase.ListInput) ([]*entity.HeartRate, int64, error) {
	args := m.Called(ctx, input)
	if records := args.Get(0); records != nil {
		return records.([]*entity.HeartRate), args.Get(1).(int64), args.Error(2)
	}
	return nil, args.Get(1).(int64), args.Error(2)
}

func (m *MockHeartRateUsecase) UpdateHeartRate(ctx context.Context, id uuid.UUID, input usecase.UpdateHeartRateInput) (*entity.HeartRate, error) {
	args := m.Called(ctx, id, input)
	if record := args.Get(0); record != nil {
		return record.(*entity.HeartRate), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHeartRateUsecase) PartialUpdateHeartRate(ctx context.Context, id uuid.UUID, patch usecase.HeartRatePatch) (*entity.HeartRate, error) {
	args := m.Called(ctx, id, patch)
	if record := args.Get(0); record != nil {
		return record.(*entity.HeartRate), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHeartRateUsecase) DeleteHeartRate(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
