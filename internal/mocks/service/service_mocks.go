// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"time"

	"github.com/stretchr/testify/mock"

	"clinic/internal/domain/service"
)

// MockPasswordHasher is a testify mock for service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) VerifyPassword(hashedPassword, password string) error {
	args := m.Called(hashedPassword, password)
	return args.Error(0)
}

func (m *MockPasswordHasher) ValidatePasswordStrength(password string) error {
	args := m.Called(password)
	return args.Error(0)
}

// MockTokenService is a testify mock for service.TokenService.
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(userID string, roles []string) (string, time.Time, error) {
	args := m.Called(userID, roles)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(userID string) (string, time.Time, error) {
	args := m.Called(userID)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*service.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims := args.Get(0); claims != nil {
		return claims.(*service.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTokenService) HashToken(tokenString string) string {
	args := m.Called(tokenString)
	return args.String(0)
}
