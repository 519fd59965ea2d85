// Package auth implements the domain auth services with bcrypt and JWT.
package auth

import (
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"clinic/config"
	"clinic/internal/domain/service"
	"clinic/internal/errors"
)

// BcryptHasher implements service.PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher creates a bcrypt-backed password hasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := cfg.Auth.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{
		cost:     cost,
		strength: cfg.PasswordStrength,
	}
}

// HashPassword hashes a plaintext password for storage.
func (h *BcryptHasher) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "generate bcrypt hash")
	}
	return string(hash), nil
}

// VerifyPassword compares a stored hash against a plaintext password.
func (h *BcryptHasher) VerifyPassword(hashedPassword, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return errors.Wrap(err, "password mismatch")
	}
	return nil
}

// ValidatePasswordStrength checks the password against the configured policy.
func (h *BcryptHasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.strength.MinLength {
		return errors.Errorf("password must be at least %d characters", h.strength.MinLength)
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsNumber(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.strength.RequireUpper && !hasUpper {
		return errors.New("password must contain an uppercase letter")
	}
	if h.strength.RequireLower && !hasLower {
		return errors.New("password must contain a lowercase letter")
	}
	if h.strength.RequireNumber && !hasNumber {
		return errors.New("password must contain a number")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		return errors.New("password must contain a special character")
	}

	return nil
}
