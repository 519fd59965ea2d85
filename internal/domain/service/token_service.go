// Package service defines domain service interfaces implemented by the
// infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token type constants
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims carries the JWT claims issued by this service.
type Claims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	Type   string   `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines JWT issuing and validation.
type TokenService interface {
	// GenerateAccessToken issues a short-lived access token for the user.
	GenerateAccessToken(userID string, roles []string) (string, time.Time, error)

	// GenerateRefreshToken issues a long-lived refresh token for the user.
	GenerateRefreshToken(userID string) (string, time.Time, error)

	// ValidateAccessToken parses and verifies an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken parses and verifies a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the storage hash of a raw token string.
	HashToken(tokenString string) string
}
