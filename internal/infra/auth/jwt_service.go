package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"clinic/config"
	"clinic/internal/domain/service"
	"clinic/internal/errors"
)

// JWTService implements service.TokenService with HS256-signed JWTs.
// Access and refresh tokens are signed with separate secrets.
type JWTService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
}

// NewJWTService creates a JWT token service from configuration.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must not be empty")
	}
	return &JWTService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     cfg.Auth.AccessTokenTTL,
		refreshTTL:    cfg.Auth.RefreshTokenTTL,
		issuer:        cfg.Env.ServiceName,
	}, nil
}

// GenerateAccessToken issues a short-lived access token for the user.
func (s *JWTService) GenerateAccessToken(userID string, roles []string) (string, time.Time, error) {
	return s.generate(userID, roles, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
}

// GenerateRefreshToken issues a long-lived refresh token for the user.
func (s *JWTService) GenerateRefreshToken(userID string) (string, time.Time, error) {
	return s.generate(userID, nil, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
}

func (s *JWTService) generate(userID string, roles []string, tokenType string, ttl time.Duration, secret []byte) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := &service.Claims{
		UserID: userID,
		Roles:  roles,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}

	return signed, expiresAt, nil
}

// ValidateAccessToken parses and verifies an access token.
func (s *JWTService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, service.TokenTypeAccess, s.accessSecret)
}

// ValidateRefreshToken parses and verifies a refresh token.
func (s *JWTService) ValidateRefreshToken(tokenString string) (*service.Claims, error) {
	return s.validate(tokenString, service.TokenTypeRefresh, s.refreshSecret)
}

func (s *JWTService) validate(tokenString, expectedType string, secret []byte) (*service.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &service.Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}

	claims, ok := token.Claims.(*service.Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.Type != expectedType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	return claims, nil
}

// HashToken returns the hex-encoded SHA-256 of a raw token string.
func (s *JWTService) HashToken(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))
	return hex.EncodeToString(sum[:])
}
