package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic/config"
	"clinic/internal/domain/service"
)

func jwtTestConfig() *config.Config {
	return &config.Config{
		Env: config.EnvConfig{ServiceName: "clinic-test"},
		SecretKey: config.SecretKeyConfig{
			Access:  "test-access-secret",
			Refresh: "test-refresh-secret",
		},
		Auth: config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc, err := NewJWTService(jwtTestConfig())
	require.NoError(t, err)

	token, expiresAt, err := svc.GenerateAccessToken("user-123", []string{"user", "admin"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
}

func TestJWTService_RefreshTokenRoundTrip(t *testing.T) {
	svc, err := NewJWTService(jwtTestConfig())
	require.NoError(t, err)

	token, _, err := svc.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, claims.Type)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc, err := NewJWTService(jwtTestConfig())
	require.NoError(t, err)

	accessToken, _, err := svc.GenerateAccessToken("user-123", nil)
	require.NoError(t, err)
	refreshToken, _, err := svc.GenerateRefreshToken("user-123")
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(jwtTestConfig())
	require.NoError(t, err)

	token, _, err := svc.GenerateAccessToken("user-123", nil)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token + "x")
	assert.Error(t, err)
}

func TestJWTService_RequiresSecrets(t *testing.T) {
	cfg := jwtTestConfig()
	cfg.SecretKey.Access = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_HashTokenIsStable(t *testing.T) {
	svc, err := NewJWTService(jwtTestConfig())
	require.NoError(t, err)

	h1 := svc.HashToken("some-token")
	h2 := svc.HashToken("some-token")
	h3 := svc.HashToken("other-token")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 64)
}
