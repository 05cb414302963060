package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dilshodmuxtorov/TodoLIstApi/domain"
)

func newTestJWTService(accessTTL time.Duration) domain.TokenService {
	return NewJWTService("test-secret", "todosvc-test", accessTTL, 24*time.Hour)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)

	token, err := svc.GenerateAccessToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestJWTService_RefreshTokenCarriesUserID(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)

	token, err := svc.GenerateRefreshToken(7)
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestJWTService_ValidateFailures(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-token")
		assert.ErrorIs(t, err, domain.ErrTokenMalformed)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewJWTService("other-secret", "todosvc-test", 15*time.Minute, 24*time.Hour)
		token, err := other.GenerateAccessToken(1)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := newTestJWTService(-1 * time.Minute)
		token, err := expired.GenerateAccessToken(1)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})
}

func TestJWTService_TokensAreUnique(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)

	first, err := svc.GenerateAccessToken(1)
	require.NoError(t, err)
	second, err := svc.GenerateAccessToken(1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
