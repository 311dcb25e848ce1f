package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstrand/kanban-api/internal/config"
)

const testSecret = "test-jwt-secret-that-is-32-chars-long"

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:                   testSecret,
		TokenLifetimeMinutes:        60,
		RefreshTokenLifetimeMinutes: 1440,
	}
}

// newFixedTimeService creates a service whose clock is pinned to the
// given instant.
func newFixedTimeService(t *testing.T, at time.Time) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	impl := svc.(*hmacJWTService)
	impl.timeFunc = func() time.Time { return at }
	return impl
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig()
	cfg.JWTSecret = "too-short"
	svc, err := NewJWTService(cfg)
	assert.Nil(t, svc)
	assert.Error(t, err)
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	svc := newFixedTimeService(t, fixedTime)

	token, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.TokenType)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateTokenFailures(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	tests := []struct {
		name    string
		token   func(t *testing.T) (svc JWTService, token string)
		wantErr error
	}{
		{
			name: "expired token",
			token: func(t *testing.T) (JWTService, string) {
				gen := newFixedTimeService(t, fixedTime)
				token, err := gen.GenerateToken(context.Background(), userID)
				require.NoError(t, err)
				// Validate well past expiry plus clock skew.
				val := newFixedTimeService(t, fixedTime.Add(2*time.Hour))
				return val, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "wrong signing key",
			token: func(t *testing.T) (JWTService, string) {
				gen := newFixedTimeService(t, fixedTime)
				token, err := gen.GenerateToken(context.Background(), userID)
				require.NoError(t, err)

				cfg := testAuthConfig()
				cfg.JWTSecret = "another-secret-that-is-32-chars-long!!"
				val, err := NewJWTService(cfg)
				require.NoError(t, err)
				return val, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			token: func(t *testing.T) (JWTService, string) {
				return newFixedTimeService(t, fixedTime), "not-a-jwt"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "refresh token rejected as access token",
			token: func(t *testing.T) (JWTService, string) {
				svc := newFixedTimeService(t, fixedTime)
				token, err := svc.GenerateRefreshToken(context.Background(), userID)
				require.NoError(t, err)
				return svc, token
			},
			wantErr: ErrWrongTokenType,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.token(t)
			claims, err := svc.ValidateToken(context.Background(), token)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()
	svc := newFixedTimeService(t, fixedTime)

	token, err := svc.GenerateRefreshToken(context.Background(), userID)
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "refresh", claims.TokenType)
	assert.Equal(t, fixedTime.Add(24*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestValidateRefreshTokenFailures(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	userID := uuid.New()

	t.Run("access token rejected as refresh token", func(t *testing.T) {
		t.Parallel()
		svc := newFixedTimeService(t, fixedTime)
		token, err := svc.GenerateToken(context.Background(), userID)
		require.NoError(t, err)

		claims, err := svc.ValidateRefreshToken(context.Background(), token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrWrongTokenType)
	})

	t.Run("expired refresh token", func(t *testing.T) {
		t.Parallel()
		gen := newFixedTimeService(t, fixedTime)
		token, err := gen.GenerateRefreshToken(context.Background(), userID)
		require.NoError(t, err)

		val := newFixedTimeService(t, fixedTime.Add(25*time.Hour))
		claims, err := val.ValidateRefreshToken(context.Background(), token)
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrExpiredRefreshToken)
	})

	t.Run("garbage refresh token", func(t *testing.T) {
		t.Parallel()
		svc := newFixedTimeService(t, fixedTime)
		claims, err := svc.ValidateRefreshToken(context.Background(), "garbage")
		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestAccessTokenLifetime(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testAuthConfig())
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.AccessTokenLifetime())
}
