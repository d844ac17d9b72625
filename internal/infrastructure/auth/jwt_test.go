package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/geocoord-backend/internal/domain"
	"github.com/marcos-nsantos/geocoord-backend/internal/infrastructure/auth"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := auth.NewJWTService("secret", "geocoord", time.Minute)
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateAccessToken(userID)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	got, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestJWTService_ValidateAccessToken(t *testing.T) {
	userID := uuid.New()

	t.Run("rejects expired token", func(t *testing.T) {
		svc := auth.NewJWTService("secret", "geocoord", -time.Minute)
		token, _, err := svc.GenerateAccessToken(userID)
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenExpired)
	})

	t.Run("rejects token signed with another key", func(t *testing.T) {
		other := auth.NewJWTService("other", "geocoord", time.Minute)
		token, _, err := other.GenerateAccessToken(userID)
		require.NoError(t, err)

		svc := auth.NewJWTService("secret", "geocoord", time.Minute)
		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects token from another issuer", func(t *testing.T) {
		other := auth.NewJWTService("secret", "someone-else", time.Minute)
		token, _, err := other.GenerateAccessToken(userID)
		require.NoError(t, err)

		svc := auth.NewJWTService("secret", "geocoord", time.Minute)
		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		svc := auth.NewJWTService("secret", "geocoord", time.Minute)
		_, err := svc.ValidateAccessToken("not-a-token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects other signing algorithms", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    "geocoord",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		svc := auth.NewJWTService("secret", "geocoord", time.Minute)
		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects token without expiry", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject: userID.String(),
			Issuer:  "geocoord",
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		svc := auth.NewJWTService("secret", "geocoord", time.Minute)
		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects subject that is not a user id", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Subject:   "service-account@example.com",
			Issuer:    "geocoord",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		svc := auth.NewJWTService("secret", "geocoord", time.Minute)
		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})
}
