package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	restID := uint(3)
	token, err := GenerateToken(42, "ADMIN", &restID, "secret", time.Hour)
	require.NoError(t, err)

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
	require.NotNil(t, claims.RestaurantID)
	assert.Equal(t, uint(3), *claims.RestaurantID)
}

func TestGenerateToken_WrongSecretRejected(t *testing.T) {
	token, err := GenerateToken(1, "STAFF", nil, "secret", time.Hour)
	require.NoError(t, err)

	var claims Claims
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}

func TestGenerateToken_Expired(t *testing.T) {
	token, err := GenerateToken(1, "STAFF", nil, "secret", -time.Minute)
	require.NoError(t, err)

	var claims Claims
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
