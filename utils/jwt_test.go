package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "ngo", "secret", time.Hour)
	require.NoError(t, err)

	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "ngo", claims.Role)
}

func TestGenerateToken_WrongSecretRejected(t *testing.T) {
	token, err := GenerateToken(1, "donor", "secret", time.Hour)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}

func TestGenerateToken_Expired(t *testing.T) {
	token, err := GenerateToken(1, "donor", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		return []byte("secret"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
