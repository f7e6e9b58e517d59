package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jesus1025/ventas-api/pkg/apperror"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	token, err := m.GenerateAccessToken("bastian", "Bastián")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "bastian", claims.UserID)
	assert.Equal(t, "Bastián", claims.Name)
	assert.Equal(t, "ventas-api", claims.Issuer)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, err := m.GenerateAccessToken("bastian", "Bastián")
	require.NoError(t, err)

	claims, err := m.ValidateAccessToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperror.ErrTokenExpired)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret-a", time.Hour).GenerateAccessToken("bastian", "Bastián")
	require.NoError(t, err)

	claims, err := NewJWTManager("secret-b", time.Hour).ValidateAccessToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}
