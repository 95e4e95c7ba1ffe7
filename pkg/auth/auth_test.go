package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, "jane@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, id.String(), claims.Subject)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("a", time.Hour).GenerateToken(uuid.New(), "x@y.z")
	require.NoError(t, err)

	_, err = NewJWTService("b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService("s", time.Hour)
	svc.tokenLifespan = -time.Minute
	token, err := svc.GenerateToken(uuid.New(), "x@y.z")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
