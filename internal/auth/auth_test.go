package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateJWT(42, "a@x.com")
	require.NoError(t, err)

	parsed, err := VerifyJWT(token)
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "a@x.com", claims["email"])
}

func TestVerifyJWTRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	require.NoError(t, InitJWTSecret())

	token, err := GenerateJWT(42, "a@x.com")
	require.NoError(t, err)

	_, err = VerifyJWT(token + "x")
	assert.Error(t, err)

	_, err = VerifyJWT("not-a-token")
	assert.Error(t, err)
}

func TestInitJWTSecretRequiresEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	assert.Error(t, InitJWTSecret())
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password1")
	require.NoError(t, err)

	assert.NotEqual(t, "password1", hash)
	assert.True(t, CheckPassword("password1", hash))
	assert.False(t, CheckPassword("password2", hash))
}
