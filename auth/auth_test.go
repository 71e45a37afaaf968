package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestCreateAndVerifyToken(t *testing.T) {
	token, err := CreateToken("user-1", "alice@example.com", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.ID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := CreateToken("user-1", "alice@example.com", testSecret)
	require.NoError(t, err)

	_, err = VerifyToken(token, []byte("other-secret"))
	assert.Error(t, err)
}

func TestVerifyTokenTampered(t *testing.T) {
	token, err := CreateToken("user-1", "alice@example.com", testSecret)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = VerifyToken(tampered, testSecret)
	assert.Error(t, err)
}

func TestVerifyTokenExpired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		ID:    "user-1",
		Email: "alice@example.com",
	})
	tokenString, err := expired.SignedString(testSecret)
	require.NoError(t, err)

	_, err = VerifyToken(tokenString, testSecret)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)

	assert.NotEqual(t, "hunter2", hash)
	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("hunter2")
	require.NoError(t, err)
	second, err := HashPassword("hunter2")
	require.NoError(t, err)

	// Different salts produce different hashes for the same input.
	assert.NotEqual(t, first, second)
}
