package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	token, err := GenerateToken(secret, 42, "ada@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestValidToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("secret-a"), 1, "x@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ValidToken([]byte("secret-b"), token)
	assert.Error(t, err)
}

func TestValidToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, 1, "x@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidToken(secret, token)
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	secret := []byte("test-secret")
	a, _ := GenerateToken(secret, 1, "x@example.com", time.Hour)
	b, _ := GenerateToken(secret, 1, "x@example.com", time.Hour)

	ca, err := ValidToken(secret, a)
	require.NoError(t, err)
	cb, err := ValidToken(secret, b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.NoError(t, CheckPassword("hunter22", hash))
	assert.Error(t, CheckPassword("wrong", hash))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ada@example.com"))
	assert.NoError(t, ValidateEmail("  Ada@Example.com "))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("longenough"))
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Ada"))
	assert.Error(t, ValidateName("   "))
}
