package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	require.NotEqual(t, "Secret123", hash)

	ok, err := VerifyPassword("Secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong-password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("Secret123")
	require.NoError(t, err)

	second, err := HashPassword("Secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("Secret123", "not-an-argon2-hash")
	assert.Error(t, err)
}
