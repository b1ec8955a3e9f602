package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, ComparePasswordAndHash("password123", hash))
	assert.Equal(t, ErrMismatchedHashAndPassword, ComparePasswordAndHash("wrong", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	hash, err := HashPassword("")
	assert.Empty(t, hash)
	assert.Equal(t, ErrNoEmptyPassword, err)
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("password123")
	require.NoError(t, err)

	second, err := HashPassword("password123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
