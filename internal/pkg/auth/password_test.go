package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("teacher123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	// The hash must never equal the plaintext
	assert.NotEqual(t, "teacher123", hash)

	assert.True(t, CheckPassword(hash, "teacher123"))
	assert.False(t, CheckPassword(hash, "teacher124"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("student123")
	require.NoError(t, err)
	second, err := HashPassword("student123")
	require.NoError(t, err)

	// bcrypt salts every hash, so two hashes of the same input differ
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "student123"))
	assert.True(t, CheckPassword(second, "student123"))
}
