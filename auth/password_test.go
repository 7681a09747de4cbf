package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("rejects empty input", func(t *testing.T) {
		_, err := HashPassword("")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})

	t.Run("never stores plaintext", func(t *testing.T) {
		hash, err := HashPassword("hunter2hunter2")
		require.NoError(t, err)
		assert.NotEqual(t, "hunter2hunter2", hash)
	})

	t.Run("salts each hash", func(t *testing.T) {
		first, err := HashPassword("hunter2hunter2")
		require.NoError(t, err)
		second, err := HashPassword("hunter2hunter2")
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestComparePassword(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)

	assert.True(t, ComparePassword("hunter2hunter2", hash))
	assert.False(t, ComparePassword("wrong", hash))
	assert.False(t, ComparePassword("hunter2hunter2", ""))
}
