package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher()

	hash, err := h.Hash("Abcdef12")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, h.Compare("Abcdef12", hash))
	assert.False(t, h.Compare("Abcdef13", hash))
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	h := NewBcryptHasher()

	_, err := h.Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}

func TestBcryptHasher_MalformedHashIsMismatch(t *testing.T) {
	h := NewBcryptHasher()
	assert.False(t, h.Compare("Abcdef12", "not-a-bcrypt-hash"))
}
