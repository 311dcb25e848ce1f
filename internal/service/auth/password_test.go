package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost) // minimum cost keeps the test fast

	hash, err := hasher.Hash("correct-horse-battery")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "correct-horse-battery", hash)

	assert.NoError(t, hasher.Compare(hash, "correct-horse-battery"))
	assert.Error(t, hasher.Compare(hash, "wrong-password"))
}

func TestBcryptHasherInvalidCostFallsBack(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(99)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)

	hasher = NewBcryptHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}

func TestBcryptHasherDistinctHashes(t *testing.T) {
	t.Parallel()

	hasher := NewBcryptHasher(bcrypt.MinCost)
	first, err := hasher.Hash("same-password-here")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password-here")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, first, second)
}
