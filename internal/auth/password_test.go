package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct", bcrypt.MinCost)
	require.NoError(t, err)
	assert.NotEqual(t, "correct", hash)

	assert.NoError(t, ComparePassword(hash, "correct"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}
