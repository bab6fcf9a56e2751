package security_test

import (
	"realestate_crud/internal/common/security"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := security.HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, security.CheckPasswordHash("s3cret", hash))
	assert.False(t, security.CheckPasswordHash("wrong", hash))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := security.HashPassword("s3cret")
	require.NoError(t, err)
	second, err := security.HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, security.CheckPasswordHash("s3cret", first))
	assert.True(t, security.CheckPasswordHash("s3cret", second))
}

func TestCheckPasswordHash_InvalidHash(t *testing.T) {
	assert.False(t, security.CheckPasswordHash("anything", "not-a-bcrypt-hash"))
}
