package auth

import (
	"testing"

	"vigia/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	hash, err := hasher.Hash("secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secreto123", hash)

	assert.True(t, hasher.Check("secreto123", hash))
	assert.False(t, hasher.Check("otra-clave", hash))
}

func TestBcryptHasher_DefaultsCostWhenUnconfigured(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{})

	hash, err := hasher.Hash("secreto123")
	require.NoError(t, err)
	assert.True(t, hasher.Check("secreto123", hash))
}
