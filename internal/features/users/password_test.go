package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.Contains(t, hash, "$argon2id$v=19$")

	assert.True(t, VerifyPassword("correct horse battery staple", hash))
	assert.False(t, VerifyPassword("wrong password", hash))
}

// Одинаковые пароли дают разные хеши — соль случайная.
func TestHashPasswordUsesRandomSalt(t *testing.T) {
	first, err := HashPassword("secret")
	require.NoError(t, err)
	second, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("secret", first))
	assert.True(t, VerifyPassword("secret", second))
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("secret", "не хеш вовсе"))
	assert.False(t, VerifyPassword("secret", "$argon2id$v=19$m=abc$x$y"))
	assert.False(t, VerifyPassword("secret", ""))
}
