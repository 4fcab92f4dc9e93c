package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("Hunter22!")
	require.NoError(t, err)
	require.NotEqual(t, "Hunter22!", hashed)

	assert.True(t, CheckPassword(hashed, "Hunter22!"))
	assert.False(t, CheckPassword(hashed, "wrong"))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "Hunter22!"))
}
