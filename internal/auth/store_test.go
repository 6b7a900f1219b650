package auth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignUpAndLogin(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	require.True(t, store.SignUp("maria", "s3cret"))
	assert.True(t, store.Login("maria", "s3cret"))
	assert.False(t, store.Login("maria", "wrong"))
	assert.False(t, store.Login("nobody", "s3cret"))
}

func TestSignUp_Rejections(t *testing.T) {
	store := NewStore(t.TempDir(), nil)

	assert.False(t, store.SignUp("", "pw"))
	assert.False(t, store.SignUp("   ", "pw"))
	assert.False(t, store.SignUp("user", ""))

	require.True(t, store.SignUp("maria", "one"))
	assert.False(t, store.SignUp("maria", "two"), "existing username is immutable")
	assert.True(t, store.Login("maria", "one"), "original password still holds")
}

func TestExists(t *testing.T) {
	store := NewStore(t.TempDir(), nil)
	assert.False(t, store.Exists("maria"))

	require.True(t, store.SignUp("maria", "pw"))
	assert.True(t, store.Exists("maria"))
}

func TestHashPassword(t *testing.T) {
	// Known SHA-256 vector, lowercase hex.
	assert.Equal(t,
		"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		HashPassword("password"))
}

func TestStoredFormat(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)
	require.True(t, store.SignUp("maria", "password"))

	data, err := os.ReadFile(filepath.Join(dir, "users.txt"))
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	assert.Equal(t, "maria:5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8", line)
}
