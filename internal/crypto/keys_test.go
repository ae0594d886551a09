package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStoreKey(t *testing.T) {
	salt, err := GenerateSalt()
	require.NoError(t, err)

	key1, err := DeriveStoreKey("correct horse battery staple", salt)
	require.NoError(t, err)
	assert.Len(t, key1, KeySize)

	// Детерминированность
	key2, err := DeriveStoreKey("correct horse battery staple", salt)
	require.NoError(t, err)
	assert.Equal(t, key1, key2)

	// Другая фраза - другой ключ
	key3, err := DeriveStoreKey("another passphrase", salt)
	require.NoError(t, err)
	assert.NotEqual(t, key1, key3)
}

func TestDeriveStoreKey_InvalidInput(t *testing.T) {
	_, err := DeriveStoreKey("", make([]byte, SaltSize))
	assert.Error(t, err)

	_, err = DeriveStoreKey("phrase", make([]byte, 8))
	assert.Error(t, err)
}

func TestLoadOrCreateSalt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.salt")

	salt, err := LoadOrCreateSalt(path)
	require.NoError(t, err)
	assert.Len(t, salt, SaltSize)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// Повторный вызов возвращает ту же соль
	again, err := LoadOrCreateSalt(path)
	require.NoError(t, err)
	assert.Equal(t, salt, again)
}

func TestLoadOrCreateSalt_Corrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.salt")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o600))

	_, err := LoadOrCreateSalt(path)
	assert.Error(t, err)
}
