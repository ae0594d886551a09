package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSealer_KeySize(t *testing.T) {
	tests := []struct {
		name    string
		keyLen  int
		wantErr bool
	}{
		{name: "valid 32 byte key", keyLen: 32},
		{name: "too short", keyLen: 16, wantErr: true},
		{name: "empty", keyLen: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSealer(make([]byte, tt.keyLen))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestSealer_SealOpen(t *testing.T) {
	s, err := NewSealer(bytes.Repeat([]byte{7}, KeySize))
	require.NoError(t, err)

	sealed, err := s.Seal([]byte("eyJhbGciOiJIUzI1NiJ9.payload.sig"))
	require.NoError(t, err)
	assert.NotContains(t, sealed, "payload")

	// Каждый вызов использует новый nonce
	sealed2, err := s.Seal([]byte("eyJhbGciOiJIUzI1NiJ9.payload.sig"))
	require.NoError(t, err)
	assert.NotEqual(t, sealed, sealed2)

	opened, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "eyJhbGciOiJIUzI1NiJ9.payload.sig", string(opened))
}

func TestSealer_Empty(t *testing.T) {
	s, err := NewSealer(make([]byte, KeySize))
	require.NoError(t, err)

	sealed, err := s.Seal(nil)
	require.NoError(t, err)
	assert.Empty(t, sealed)

	opened, err := s.Open("")
	require.NoError(t, err)
	assert.Nil(t, opened)
}

func TestSealer_WrongKey(t *testing.T) {
	s1, err := NewSealer(bytes.Repeat([]byte{1}, KeySize))
	require.NoError(t, err)
	s2, err := NewSealer(bytes.Repeat([]byte{2}, KeySize))
	require.NoError(t, err)

	sealed, err := s1.Seal([]byte("secret"))
	require.NoError(t, err)

	_, err = s2.Open(sealed)
	assert.ErrorIs(t, err, ErrDecrypt)
}

func TestSealer_Corrupted(t *testing.T) {
	s, err := NewSealer(make([]byte, KeySize))
	require.NoError(t, err)

	_, err = s.Open("not-base64!!")
	assert.Error(t, err)

	_, err = s.Open("c2hvcnQ=") // "short"
	assert.Error(t, err)
}
