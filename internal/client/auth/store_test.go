package auth

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/matrimony-client/internal/client/storage"
	"github.com/iudanet/matrimony-client/internal/client/storage/memory"
)

func newTestSecureStore(t *testing.T) (*SecureStore, *memory.Store) {
	t.Helper()

	inner := memory.New()
	store, err := NewSecureStore(inner, make([]byte, 32))
	require.NoError(t, err)

	return store, inner
}

func TestNewSecureStore_InvalidKey(t *testing.T) {
	store, err := NewSecureStore(memory.New(), []byte("short"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestSecureStore_SaveSession(t *testing.T) {
	tests := []struct {
		session *storage.Session
		name    string
		wantErr bool
	}{
		{
			name: "successful save",
			session: &storage.Session{
				AccessToken:  "plaintext-access-token",
				RefreshToken: "plaintext-refresh-token",
				UserID:       "user-123",
				ExpiresAt:    1234567890,
			},
		},
		{
			name: "without refresh token",
			session: &storage.Session{
				AccessToken: "plaintext-access-token",
				UserID:      "user-123",
			},
		},
		{
			name:    "nil session",
			session: nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store, inner := newTestSecureStore(t)

			err := store.SaveSession(ctx, tt.session)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			raw, err := inner.GetSession(ctx)
			require.NoError(t, err)

			// plaintext поля сохранились как есть
			assert.Equal(t, tt.session.UserID, raw.UserID)
			assert.Equal(t, tt.session.ExpiresAt, raw.ExpiresAt)

			// Токены зашифрованы
			assert.NotEqual(t, tt.session.AccessToken, raw.AccessToken)
			if tt.session.RefreshToken != "" {
				assert.NotEqual(t, tt.session.RefreshToken, raw.RefreshToken)
			} else {
				assert.Empty(t, raw.RefreshToken)
			}

			// Входная структура не изменилась
			assert.Equal(t, "plaintext-access-token", tt.session.AccessToken)

			// Расшифровка возвращает исходные данные
			got, err := store.GetSession(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.session, got)
		})
	}
}

func TestSecureStore_SetAccessToken(t *testing.T) {
	ctx := context.Background()
	store, inner := newTestSecureStore(t)

	require.NoError(t, store.SaveSession(ctx, &storage.Session{
		AccessToken:  "old",
		RefreshToken: "refresh",
		UserID:       "user-1",
	}))
	require.NoError(t, store.SetAccessToken(ctx, "new", 42))

	raw, err := inner.GetSession(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, "new", raw.AccessToken)

	got, err := store.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.AccessToken)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.Equal(t, int64(42), got.ExpiresAt)
}

func TestSecureStore_WrongKey(t *testing.T) {
	ctx := context.Background()
	inner := memory.New()

	writer, err := NewSecureStore(inner, make([]byte, 32))
	require.NoError(t, err)
	require.NoError(t, writer.SaveSession(ctx, &storage.Session{AccessToken: "a", UserID: "u"}))

	key := make([]byte, 32)
	key[0] = 1
	reader, err := NewSecureStore(inner, key)
	require.NoError(t, err)

	_, err = reader.GetSession(ctx)
	assert.Error(t, err)
}

func TestSecureStore_PassThrough(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestSecureStore(t)

	// Не найденная сессия пробрасывается без обертки
	_, err := store.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Профиль хранится без шифрования
	require.NoError(t, store.SaveProfile(ctx, &storage.CachedProfile{Profile: json.RawMessage(`{"id":"1"}`)}))
	got, err := store.GetProfile(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(got.Profile))

	require.NoError(t, store.ClearSession(ctx))
	require.NoError(t, store.ClearProfile(ctx))
}
