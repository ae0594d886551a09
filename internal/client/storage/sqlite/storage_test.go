package sqlite

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/matrimony-client/internal/client/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(context.Background(), filepath.Join(t.TempDir(), "client.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestNew_InMemory(t *testing.T) {
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	var count int
	err = s.db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStorage_Session(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.ErrorIs(t, s.SetAccessToken(ctx, "x", 1), storage.ErrSessionNotFound)

	session := &storage.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		UserID:       "user-42",
		ExpiresAt:    time.Now().Add(time.Hour).Unix(),
	}
	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)

	require.NoError(t, s.SetAccessToken(ctx, "access-2", 99))
	got, err = s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "access-2", got.AccessToken)
	assert.Equal(t, int64(99), got.ExpiresAt)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.Equal(t, "user-42", got.UserID)

	require.NoError(t, s.ClearSession(ctx))
	_, err = s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
	assert.NoError(t, s.ClearSession(ctx))
}

func TestStorage_Profile(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.GetProfile(ctx)
	assert.ErrorIs(t, err, storage.ErrProfileNotFound)

	cachedAt := time.Now()
	require.NoError(t, s.SaveProfile(ctx, &storage.CachedProfile{
		Profile:  json.RawMessage(`{"id":"user-42","city":"Pune"}`),
		CachedAt: cachedAt,
	}))

	got, err := s.GetProfile(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"user-42","city":"Pune"}`, string(got.Profile))
	assert.True(t, cachedAt.Equal(got.CachedAt))

	require.NoError(t, s.ClearProfile(ctx))
	_, err = s.GetProfile(ctx)
	assert.ErrorIs(t, err, storage.ErrProfileNotFound)
}

func TestStorage_MigrationsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "client.sqlite")

	s, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, s.SaveSession(ctx, &storage.Session{AccessToken: "a", UserID: "u"}))
	require.NoError(t, s.Close())

	// Повторное открытие не должно падать на уже применённых миграциях
	s, err = New(ctx, path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u", got.UserID)
}

func TestStorage_Closed(t *testing.T) {
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = s.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
