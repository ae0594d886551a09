package storage

import (
	"context"
	"encoding/json"
	"time"
)

//go:generate moq -out sessionstore_mock.go . SessionStore

// Ключи локального хранилища. Совпадают с ключами мобильного клиента,
// чтобы снапшот хранилища можно было сверить с устройством.
const (
	KeyAccessToken     = "accessToken"
	KeyRefreshToken    = "refreshToken"
	KeyUserID          = "userId"
	KeyExpiresAt       = "expiresAt"
	KeyUserProfile     = "userProfile"
	KeyProfileCachedAt = "profileCachedAt"
)

// SessionStore defines the persisted client state: the current Session and
// the cached own profile. Implementations must be safe for concurrent use;
// concurrent writes follow last-write-wins.
type SessionStore interface {
	// GetSession returns the committed session.
	// Returns ErrSessionNotFound if nobody is logged in.
	GetSession(ctx context.Context) (*Session, error)

	// SaveSession commits a complete session in one operation
	SaveSession(ctx context.Context, session *Session) error

	// SetAccessToken overwrites only the access token and its expiry.
	// Returns ErrSessionNotFound if there is no session to update.
	SetAccessToken(ctx context.Context, accessToken string, expiresAt int64) error

	// ClearSession removes accessToken, refreshToken, userId and expiry.
	// Clearing an empty store is not an error.
	ClearSession(ctx context.Context) error

	// GetProfile returns the cached profile snapshot.
	// Returns ErrProfileNotFound if nothing is cached.
	GetProfile(ctx context.Context) (*CachedProfile, error)

	// SaveProfile overwrites the cached profile snapshot
	SaveProfile(ctx context.Context, profile *CachedProfile) error

	// ClearProfile drops the cached profile. Idempotent.
	ClearProfile(ctx context.Context) error

	// Close releases the underlying resources
	Close() error
}

// Session represents locally persisted credentials
type Session struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	UserID       string `json:"userId"`
	ExpiresAt    int64  `json:"expiresAt"` // unix seconds, 0 - неизвестно
}

// Complete сообщает, содержит ли сессия обязательные поля
func (s *Session) Complete() bool {
	return s != nil && s.AccessToken != "" && s.UserID != ""
}

// Expired проверяет срок действия access token.
// Сессия с неизвестным сроком (ExpiresAt == 0) считается действующей.
func (s *Session) Expired(now time.Time) bool {
	if s.ExpiresAt == 0 {
		return false
	}
	return !now.Before(time.Unix(s.ExpiresAt, 0))
}

// CachedProfile is a snapshot of the user's own profile as returned by the server
type CachedProfile struct {
	CachedAt time.Time       `json:"cachedAt"`
	Profile  json.RawMessage `json:"profile"`
}
