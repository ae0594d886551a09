package auth

import (
	"context"
	"fmt"

	"github.com/iudanet/matrimony-client/internal/client/storage"
	"github.com/iudanet/matrimony-client/internal/crypto"
)

// SecureStore wraps a SessionStore and encrypts tokens before they reach
// the underlying storage. User id, expiry and the cached profile are
// stored as-is.
type SecureStore struct {
	storage.SessionStore
	sealer *crypto.Sealer
}

// Compile-time check that SecureStore implements SessionStore
var _ storage.SessionStore = (*SecureStore)(nil)

// NewSecureStore creates an encryption layer over next.
// encryptionKey must be exactly 32 bytes (see crypto.DeriveStoreKey).
func NewSecureStore(next storage.SessionStore, encryptionKey []byte) (*SecureStore, error) {
	sealer, err := crypto.NewSealer(encryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create sealer: %w", err)
	}

	return &SecureStore{
		SessionStore: next,
		sealer:       sealer,
	}, nil
}

// SaveSession шифрует токены и передает сессию в хранилище
func (s *SecureStore) SaveSession(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}

	encryptedAccessToken, err := s.sealer.Seal([]byte(session.AccessToken))
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}

	encryptedRefreshToken, err := s.sealer.Seal([]byte(session.RefreshToken))
	if err != nil {
		return fmt.Errorf("failed to encrypt refresh token: %w", err)
	}

	// Копируем структуру, чтобы не менять входящую
	sessionCopy := *session
	sessionCopy.AccessToken = encryptedAccessToken
	sessionCopy.RefreshToken = encryptedRefreshToken

	return s.SessionStore.SaveSession(ctx, &sessionCopy)
}

// GetSession загружает сессию и расшифровывает токены
func (s *SecureStore) GetSession(ctx context.Context) (*storage.Session, error) {
	stored, err := s.SessionStore.GetSession(ctx)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.sealer.Open(stored.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt access token: %w", err)
	}

	refreshToken, err := s.sealer.Open(stored.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt refresh token: %w", err)
	}

	session := *stored
	session.AccessToken = string(accessToken)
	session.RefreshToken = string(refreshToken)

	return &session, nil
}

// SetAccessToken шифрует новый access token перед записью
func (s *SecureStore) SetAccessToken(ctx context.Context, accessToken string, expiresAt int64) error {
	encrypted, err := s.sealer.Seal([]byte(accessToken))
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}
	return s.SessionStore.SetAccessToken(ctx, encrypted, expiresAt)
}
