package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/matrimony-client/internal/client/storage"
)

var sessionKeys = [][]byte{
	[]byte(storage.KeyAccessToken),
	[]byte(storage.KeyRefreshToken),
	[]byte(storage.KeyUserID),
	[]byte(storage.KeyExpiresAt),
}

// SaveSession stores all session fields in a single transaction
func (s *Storage) SaveSession(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}

	return s.update(bucketSession, func(b *bbolt.Bucket) error {
		values := map[string][]byte{
			storage.KeyAccessToken:  []byte(session.AccessToken),
			storage.KeyRefreshToken: []byte(session.RefreshToken),
			storage.KeyUserID:       []byte(session.UserID),
			storage.KeyExpiresAt:    encodeInt64(session.ExpiresAt),
		}
		for k, v := range values {
			if err := b.Put([]byte(k), v); err != nil {
				return fmt.Errorf("failed to save %s: %w", k, err)
			}
		}
		return nil
	})
}

// GetSession retrieves the stored session
func (s *Storage) GetSession(ctx context.Context) (*storage.Session, error) {
	var session *storage.Session

	err := s.view(bucketSession, func(b *bbolt.Bucket) error {
		accessToken := b.Get([]byte(storage.KeyAccessToken))
		if accessToken == nil {
			return storage.ErrSessionNotFound
		}

		// Значения из bbolt валидны только внутри транзакции, поэтому копируем
		session = &storage.Session{
			AccessToken:  string(accessToken),
			RefreshToken: string(b.Get([]byte(storage.KeyRefreshToken))),
			UserID:       string(b.Get([]byte(storage.KeyUserID))),
			ExpiresAt:    decodeInt64(b.Get([]byte(storage.KeyExpiresAt))),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// SetAccessToken overwrites access token and expiry, keeping other fields
func (s *Storage) SetAccessToken(ctx context.Context, accessToken string, expiresAt int64) error {
	return s.update(bucketSession, func(b *bbolt.Bucket) error {
		if b.Get([]byte(storage.KeyAccessToken)) == nil {
			return storage.ErrSessionNotFound
		}
		if err := b.Put([]byte(storage.KeyAccessToken), []byte(accessToken)); err != nil {
			return fmt.Errorf("failed to save access token: %w", err)
		}
		if err := b.Put([]byte(storage.KeyExpiresAt), encodeInt64(expiresAt)); err != nil {
			return fmt.Errorf("failed to save expiry: %w", err)
		}
		return nil
	})
}

// ClearSession removes all session keys (logout)
func (s *Storage) ClearSession(ctx context.Context) error {
	return s.update(bucketSession, func(b *bbolt.Bucket) error {
		for _, k := range sessionKeys {
			if err := b.Delete(k); err != nil {
				return fmt.Errorf("failed to delete %s: %w", k, err)
			}
		}
		return nil
	})
}

func encodeInt64(v int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(v))
	return buf
}

func decodeInt64(b []byte) int64 {
	if len(b) != 8 {
		return 0
	}
	return int64(binary.BigEndian.Uint64(b))
}
