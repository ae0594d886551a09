package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/iudanet/matrimony-client/internal/client/storage"
)

// SaveSession commits all session keys in one transaction
func (s *Storage) SaveSession(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		values := []struct {
			key   string
			value string
		}{
			{storage.KeyAccessToken, session.AccessToken},
			{storage.KeyRefreshToken, session.RefreshToken},
			{storage.KeyUserID, session.UserID},
			{storage.KeyExpiresAt, strconv.FormatInt(session.ExpiresAt, 10)},
		}
		for _, v := range values {
			if err := s.put(ctx, tx, v.key, []byte(v.value)); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetSession retrieves the stored session
func (s *Storage) GetSession(ctx context.Context) (*storage.Session, error) {
	session := &storage.Session{}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		accessToken, err := s.get(ctx, tx, storage.KeyAccessToken)
		if err != nil {
			return err
		}
		if accessToken == nil {
			return storage.ErrSessionNotFound
		}
		session.AccessToken = string(accessToken)

		refreshToken, err := s.get(ctx, tx, storage.KeyRefreshToken)
		if err != nil {
			return err
		}
		session.RefreshToken = string(refreshToken)

		userID, err := s.get(ctx, tx, storage.KeyUserID)
		if err != nil {
			return err
		}
		session.UserID = string(userID)

		expiresAt, err := s.get(ctx, tx, storage.KeyExpiresAt)
		if err != nil {
			return err
		}
		session.ExpiresAt = parseInt64(expiresAt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// SetAccessToken overwrites access token and expiry
func (s *Storage) SetAccessToken(ctx context.Context, accessToken string, expiresAt int64) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := s.get(ctx, tx, storage.KeyAccessToken)
		if err != nil {
			return err
		}
		if current == nil {
			return storage.ErrSessionNotFound
		}
		if err := s.put(ctx, tx, storage.KeyAccessToken, []byte(accessToken)); err != nil {
			return err
		}
		return s.put(ctx, tx, storage.KeyExpiresAt, []byte(strconv.FormatInt(expiresAt, 10)))
	})
}

// ClearSession removes all session keys
func (s *Storage) ClearSession(ctx context.Context) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return s.delete(ctx, tx,
			storage.KeyAccessToken,
			storage.KeyRefreshToken,
			storage.KeyUserID,
			storage.KeyExpiresAt,
		)
	})
}

func parseInt64(b []byte) int64 {
	if len(b) == 0 {
		return 0
	}
	v, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return v
}
