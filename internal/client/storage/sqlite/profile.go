package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/iudanet/matrimony-client/internal/client/storage"
)

// SaveProfile overwrites the cached profile snapshot
func (s *Storage) SaveProfile(ctx context.Context, profile *storage.CachedProfile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil")
	}

	return s.inTx(ctx, func(tx *sql.Tx) error {
		if err := s.put(ctx, tx, storage.KeyUserProfile, profile.Profile); err != nil {
			return err
		}
		cachedAt := strconv.FormatInt(profile.CachedAt.UnixNano(), 10)
		return s.put(ctx, tx, storage.KeyProfileCachedAt, []byte(cachedAt))
	})
}

// GetProfile returns the cached profile snapshot
func (s *Storage) GetProfile(ctx context.Context) (*storage.CachedProfile, error) {
	profile := &storage.CachedProfile{}

	err := s.inTx(ctx, func(tx *sql.Tx) error {
		data, err := s.get(ctx, tx, storage.KeyUserProfile)
		if err != nil {
			return err
		}
		if data == nil {
			return storage.ErrProfileNotFound
		}
		profile.Profile = data

		cachedAt, err := s.get(ctx, tx, storage.KeyProfileCachedAt)
		if err != nil {
			return err
		}
		profile.CachedAt = time.Unix(0, parseInt64(cachedAt))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ClearProfile drops the cached profile
func (s *Storage) ClearProfile(ctx context.Context) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		return s.delete(ctx, tx, storage.KeyUserProfile, storage.KeyProfileCachedAt)
	})
}
