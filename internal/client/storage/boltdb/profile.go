package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/matrimony-client/internal/client/storage"
)

// SaveProfile overwrites the cached profile snapshot
func (s *Storage) SaveProfile(ctx context.Context, profile *storage.CachedProfile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil")
	}

	return s.update(bucketCache, func(b *bbolt.Bucket) error {
		if err := b.Put([]byte(storage.KeyUserProfile), profile.Profile); err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
		cachedAt := encodeInt64(profile.CachedAt.UnixNano())
		if err := b.Put([]byte(storage.KeyProfileCachedAt), cachedAt); err != nil {
			return fmt.Errorf("failed to save profile timestamp: %w", err)
		}
		return nil
	})
}

// GetProfile returns the cached profile snapshot
func (s *Storage) GetProfile(ctx context.Context) (*storage.CachedProfile, error) {
	var profile *storage.CachedProfile

	err := s.view(bucketCache, func(b *bbolt.Bucket) error {
		data := b.Get([]byte(storage.KeyUserProfile))
		if data == nil {
			return storage.ErrProfileNotFound
		}

		profile = &storage.CachedProfile{
			Profile:  append([]byte(nil), data...),
			CachedAt: time.Unix(0, decodeInt64(b.Get([]byte(storage.KeyProfileCachedAt)))),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ClearProfile drops the cached profile
func (s *Storage) ClearProfile(ctx context.Context) error {
	return s.update(bucketCache, func(b *bbolt.Bucket) error {
		if err := b.Delete([]byte(storage.KeyUserProfile)); err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		if err := b.Delete([]byte(storage.KeyProfileCachedAt)); err != nil {
			return fmt.Errorf("failed to delete profile timestamp: %w", err)
		}
		return nil
	})
}
