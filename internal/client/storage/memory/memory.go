// Package memory provides a thread-safe in-memory implementation of storage.SessionStore.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/iudanet/matrimony-client/internal/client/storage"
)

// Store is a thread-safe in-memory SessionStore.
// Suitable for testing and ephemeral CLI runs.
type Store struct {
	session *storage.Session
	profile *storage.CachedProfile
	mu      sync.RWMutex
	closed  bool
}

var _ storage.SessionStore = (*Store)(nil)

// New creates a new empty in-memory Store.
func New() *Store {
	return &Store{}
}

func cloneSession(s *storage.Session) *storage.Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func cloneProfile(p *storage.CachedProfile) *storage.CachedProfile {
	if p == nil {
		return nil
	}
	return &storage.CachedProfile{
		CachedAt: p.CachedAt,
		Profile:  append([]byte(nil), p.Profile...),
	}
}

// GetSession returns a copy of the stored session.
func (s *Store) GetSession(ctx context.Context) (*storage.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	if s.session == nil {
		return nil, storage.ErrSessionNotFound
	}
	return cloneSession(s.session), nil
}

// SaveSession replaces the session with a copy of session.
func (s *Store) SaveSession(ctx context.Context, session *storage.Session) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	s.session = cloneSession(session)
	return nil
}

// SetAccessToken updates the access token and expiry of the existing session.
func (s *Store) SetAccessToken(ctx context.Context, accessToken string, expiresAt int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	if s.session == nil {
		return storage.ErrSessionNotFound
	}
	s.session.AccessToken = accessToken
	s.session.ExpiresAt = expiresAt
	return nil
}

// ClearSession removes the session. Clearing an empty store is not an error.
func (s *Store) ClearSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	s.session = nil
	return nil
}

// GetProfile returns a copy of the cached profile.
func (s *Store) GetProfile(ctx context.Context) (*storage.CachedProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, storage.ErrStorageClosed
	}
	if s.profile == nil {
		return nil, storage.ErrProfileNotFound
	}
	return cloneProfile(s.profile), nil
}

// SaveProfile overwrites the cached profile.
func (s *Store) SaveProfile(ctx context.Context, profile *storage.CachedProfile) error {
	if profile == nil {
		return fmt.Errorf("profile is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	s.profile = cloneProfile(profile)
	return nil
}

// ClearProfile drops the cached profile.
func (s *Store) ClearProfile(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}
	s.profile = nil
	return nil
}

// Close marks the store closed; subsequent calls return ErrStorageClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
