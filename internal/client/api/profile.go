package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/matrimony-client/internal/client/storage"
	"github.com/iudanet/matrimony-client/pkg/api"
)

const ownProfilePath = "/users/me/profile"

// GetUserProfile returns the own profile, cache first. A cached snapshot
// that is fresh under the CachePolicy is returned without a network call.
// Otherwise the profile is fetched and, on success, committed to the cache.
// Concurrent misses are not coalesced: each one fetches and writes.
func (c *Client) GetUserProfile(ctx context.Context) (*api.Response[api.UserProfile], error) {
	if profile, ok := c.cachedProfile(ctx); ok {
		return api.OK(profile), nil
	}

	resp, err := Do[api.UserProfile](ctx, c, ownProfilePath, RequestOptions{Method: http.MethodGet})
	if err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}

	if resp.Success && resp.Data != nil {
		c.cacheProfile(ctx, resp.Data)
	}

	return resp, nil
}

// UpdateUserProfile sends a partial update. On success the cache is
// overwritten with the profile the server returned; the update is never
// merged into the old snapshot locally.
func (c *Client) UpdateUserProfile(ctx context.Context, update api.ProfileUpdate) (*api.Response[api.UserProfile], error) {
	resp, err := Do[api.UserProfile](ctx, c, ownProfilePath, RequestOptions{
		Method: http.MethodPut,
		Body:   update,
	})
	if err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}

	if resp.Success && resp.Data != nil {
		c.cacheProfile(ctx, resp.Data)
	}

	return resp, nil
}

// GetProfileByID возвращает анкету другого пользователя (не кэшируется)
func (c *Client) GetProfileByID(ctx context.Context, userID string) (*api.Response[api.UserProfile], error) {
	path, err := idPath("/users/profile/%s", userID)
	if err != nil {
		return nil, err
	}
	return Do[api.UserProfile](ctx, c, path, RequestOptions{})
}

// GetSameCityUsers возвращает анкеты из города текущего пользователя
func (c *Client) GetSameCityUsers(ctx context.Context, p api.Pagination) (*api.Response[api.UserList], error) {
	return Do[api.UserList](ctx, c, "/users/me/same-city", RequestOptions{Query: paginationQuery(p)})
}

// cachedProfile возвращает профиль из кэша, если он есть и свежий
func (c *Client) cachedProfile(ctx context.Context) (*api.UserProfile, bool) {
	cached, err := c.store.GetProfile(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrProfileNotFound) {
			c.logger.Warn("failed to read cached profile", "error", err)
		}
		return nil, false
	}

	if !c.cachePolicy.Fresh(cached.CachedAt, c.now()) {
		c.logger.Debug("cached profile expired", "cached_at", cached.CachedAt)
		return nil, false
	}

	var profile api.UserProfile
	if err := json.Unmarshal(cached.Profile, &profile); err != nil {
		c.logger.Warn("discarding unreadable cached profile", "error", err)
		return nil, false
	}

	return &profile, true
}

// cacheProfile сохраняет снапшот профиля. Ошибка записи не прерывает
// запрос: данные от сервера уже получены.
func (c *Client) cacheProfile(ctx context.Context, profile *api.UserProfile) {
	data, err := json.Marshal(profile)
	if err != nil {
		c.logger.Warn("failed to marshal profile for cache", "error", err)
		return
	}

	err = c.store.SaveProfile(ctx, &storage.CachedProfile{
		Profile:  data,
		CachedAt: c.now(),
	})
	if err != nil {
		c.logger.Warn("failed to cache profile", "error", err)
	}
}
