package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/iudanet/matrimony-client/internal/client/auth"
	"github.com/iudanet/matrimony-client/internal/client/storage"
	"github.com/iudanet/matrimony-client/internal/validation"
	"github.com/iudanet/matrimony-client/pkg/api"
)

// Login authenticates the user and commits a new Session on success.
// A success=false envelope is returned as-is and leaves the store untouched.
func (c *Client) Login(ctx context.Context, email, password string) (*api.Response[api.LoginResult], error) {
	if err := validation.ValidateCredentials(email, password); err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}

	resp, err := Do[api.LoginResult](ctx, c, "/auth/login", RequestOptions{
		Method: http.MethodPost,
		Body:   api.LoginRequest{Email: email, Password: password},
	})
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}

	if !resp.Success {
		return resp, nil
	}

	// Сессия фиксируется целиком или не фиксируется вовсе
	if resp.Data == nil || resp.Data.AccessToken == "" || resp.Data.User.ID == "" {
		return nil, ErrIncompleteSession
	}

	session := &storage.Session{
		AccessToken:  resp.Data.AccessToken,
		RefreshToken: resp.Data.RefreshToken,
		UserID:       resp.Data.User.ID,
		ExpiresAt:    auth.ExpiresAt(c.now(), resp.Data.AccessToken, resp.Data.ExpiresIn),
	}
	if err := c.store.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	if c.cachePolicy.InvalidateOnLogin {
		if err := c.store.ClearProfile(ctx); err != nil {
			c.logger.Warn("failed to invalidate cached profile on login", "error", err)
		}
	}

	c.logger.Info("Login successful", "user_id", session.UserID)

	return resp, nil
}

// Logout clears the local Session and CachedProfile first and only then
// notifies the server. Local state stays cleared whatever the server
// answers; the server's response or error is still returned.
func (c *Client) Logout(ctx context.Context) (*api.Response[api.Empty], error) {
	// 1. Запоминаем токен: после очистки хранилища Do его уже не найдет
	var headers map[string]string
	if session, err := c.store.GetSession(ctx); err == nil {
		headers = map[string]string{"Authorization": "Bearer " + session.AccessToken}
	} else if !errors.Is(err, storage.ErrSessionNotFound) {
		c.logger.Debug("no readable session during logout", "error", err)
	}

	// 2. Всегда удаляем локальные данные, даже если сервер недоступен
	clearErr := errors.Join(c.store.ClearSession(ctx), c.store.ClearProfile(ctx))
	if clearErr != nil {
		clearErr = fmt.Errorf("failed to clear local session: %w", clearErr)
		c.logger.Error("logout: local state not fully cleared", "error", clearErr)
	}

	// 3. Уведомляем сервер
	resp, err := Do[api.Empty](ctx, c, "/auth/logout", RequestOptions{
		Method:  http.MethodPost,
		Headers: headers,
	})
	if err != nil {
		c.logger.Warn("failed to logout on server", "error", err)
		return nil, errors.Join(fmt.Errorf("logout request failed: %w", err), clearErr)
	}

	return resp, clearErr
}

// RefreshToken exchanges the stored refresh token for a new access token.
// Only the access token (and its expiry) is overwritten. The request that
// triggered the refresh is not retried.
func (c *Client) RefreshToken(ctx context.Context) (*api.Response[api.RefreshResult], error) {
	session, err := c.store.GetSession(ctx)
	switch {
	case errors.Is(err, storage.ErrSessionNotFound):
		return nil, ErrNoRefreshToken
	case err != nil:
		return nil, fmt.Errorf("failed to read session: %w", err)
	case session.RefreshToken == "":
		return nil, ErrNoRefreshToken
	}

	resp, err := Do[api.RefreshResult](ctx, c, "/auth/refresh", RequestOptions{
		Method: http.MethodPost,
		Body:   api.RefreshRequest{RefreshToken: session.RefreshToken},
	})
	if err != nil {
		return nil, fmt.Errorf("refresh request failed: %w", err)
	}

	if !resp.Success {
		return resp, nil
	}
	if resp.Data == nil || resp.Data.AccessToken == "" {
		return nil, fmt.Errorf("%w: refresh response has no access token", ErrInvalidResponse)
	}

	expiresAt := auth.ExpiresAt(c.now(), resp.Data.AccessToken, resp.Data.ExpiresIn)
	if err := c.store.SetAccessToken(ctx, resp.Data.AccessToken, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to save access token: %w", err)
	}

	c.logger.Debug("Access token refreshed", "user_id", session.UserID)

	return resp, nil
}

// Session returns the stored session or storage.ErrSessionNotFound
func (c *Client) Session(ctx context.Context) (*storage.Session, error) {
	return c.store.GetSession(ctx)
}

// IsAuthenticated проверяет наличие сессии и срок действия access token
func (c *Client) IsAuthenticated(ctx context.Context) (bool, error) {
	session, err := c.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	return !session.Expired(c.now()), nil
}
