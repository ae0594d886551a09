package api

import (
	"context"
	"net/http"

	"github.com/iudanet/matrimony-client/pkg/api"
)

// GetSettings возвращает настройки пользователя
func (c *Client) GetSettings(ctx context.Context) (*api.Response[api.Settings], error) {
	return Do[api.Settings](ctx, c, "/users/settings", RequestOptions{})
}

// UpdateSettings сохраняет настройки пользователя целиком
func (c *Client) UpdateSettings(ctx context.Context, s api.Settings) (*api.Response[api.Settings], error) {
	return Do[api.Settings](ctx, c, "/users/settings", RequestOptions{
		Method: http.MethodPut,
		Body:   s,
	})
}
