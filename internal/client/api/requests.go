package api

import (
	"context"
	"net/http"

	"github.com/iudanet/matrimony-client/pkg/api"
)

// SendConnectionRequest отправляет запрос на знакомство пользователю
func (c *Client) SendConnectionRequest(ctx context.Context, userID, message string) (*api.Response[api.ConnectionRequest], error) {
	path, err := idPath("/requests/send/%s", userID)
	if err != nil {
		return nil, err
	}
	return Do[api.ConnectionRequest](ctx, c, path, RequestOptions{
		Method: http.MethodPost,
		Body:   api.SendRequestBody{Message: message},
	})
}

// GetSentRequests возвращает отправленные запросы
func (c *Client) GetSentRequests(ctx context.Context, f api.RequestFilters) (*api.Response[api.RequestList], error) {
	return Do[api.RequestList](ctx, c, "/requests/sent", RequestOptions{Query: requestQuery(f)})
}

// GetReceivedRequests возвращает входящие запросы
func (c *Client) GetReceivedRequests(ctx context.Context, f api.RequestFilters) (*api.Response[api.RequestList], error) {
	return Do[api.RequestList](ctx, c, "/requests/received", RequestOptions{Query: requestQuery(f)})
}

// AcceptRequest принимает входящий запрос
func (c *Client) AcceptRequest(ctx context.Context, requestID string) (*api.Response[api.ConnectionRequest], error) {
	return c.answerRequest(ctx, "/requests/%s/accept", requestID)
}

// DeclineRequest отклоняет входящий запрос
func (c *Client) DeclineRequest(ctx context.Context, requestID string) (*api.Response[api.ConnectionRequest], error) {
	return c.answerRequest(ctx, "/requests/%s/decline", requestID)
}

func (c *Client) answerRequest(ctx context.Context, format, requestID string) (*api.Response[api.ConnectionRequest], error) {
	path, err := idPath(format, requestID)
	if err != nil {
		return nil, err
	}
	return Do[api.ConnectionRequest](ctx, c, path, RequestOptions{Method: http.MethodPost})
}
