package api

import (
	"context"
	"net/http"

	"github.com/iudanet/matrimony-client/pkg/api"
)

// GetPotentialMatches возвращает кандидатов с учетом фильтров
func (c *Client) GetPotentialMatches(ctx context.Context, f api.MatchFilters) (*api.Response[api.MatchList], error) {
	return Do[api.MatchList](ctx, c, "/matches/potential", RequestOptions{Query: matchQuery(f)})
}

// GetMatches возвращает подтвержденные (взаимные) совпадения
func (c *Client) GetMatches(ctx context.Context, p api.Pagination) (*api.Response[api.MatchList], error) {
	return Do[api.MatchList](ctx, c, "/matches", RequestOptions{Query: paginationQuery(p)})
}

// LikeProfile отправляет свайп "нравится"
func (c *Client) LikeProfile(ctx context.Context, userID string) (*api.Response[api.SwipeResult], error) {
	return c.swipe(ctx, "/matches/%s/like", userID)
}

// DislikeProfile отправляет свайп "не нравится"
func (c *Client) DislikeProfile(ctx context.Context, userID string) (*api.Response[api.SwipeResult], error) {
	return c.swipe(ctx, "/matches/%s/dislike", userID)
}

func (c *Client) swipe(ctx context.Context, format, userID string) (*api.Response[api.SwipeResult], error) {
	path, err := idPath(format, userID)
	if err != nil {
		return nil, err
	}
	return Do[api.SwipeResult](ctx, c, path, RequestOptions{Method: http.MethodPost})
}
