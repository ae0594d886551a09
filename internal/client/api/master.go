package api

import (
	"context"
	"net/url"

	"github.com/iudanet/matrimony-client/pkg/api"
)

// Справочники не требуют авторизации, но токен все равно прикладывается,
// если он есть.

// GetReligions возвращает справочник религий
func (c *Client) GetReligions(ctx context.Context) (*api.Response[[]api.MasterItem], error) {
	return Do[[]api.MasterItem](ctx, c, "/master/religions", RequestOptions{})
}

// GetCastes возвращает касты; пустой religionID - все касты
func (c *Client) GetCastes(ctx context.Context, religionID string) (*api.Response[[]api.Caste], error) {
	q := url.Values{}
	setString(q, "religionId", religionID)
	return Do[[]api.Caste](ctx, c, "/master/castes", RequestOptions{Query: q})
}

// GetEducationLevels возвращает уровни образования
func (c *Client) GetEducationLevels(ctx context.Context) (*api.Response[[]api.MasterItem], error) {
	return Do[[]api.MasterItem](ctx, c, "/master/education", RequestOptions{})
}

// GetOccupations возвращает справочник профессий
func (c *Client) GetOccupations(ctx context.Context) (*api.Response[[]api.MasterItem], error) {
	return Do[[]api.MasterItem](ctx, c, "/master/occupations", RequestOptions{})
}

// GetIncomeRanges возвращает диапазоны дохода
func (c *Client) GetIncomeRanges(ctx context.Context) (*api.Response[[]api.IncomeRange], error) {
	return Do[[]api.IncomeRange](ctx, c, "/master/income-ranges", RequestOptions{})
}
