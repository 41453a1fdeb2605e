package firefly

import (
	"context"
	"net/http"
)

const categoriesEndpoint = "/api/v1/categories"

// GetCategories lists every category with its spent and earned totals taken
// from the first per-currency breakdown entry; categories without activity
// report null totals.
func (c *Client) GetCategories(ctx context.Context) ([]CategoryInfo, error) {
	var resp categoriesResponse
	if err := c.do(ctx, http.MethodGet, categoriesEndpoint, nil, nil, &resp); err != nil {
		return nil, err
	}

	infos := make([]CategoryInfo, 0, len(resp.Data))
	for _, cat := range resp.Data {
		infos = append(infos, CategoryInfo{
			ID:     cat.ID,
			Name:   cat.Attributes.Name,
			Spent:  firstSum(cat.Attributes.Spent),
			Earned: firstSum(cat.Attributes.Earned),
		})
	}
	return infos, nil
}

func firstSum(totals []CurrencyTotal) *string {
	if len(totals) == 0 || totals[0].Sum == "" {
		return nil
	}
	return &totals[0].Sum
}
