package firefly

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// GetMonthlySummary returns the ledger's basic summary for the current
// calendar month, first of the month through today in UTC. The payload is
// passed through without reshaping.
func (c *Client) GetMonthlySummary(ctx context.Context) (Summary, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	end := now.Format("2006-01-02")

	endpoint := fmt.Sprintf("/api/v1/summary/basic?start=%s&end=%s", start, end)
	var summary Summary
	if err := c.do(ctx, http.MethodGet, endpoint, nil, nil, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}
