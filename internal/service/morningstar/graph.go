package morningstar

import (
	"context"
	"fmt"
	"net/url"

	"FundScope/internal/domain/models"
	xhttp "FundScope/pkg/http"
	"FundScope/pkg/util"
)

// GraphStrategy pulls the historical-price graph series, the second
// fallback. Rows come back as loosely typed [date, value] tuples.
type GraphStrategy struct {
	client *Client
}

func NewGraphStrategy(client *Client) *GraphStrategy {
	return &GraphStrategy{client: client}
}

func (s *GraphStrategy) Name() string { return "graph" }

type graphResponse struct {
	D [][]interface{} `json:"d"`
}

func (s *GraphStrategy) Fetch(ctx context.Context, secID string, lookbackDays int) ([]models.Observation, error) {
	start, end := s.client.window(lookbackDays)

	q := url.Values{}
	q.Set("id", secID)
	q.Set("currencyId", s.client.cfg.Currency)
	q.Set("idtype", "msid")
	q.Set("frequency", "daily")
	q.Set("startDate", start)
	q.Set("endDate", end)
	q.Set("outputType", "COMPACTJSON")

	var resp graphResponse
	err := s.client.getJSON(ctx, &xhttp.RequestOptions{
		URL:         s.client.cfg.GraphURL,
		QueryParams: q,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("graph fetch: %w", err)
	}

	obs := make([]models.Observation, 0, len(resp.D))
	for _, row := range resp.D {
		if len(row) < 2 {
			continue
		}
		date, ok := row[0].(string)
		if !ok || date == "" {
			continue
		}
		nav, ok := asFloat(row[1])
		if !ok {
			continue
		}
		obs = append(obs, models.Observation{
			Date: util.TruncateDate(date),
			NAV:  nav,
		})
	}
	return obs, nil
}
