package morningstar

import (
	"context"
	"fmt"
	"net/url"

	"FundScope/internal/domain/models"
	xhttp "FundScope/pkg/http"
	"FundScope/pkg/util"
)

// TimeseriesStrategy pulls daily prices from the timeseries_price endpoint,
// the richest of the three sources (full lookback window, COMPACTJSON).
type TimeseriesStrategy struct {
	client *Client
}

func NewTimeseriesStrategy(client *Client) *TimeseriesStrategy {
	return &TimeseriesStrategy{client: client}
}

func (s *TimeseriesStrategy) Name() string { return "timeseries" }

type timeseriesResponse []struct {
	TimeSeries struct {
		Security []struct {
			HistoryDetail []struct {
				EndDate string    `json:"EndDate"`
				Value   flexValue `json:"Value"`
			} `json:"HistoryDetail"`
		} `json:"Security"`
	} `json:"TimeSeries"`
}

func (s *TimeseriesStrategy) Fetch(ctx context.Context, secID string, lookbackDays int) ([]models.Observation, error) {
	start, end := s.client.window(lookbackDays)
	cur := s.client.cfg.Currency

	q := url.Values{}
	q.Set("id", fmt.Sprintf("%s]2]0]%s", secID, cur))
	q.Set("currencyId", cur)
	q.Set("idtype", "Morningstar")
	q.Set("frequency", "daily")
	q.Set("startDate", start)
	q.Set("endDate", end)
	q.Set("outputType", "COMPACTJSON")

	var resp timeseriesResponse
	err := s.client.getJSON(ctx, &xhttp.RequestOptions{
		URL:         s.client.cfg.TimeseriesURL,
		QueryParams: q,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("timeseries fetch: %w", err)
	}

	if len(resp) == 0 || len(resp[0].TimeSeries.Security) == 0 {
		return nil, nil
	}

	history := resp[0].TimeSeries.Security[0].HistoryDetail
	obs := make([]models.Observation, 0, len(history))
	for _, h := range history {
		if !h.Value.set || h.Value.v == 0 || h.EndDate == "" {
			continue
		}
		obs = append(obs, models.Observation{
			Date: util.TruncateDate(h.EndDate),
			NAV:  h.Value.v,
		})
	}
	return obs, nil
}
