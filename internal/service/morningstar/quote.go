package morningstar

import (
	"context"
	"fmt"
	"net/url"

	"FundScope/internal/domain/models"
	xhttp "FundScope/pkg/http"
	"FundScope/pkg/util"
)

// QuoteStrategy pulls the fund quick-take details, the last fallback.
// It usually yields only a short recent NAV history but is the most
// reliably available of the three endpoints.
type QuoteStrategy struct {
	client *Client
}

func NewQuoteStrategy(client *Client) *QuoteStrategy {
	return &QuoteStrategy{client: client}
}

func (s *QuoteStrategy) Name() string { return "quote" }

type quoteResponse struct {
	Fund struct {
		NAVHistory []struct {
			D string    `json:"d"`
			V flexValue `json:"v"`
		} `json:"navHistory"`
	} `json:"fund"`
}

func (s *QuoteStrategy) Fetch(ctx context.Context, secID string, _ int) ([]models.Observation, error) {
	q := url.Values{}
	q.Set("viewId", "FundQuickTake")
	q.Set("currencyId", s.client.cfg.Currency)
	q.Set("idtype", "msid")

	var resp quoteResponse
	err := s.client.getJSON(ctx, &xhttp.RequestOptions{
		URL:         s.client.cfg.QuoteURL + "/" + url.PathEscape(secID),
		QueryParams: q,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("quote fetch: %w", err)
	}

	rows := resp.Fund.NAVHistory
	obs := make([]models.Observation, 0, len(rows))
	for _, r := range rows {
		if !r.V.set || r.D == "" {
			continue
		}
		obs = append(obs, models.Observation{
			Date: util.TruncateDate(r.D),
			NAV:  r.V.v,
		})
	}
	return obs, nil
}
