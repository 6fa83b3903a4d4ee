package morningstar

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"FundScope/internal/service/ratelimit"
	xhttp "FundScope/pkg/http"
	"FundScope/pkg/util"
)

// Config holds provider endpoints and pacing.
type Config struct {
	TimeseriesURL  string
	GraphURL       string
	QuoteURL       string
	Currency       string
	RequestTimeout time.Duration
	RatePerSec     float64
	Burst          float64
}

// Client is the shared transport for all Morningstar fetch strategies:
// one HTTP client with a browser-like header set, paced by a token bucket
// so consecutive fund fetches stay polite to the provider.
type Client struct {
	cfg     Config
	http    *xhttp.Client
	limiter *ratelimit.Limiter
}

// NewClient creates the shared Morningstar transport.
func NewClient(cfg Config) *Client {
	if cfg.Currency == "" {
		cfg.Currency = "MYR"
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &Client{
		cfg: cfg,
		http: xhttp.NewClient(
			xhttp.WithTimeout(cfg.RequestTimeout),
			xhttp.WithDefaultHeaders(browserHeaders()),
		),
		limiter: ratelimit.New(),
	}
}

// The provider rejects unadorned clients, so requests carry a browser-like
// header set.
func browserHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		"Accept":          "application/json, text/plain, */*",
		"Accept-Language": "en-US,en;q=0.9",
		"Referer":         "https://www.morningstar.com/",
		"Origin":          "https://www.morningstar.com",
	}
}

// getJSON paces and performs one provider request.
func (c *Client) getJSON(ctx context.Context, opts *xhttp.RequestOptions, dest interface{}) error {
	if err := c.limiter.Wait(ctx, "morningstar", c.cfg.Burst, c.cfg.RatePerSec); err != nil {
		return err
	}
	return c.http.GetJSON(ctx, opts, dest)
}

// window returns the lookback date range ending today.
func (c *Client) window(lookbackDays int) (start, end string) {
	now := time.Now()
	return util.FormatDate(now.AddDate(0, 0, -lookbackDays)), util.FormatDate(now)
}

// flexValue decodes a numeric field the provider serves either as a JSON
// number or as a quoted string, depending on endpoint and day.
type flexValue struct {
	set bool
	v   float64
}

func (f *flexValue) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Malformed values are filtered, not fatal.
		return nil
	}
	f.set = true
	f.v = v
	return nil
}

// asFloat extracts a float from a loosely typed JSON cell.
func asFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(x, 64)
		return f, err == nil
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
