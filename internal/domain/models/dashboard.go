package models

import "time"

// Flow signal values for the relative capital-flow proxy.
const (
	FlowInflow  = "INFLOW"
	FlowOutflow = "OUTFLOW"
	FlowNeutral = "NEUTRAL"
	FlowUnknown = "N/A"
)

// FlowSignal is one fund's position relative to the category median
// 1-month change.
type FlowSignal struct {
	Signal     string  `json:"signal"`
	VsCategory float64 `json:"vs_category"`
	Note       string  `json:"note"`
}

// MomentumRank is one fund's composite momentum score and its dense
// 1-based rank within the run.
type MomentumRank struct {
	Rank  int     `json:"rank"`
	Score float64 `json:"score"`
}

// FundRecord joins descriptor, indicators and cross-sectional results for
// one fund. Rank is nil when the fund was not scored this run.
type FundRecord struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	SecID string `json:"secid"`

	NAV  float64 `json:"nav"`
	Date string  `json:"date"`

	Pct1D *float64 `json:"pct_1d"`
	Pct1W *float64 `json:"pct_1w"`
	Pct1M *float64 `json:"pct_1m"`
	Pct3M *float64 `json:"pct_3m"`
	Pct1Y *float64 `json:"pct_1y"`

	RSI14     *float64 `json:"rsi_14"`
	RSISignal string   `json:"rsi_signal"`

	MA5   *float64 `json:"ma5"`
	MA20  *float64 `json:"ma20"`
	MA50  *float64 `json:"ma50"`
	Trend string   `json:"trend"`

	Volatility *float64 `json:"volatility"`

	FlowSignal     string   `json:"flow_signal"`
	FlowVsCategory *float64 `json:"flow_vs_category"`
	FlowNote       string   `json:"flow_note"`

	MomentumRank  *int     `json:"momentum_rank"`
	MomentumScore *float64 `json:"momentum_score"`

	TopHoldings []string `json:"top_holdings"`
}

// Dashboard is the full output of one run. Built fresh each run and never
// mutated after construction.
type Dashboard struct {
	LastUpdated time.Time    `json:"last_updated"`
	TotalFunds  int          `json:"total_funds"`
	Funds       []FundRecord `json:"funds"`

	TopGainers1D  []FundRecord `json:"top_gainers_1d"`
	TopLosers1D   []FundRecord `json:"top_losers_1d"`
	TopMomentum   []FundRecord `json:"top_momentum"`
	OversoldFunds []FundRecord `json:"oversold_funds"`
	InflowSignals []FundRecord `json:"inflow_signals"`
}
