package models

// RSI classification bands. Boundaries are inclusive on the named side;
// 45 < rsi < 55 is NEUTRAL.
const (
	RSIOverbought = "OVERBOUGHT"
	RSIOversold   = "OVERSOLD"
	RSIBullish    = "BULLISH"
	RSIBearish    = "BEARISH"
	RSINeutral    = "NEUTRAL"
	RSIUnknown    = "N/A"
)

// Trend classification values.
const (
	TrendUp       = "UPTREND"
	TrendDown     = "DOWNTREND"
	TrendSideways = "SIDEWAYS"
	TrendUnknown  = "N/A"
)

// IndicatorSnapshot holds the derived metrics for one fund for one run.
// It is recomputed every run and never persisted standalone across runs
// (the artifact file is a dump of the latest run only).
//
// A nil pointer means the underlying series is too short for that metric's
// lookback window: "not yet computable", not an error.
type IndicatorSnapshot struct {
	FundCode string `json:"fund_code"`
	FundName string `json:"fund_name"`
	SecID    string `json:"secid"`

	AsOfDate  string  `json:"date"`
	LatestNAV float64 `json:"nav"`

	RSI14     *float64 `json:"rsi_14"`
	RSISignal string   `json:"rsi_signal"`

	MA5   *float64 `json:"ma5"`
	MA20  *float64 `json:"ma20"`
	MA50  *float64 `json:"ma50"`
	Trend string   `json:"trend"`

	Pct1D *float64 `json:"pct_1d"`
	Pct1W *float64 `json:"pct_1w"`
	Pct1M *float64 `json:"pct_1m"`
	Pct3M *float64 `json:"pct_3m"`
	Pct1Y *float64 `json:"pct_1y"`

	Volatility20D *float64 `json:"volatility_20d"`

	DataPoints int `json:"data_points"`
}
