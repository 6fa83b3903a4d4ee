package analytics

import (
	"math"

	"FundScope/internal/domain/models"
	"FundScope/pkg/util"
)

// Lookback windows, in observations, for the percentage-change metrics.
const (
	Days1W = 5
	Days1M = 21
	Days3M = 63
	Days1Y = 252
)

// minObservations is the floor below which no indicator is meaningful.
const minObservations = 5

// Compute derives the full indicator snapshot for one fund from its NAV
// series (date-ascending). Returns nil when the series holds fewer than 5
// observations. Metrics whose lookback window exceeds the series length are
// left nil, which downstream consumers treat as "not yet computable".
func Compute(fund models.Fund, series models.Series) *models.IndicatorSnapshot {
	if len(series) < minObservations {
		return nil
	}

	prices := series.Values()
	latest, _ := series.Latest()

	r := RSI(prices, 14)
	ma20 := SMA(prices, 20)
	ma50 := SMA(prices, 50)

	return &models.IndicatorSnapshot{
		FundCode: fund.Code,
		FundName: fund.Name,
		SecID:    fund.SecID,

		AsOfDate:  latest.Date,
		LatestNAV: latest.NAV,

		RSI14:     r,
		RSISignal: ClassifyRSI(r),

		MA5:   SMA(prices, 5),
		MA20:  ma20,
		MA50:  ma50,
		Trend: ClassifyTrend(latest.NAV, ma20, ma50),

		Pct1D: PctChange(prices, 1),
		Pct1W: PctChange(prices, Days1W),
		Pct1M: PctChange(prices, Days1M),
		Pct3M: PctChange(prices, Days3M),
		Pct1Y: PctChange(prices, Days1Y),

		Volatility20D: Volatility(prices, 20),

		DataPoints: len(prices),
	}
}

// RSI computes the Wilder-smoothed relative strength index over prices.
// Gain/loss averages are seeded with the simple mean of the first period
// deltas, then smoothed with decay (period-1)/period. Nil with fewer than
// period+1 prices; exactly 100 when the average loss is zero.
func RSI(prices []float64, period int) *float64 {
	if len(prices) < period+1 {
		return nil
	}

	gains := make([]float64, 0, len(prices)-1)
	losses := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		d := prices[i] - prices[i-1]
		gains = append(gains, math.Max(d, 0))
		losses = append(losses, math.Max(-d, 0))
	}

	var avgGain, avgLoss float64
	for i := 0; i < period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	for i := period; i < len(gains); i++ {
		avgGain = (avgGain*float64(period-1) + gains[i]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[i]) / float64(period)
	}

	if avgLoss == 0 {
		return util.Ptr(100.0)
	}
	return util.Ptr(util.Round(100-100/(1+avgGain/avgLoss), 2))
}

// SMA computes the simple moving average of the trailing period prices.
// Nil with fewer than period prices.
func SMA(prices []float64, period int) *float64 {
	if len(prices) < period {
		return nil
	}
	var sum float64
	for _, p := range prices[len(prices)-period:] {
		sum += p
	}
	return util.Ptr(util.Round(sum/float64(period), 4))
}

// PctChange computes the percentage change over the trailing days steps.
// Nil with fewer than days+1 prices or a zero base value.
func PctChange(prices []float64, days int) *float64 {
	if len(prices) < days+1 {
		return nil
	}
	old := prices[len(prices)-1-days]
	if old == 0 {
		return nil
	}
	return util.Ptr(util.Round((prices[len(prices)-1]-old)/old*100, 2))
}

// Volatility computes the population standard deviation of the trailing
// period daily simple returns, as a percentage. Nil with fewer than
// period+1 prices.
func Volatility(prices []float64, period int) *float64 {
	if len(prices) < period+1 {
		return nil
	}

	rets := make([]float64, 0, period)
	for i := len(prices) - period; i < len(prices); i++ {
		rets = append(rets, (prices[i]-prices[i-1])/prices[i-1])
	}

	var mean float64
	for _, r := range rets {
		mean += r
	}
	mean /= float64(len(rets))

	var variance float64
	for _, r := range rets {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(rets))

	return util.Ptr(util.Round(math.Sqrt(variance)*100, 2))
}

// ClassifyRSI maps an RSI value to its band. Boundaries are inclusive on
// the named side.
func ClassifyRSI(r *float64) string {
	if r == nil {
		return models.RSIUnknown
	}
	v := *r
	switch {
	case v >= 70:
		return models.RSIOverbought
	case v <= 30:
		return models.RSIOversold
	case v >= 55:
		return models.RSIBullish
	case v <= 45:
		return models.RSIBearish
	default:
		return models.RSINeutral
	}
}

// ClassifyTrend compares the latest price against the 20- and 50-day
// moving averages. Unknown when either average is missing or zero.
func ClassifyTrend(price float64, ma20, ma50 *float64) string {
	if ma20 == nil || ma50 == nil || *ma20 == 0 || *ma50 == 0 {
		return models.TrendUnknown
	}
	switch {
	case price > *ma20 && *ma20 > *ma50:
		return models.TrendUp
	case price < *ma20 && *ma20 < *ma50:
		return models.TrendDown
	default:
		return models.TrendSideways
	}
}
