package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundScope/internal/domain/models"
	"FundScope/pkg/util"
)

func seq(start float64, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func seriesFromPrices(prices []float64) models.Series {
	s := make(models.Series, len(prices))
	for i, p := range prices {
		s[i] = models.Observation{Date: dateAt(i), NAV: p}
	}
	return s
}

// dateAt produces strictly increasing ISO dates without calendar math.
func dateAt(i int) string {
	months := i/28 + 1
	days := i%28 + 1
	return "2024-" + twoDigit(months) + "-" + twoDigit(days)
}

func twoDigit(n int) string {
	if n < 10 {
		return "0" + string(rune('0'+n))
	}
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func TestRSI_TooShort(t *testing.T) {
	assert.Nil(t, RSI(seq(100, 1, 14), 14), "14 prices give 13 deltas, not enough")
	assert.NotNil(t, RSI(seq(100, 1, 15), 14))
}

func TestRSI_AllGainsIsExactly100(t *testing.T) {
	// Monotonically non-decreasing with at least one strictly positive
	// delta: average loss is zero, so RSI is pinned at 100.
	prices := seq(100, 0.5, 20)
	r := RSI(prices, 14)
	require.NotNil(t, r)
	assert.Equal(t, 100.0, *r)
}

func TestRSI_ConstantPricesIs100(t *testing.T) {
	// All deltas zero means avg loss zero; the division guard applies.
	prices := seq(100, 0, 20)
	r := RSI(prices, 14)
	require.NotNil(t, r)
	assert.Equal(t, 100.0, *r)
}

func TestRSI_BalancedGainsAndLosses(t *testing.T) {
	// Seven +1 deltas then seven -1 deltas: seeded averages are equal,
	// no smoothing steps remain, RSI = 100 - 100/(1+1) = 50.
	prices := []float64{100, 101, 102, 103, 104, 105, 106, 107, 106, 105, 104, 103, 102, 101, 100}
	require.Len(t, prices, 15)
	r := RSI(prices, 14)
	require.NotNil(t, r)
	assert.Equal(t, 50.0, *r)
}

func TestSMA_Exactness(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}
	ma := SMA(prices, 5)
	require.NotNil(t, ma)
	assert.Equal(t, 3.0, *ma)

	assert.Nil(t, SMA(prices, 6))
}

func TestSMA_UsesTrailingWindow(t *testing.T) {
	prices := []float64{10, 1, 2, 3}
	ma := SMA(prices, 3)
	require.NotNil(t, ma)
	assert.Equal(t, 2.0, *ma)
}

func TestPctChange(t *testing.T) {
	oneDay := PctChange([]float64{100, 110}, 1)
	require.NotNil(t, oneDay)
	assert.Equal(t, 10.0, *oneDay)

	assert.Nil(t, PctChange([]float64{110}, 1), "needs days+1 values")
	assert.Nil(t, PctChange([]float64{0, 110}, 1), "zero base has no defined change")
}

func TestPctChange_Rounding(t *testing.T) {
	got := PctChange([]float64{3, 4}, 1)
	require.NotNil(t, got)
	assert.Equal(t, 33.33, *got)
}

func TestVolatility(t *testing.T) {
	assert.Nil(t, Volatility(seq(100, 0, 20), 20), "needs period+1 values")

	flat := Volatility(seq(100, 0, 21), 20)
	require.NotNil(t, flat)
	assert.Equal(t, 0.0, *flat, "constant prices have zero volatility")

	moving := Volatility(seq(100, 1, 30), 20)
	require.NotNil(t, moving)
	assert.Greater(t, *moving, 0.0)
}

func TestClassifyRSI_Bands(t *testing.T) {
	cases := []struct {
		rsi  *float64
		want string
	}{
		{nil, models.RSIUnknown},
		{util.Ptr(70.0), models.RSIOverbought},
		{util.Ptr(85.0), models.RSIOverbought},
		{util.Ptr(30.0), models.RSIOversold},
		{util.Ptr(12.5), models.RSIOversold},
		{util.Ptr(55.0), models.RSIBullish},
		{util.Ptr(69.99), models.RSIBullish},
		{util.Ptr(45.0), models.RSIBearish},
		{util.Ptr(30.01), models.RSIBearish},
		{util.Ptr(54.99), models.RSINeutral},
		{util.Ptr(45.01), models.RSINeutral},
		{util.Ptr(50.0), models.RSINeutral},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyRSI(c.rsi))
	}
}

func TestClassifyTrend(t *testing.T) {
	assert.Equal(t, models.TrendUnknown, ClassifyTrend(10, nil, util.Ptr(9.0)))
	assert.Equal(t, models.TrendUnknown, ClassifyTrend(10, util.Ptr(9.0), nil))
	assert.Equal(t, models.TrendUp, ClassifyTrend(10, util.Ptr(9.0), util.Ptr(8.0)))
	assert.Equal(t, models.TrendDown, ClassifyTrend(7, util.Ptr(8.0), util.Ptr(9.0)))
	assert.Equal(t, models.TrendSideways, ClassifyTrend(8.5, util.Ptr(9.0), util.Ptr(8.0)))
}

func TestCompute_InsufficientData(t *testing.T) {
	fund := models.Fund{Code: "PGF", Name: "Public Growth Fund", SecID: "0P0000A4GC"}
	assert.Nil(t, Compute(fund, seriesFromPrices(seq(1, 0.1, 4))))
	assert.NotNil(t, Compute(fund, seriesFromPrices(seq(1, 0.1, 5))))
}

func TestCompute_ShortSeriesLeavesLongMetricsAbsent(t *testing.T) {
	fund := models.Fund{Code: "PGF", Name: "Public Growth Fund", SecID: "0P0000A4GC"}
	snap := Compute(fund, seriesFromPrices(seq(100, 1, 10)))
	require.NotNil(t, snap)

	assert.NotNil(t, snap.MA5)
	assert.Nil(t, snap.MA20)
	assert.Nil(t, snap.MA50)
	assert.Nil(t, snap.RSI14, "10 values cannot seed a 14-period RSI")
	assert.Equal(t, models.RSIUnknown, snap.RSISignal)
	assert.Equal(t, models.TrendUnknown, snap.Trend)
	assert.NotNil(t, snap.Pct1D)
	assert.NotNil(t, snap.Pct1W)
	assert.Nil(t, snap.Pct1M)
	assert.Nil(t, snap.Volatility20D)
	assert.Equal(t, 10, snap.DataPoints)
}

func TestCompute_FullSeries(t *testing.T) {
	fund := models.Fund{Code: "PIF", Name: "Public Index Fund", SecID: "0P0000A4GD"}
	series := seriesFromPrices(seq(100, 0.25, 300))
	snap := Compute(fund, series)
	require.NotNil(t, snap)

	assert.Equal(t, "PIF", snap.FundCode)
	assert.Equal(t, series[len(series)-1].Date, snap.AsOfDate)
	assert.Equal(t, series[len(series)-1].NAV, snap.LatestNAV)

	require.NotNil(t, snap.RSI14)
	assert.Equal(t, 100.0, *snap.RSI14)
	assert.Equal(t, models.RSIOverbought, snap.RSISignal)
	assert.Equal(t, models.TrendUp, snap.Trend)

	require.NotNil(t, snap.Pct1Y)
	assert.Greater(t, *snap.Pct1Y, 0.0)
	assert.Equal(t, 300, snap.DataPoints)
}
