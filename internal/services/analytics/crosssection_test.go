package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundScope/internal/domain/models"
	"FundScope/pkg/util"
)

func snap(code string, pct1w, pct1m, rsi *float64) models.IndicatorSnapshot {
	return models.IndicatorSnapshot{
		FundCode: code,
		Pct1W:    pct1w,
		Pct1M:    pct1m,
		RSI14:    rsi,
	}
}

func TestFlowProxy_MedianAndBands(t *testing.T) {
	snaps := []models.IndicatorSnapshot{
		snap("A", nil, util.Ptr(1.0), nil),
		snap("B", nil, util.Ptr(2.0), nil),
		snap("C", nil, util.Ptr(5.0), nil),
	}

	out := FlowProxy(snaps)
	require.Len(t, out, 3)

	// Median of [1,2,5] is 2. C is +3.0 above it, A only -1.0 below.
	assert.Equal(t, models.FlowInflow, out["C"].Signal)
	assert.Equal(t, 3.0, out["C"].VsCategory)
	assert.Equal(t, "+3.0% vs category median", out["C"].Note)

	assert.Equal(t, models.FlowNeutral, out["A"].Signal)
	assert.Equal(t, -1.0, out["A"].VsCategory)
	assert.Equal(t, "-1.0% vs category median", out["A"].Note)

	assert.Equal(t, models.FlowNeutral, out["B"].Signal)
	assert.Equal(t, 0.0, out["B"].VsCategory)
	assert.Equal(t, "+0.0% vs category median", out["B"].Note)
}

func TestFlowProxy_LowerMedianOnEvenLength(t *testing.T) {
	// Even-length lists take the lower of the two middle elements, no
	// averaging: median of [-2, 3] is -2.
	snaps := []models.IndicatorSnapshot{
		snap("A", nil, util.Ptr(3.0), nil),
		snap("B", nil, util.Ptr(-2.0), nil),
	}

	out := FlowProxy(snaps)
	require.Len(t, out, 2)

	assert.Equal(t, models.FlowInflow, out["A"].Signal)
	assert.Equal(t, 5.0, out["A"].VsCategory)
	assert.Equal(t, models.FlowNeutral, out["B"].Signal)
	assert.Equal(t, 0.0, out["B"].VsCategory)
}

func TestFlowProxy_Outflow(t *testing.T) {
	snaps := []models.IndicatorSnapshot{
		snap("A", nil, util.Ptr(0.0), nil),
		snap("B", nil, util.Ptr(1.0), nil),
		snap("C", nil, util.Ptr(-2.0), nil),
	}

	out := FlowProxy(snaps)
	assert.Equal(t, models.FlowOutflow, out["C"].Signal, "delta -2.0 is below the -1.5 band")
}

func TestFlowProxy_ExcludesFundsWithoutMonthlyChange(t *testing.T) {
	snaps := []models.IndicatorSnapshot{
		snap("A", nil, util.Ptr(1.0), nil),
		snap("B", nil, nil, nil),
	}

	out := FlowProxy(snaps)
	require.Len(t, out, 1)
	_, ok := out["B"]
	assert.False(t, ok)
}

func TestFlowProxy_Empty(t *testing.T) {
	assert.Empty(t, FlowProxy(nil))
	assert.Empty(t, FlowProxy([]models.IndicatorSnapshot{snap("A", nil, nil, nil)}))
}

func TestRankMomentum_CompositeScore(t *testing.T) {
	snaps := []models.IndicatorSnapshot{
		snap("A", util.Ptr(2.0), util.Ptr(3.0), util.Ptr(60.0)),
		snap("B", util.Ptr(-1.0), util.Ptr(-2.0), util.Ptr(40.0)),
	}

	out := RankMomentum(snaps)
	require.Len(t, out, 2)

	// A: 0.4*2 + 0.4*3 + 0.2*((60-50)/50*20) = 2.8
	assert.Equal(t, 1, out["A"].Rank)
	assert.Equal(t, 2.8, out["A"].Score)

	// B: 0.4*-1 + 0.4*-2 + 0.2*((40-50)/50*20) = -2.0
	assert.Equal(t, 2, out["B"].Rank)
	assert.Equal(t, -2.0, out["B"].Score)
}

func TestRankMomentum_MissingInputs(t *testing.T) {
	snaps := []models.IndicatorSnapshot{
		// No 1-week change: contributes zero.
		snap("A", nil, util.Ptr(5.0), nil),
		// Zero RSI is treated as no signal, same as absent.
		snap("B", nil, util.Ptr(5.0), util.Ptr(0.0)),
		// No 1-month change: excluded entirely.
		snap("C", util.Ptr(10.0), nil, util.Ptr(80.0)),
	}

	out := RankMomentum(snaps)
	require.Len(t, out, 2)
	assert.Equal(t, 2.0, out["A"].Score)
	assert.Equal(t, 2.0, out["B"].Score)
	_, ok := out["C"]
	assert.False(t, ok)
}

func TestRankMomentum_DenseDeterministicRanks(t *testing.T) {
	snaps := []models.IndicatorSnapshot{
		snap("A", nil, util.Ptr(1.0), nil),
		snap("B", nil, util.Ptr(1.0), nil), // tied with A, input order wins
		snap("C", nil, util.Ptr(9.0), nil),
		snap("D", nil, util.Ptr(-4.0), nil),
	}

	first := RankMomentum(snaps)
	second := RankMomentum(snaps)
	assert.Equal(t, first, second, "same inputs must rank identically")

	assert.Equal(t, 1, first["C"].Rank)
	assert.Equal(t, 2, first["A"].Rank, "stable sort keeps input order on ties")
	assert.Equal(t, 3, first["B"].Rank)
	assert.Equal(t, 4, first["D"].Rank)

	// Dense 1..N, no gaps.
	seen := make(map[int]bool)
	for _, r := range first {
		seen[r.Rank] = true
	}
	for i := 1; i <= len(first); i++ {
		assert.True(t, seen[i], "rank %d missing", i)
	}
}
