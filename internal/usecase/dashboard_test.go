package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FundScope/internal/domain/models"
	"FundScope/pkg/util"
)

func dashSnap(code string, pct1d, rsi *float64) models.IndicatorSnapshot {
	return models.IndicatorSnapshot{
		FundCode: code,
		FundName: "Fund " + code,
		Pct1D:    pct1d,
		RSI14:    rsi,
	}
}

func codes(funds []models.FundRecord) []string {
	out := make([]string, 0, len(funds))
	for _, f := range funds {
		out = append(out, f.Code)
	}
	return out
}

func TestAssembleDashboard_Empty(t *testing.T) {
	d := AssembleDashboard(time.Now(), nil, nil, nil)

	assert.Zero(t, d.TotalFunds)
	assert.Empty(t, d.Funds)
	assert.Empty(t, d.TopGainers1D)
	assert.Empty(t, d.TopLosers1D)
	assert.Empty(t, d.TopMomentum)
	assert.Empty(t, d.OversoldFunds)
	assert.Empty(t, d.InflowSignals)
}

func TestAssembleDashboard_GainersLosersExcludeFlatAndMissing(t *testing.T) {
	snaps := []models.IndicatorSnapshot{
		dashSnap("UP", util.Ptr(1.5), nil),
		dashSnap("DOWN", util.Ptr(-0.8), nil),
		dashSnap("FLAT", util.Ptr(0.0), nil),
		dashSnap("NODATA", nil, nil),
	}

	d := AssembleDashboard(time.Now(), snaps, nil, nil)

	assert.Equal(t, []string{"UP", "DOWN"}, codes(d.TopGainers1D))
	assert.Equal(t, []string{"DOWN", "UP"}, codes(d.TopLosers1D))
}

func TestAssembleDashboard_GainersCappedAtFive(t *testing.T) {
	snaps := make([]models.IndicatorSnapshot, 0, 7)
	for i := 0; i < 7; i++ {
		snaps = append(snaps, dashSnap(string(rune('A'+i)), util.Ptr(float64(i+1)), nil))
	}

	d := AssembleDashboard(time.Now(), snaps, nil, nil)

	require.Len(t, d.TopGainers1D, 5)
	assert.Equal(t, []string{"G", "F", "E", "D", "C"}, codes(d.TopGainers1D))
}

func TestAssembleDashboard_RankOrderingWithUnrankedLast(t *testing.T) {
	snaps := []models.IndicatorSnapshot{
		dashSnap("UNRANKED", nil, nil),
		dashSnap("SECOND", nil, nil),
		dashSnap("FIRST", nil, nil),
	}
	ranks := map[string]models.MomentumRank{
		"FIRST":  {Rank: 1, Score: 3.0},
		"SECOND": {Rank: 2, Score: 1.0},
	}

	d := AssembleDashboard(time.Now(), snaps, nil, ranks)

	assert.Equal(t, []string{"FIRST", "SECOND", "UNRANKED"}, codes(d.Funds))
	assert.Equal(t, []string{"FIRST", "SECOND", "UNRANKED"}, codes(d.TopMomentum))
	assert.Nil(t, d.Funds[2].MomentumRank)
	require.NotNil(t, d.Funds[0].MomentumScore)
	assert.Equal(t, 3.0, *d.Funds[0].MomentumScore)
}

func TestAssembleDashboard_OversoldScreen(t *testing.T) {
	snaps := []models.IndicatorSnapshot{
		dashSnap("DEEP", nil, util.Ptr(28.0)),
		dashSnap("EDGE", nil, util.Ptr(35.0)),
		dashSnap("ABOVE", nil, util.Ptr(35.01)),
		dashSnap("ZERO", nil, util.Ptr(0.0)),
		dashSnap("NONE", nil, nil),
	}

	d := AssembleDashboard(time.Now(), snaps, nil, nil)

	assert.ElementsMatch(t, []string{"DEEP", "EDGE"}, codes(d.OversoldFunds))
}

func TestAssembleDashboard_FlowJoin(t *testing.T) {
	snaps := []models.IndicatorSnapshot{
		dashSnap("IN", nil, nil),
		dashSnap("OUT", nil, nil),
		dashSnap("MISSING", nil, nil),
	}
	flows := map[string]models.FlowSignal{
		"IN":  {Signal: models.FlowInflow, VsCategory: 2.1, Note: "+2.1% vs category median"},
		"OUT": {Signal: models.FlowOutflow, VsCategory: -1.8, Note: "-1.8% vs category median"},
	}

	d := AssembleDashboard(time.Now(), snaps, flows, nil)

	assert.Equal(t, []string{"IN"}, codes(d.InflowSignals))

	byCode := make(map[string]models.FundRecord, len(d.Funds))
	for _, f := range d.Funds {
		byCode[f.Code] = f
	}
	require.NotNil(t, byCode["IN"].FlowVsCategory)
	assert.Equal(t, 2.1, *byCode["IN"].FlowVsCategory)
	assert.Equal(t, "+2.1% vs category median", byCode["IN"].FlowNote)

	missing := byCode["MISSING"]
	assert.Equal(t, models.FlowUnknown, missing.FlowSignal)
	assert.Nil(t, missing.FlowVsCategory)
	assert.NotNil(t, missing.TopHoldings, "serializes as [] rather than null")
}
