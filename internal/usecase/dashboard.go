package usecase

import (
	"sort"
	"time"

	"FundScope/internal/domain/models"
)

// unrankedSentinel sorts funds without a momentum rank after every ranked
// fund; the universe is far smaller than this.
const unrankedSentinel = 999

// topN is the size of the gainers/losers/momentum views.
const topN = 5

// oversoldScreen is the dashboard screening threshold. Deliberately looser
// than the OVERSOLD classification band (30) so the view surfaces funds
// approaching oversold territory, not only those already there.
const oversoldScreen = 35.0

// AssembleDashboard joins per-fund indicators with cross-sectional results
// into the run's dashboard. An empty snapshot list yields an empty
// dashboard with all views empty.
func AssembleDashboard(now time.Time, snaps []models.IndicatorSnapshot, flows map[string]models.FlowSignal, ranks map[string]models.MomentumRank) *models.Dashboard {
	funds := make([]models.FundRecord, 0, len(snaps))
	for _, s := range snaps {
		funds = append(funds, buildRecord(s, flows, ranks))
	}

	// Rank-ascending, unranked last.
	sort.SliceStable(funds, func(i, j int) bool {
		return rankOrSentinel(funds[i]) < rankOrSentinel(funds[j])
	})

	return &models.Dashboard{
		LastUpdated:   now,
		TotalFunds:    len(funds),
		Funds:         funds,
		TopGainers1D:  topByPct1D(funds, false),
		TopLosers1D:   topByPct1D(funds, true),
		TopMomentum:   head(funds, topN),
		OversoldFunds: oversold(funds),
		InflowSignals: inflows(funds),
	}
}

func buildRecord(s models.IndicatorSnapshot, flows map[string]models.FlowSignal, ranks map[string]models.MomentumRank) models.FundRecord {
	rec := models.FundRecord{
		Code:  s.FundCode,
		Name:  s.FundName,
		SecID: s.SecID,

		NAV:  s.LatestNAV,
		Date: s.AsOfDate,

		Pct1D: s.Pct1D,
		Pct1W: s.Pct1W,
		Pct1M: s.Pct1M,
		Pct3M: s.Pct3M,
		Pct1Y: s.Pct1Y,

		RSI14:     s.RSI14,
		RSISignal: s.RSISignal,

		MA5:   s.MA5,
		MA20:  s.MA20,
		MA50:  s.MA50,
		Trend: s.Trend,

		Volatility: s.Volatility20D,

		FlowSignal: models.FlowUnknown,

		TopHoldings: []string{},
	}

	if fs, ok := flows[s.FundCode]; ok {
		vs := fs.VsCategory
		rec.FlowSignal = fs.Signal
		rec.FlowVsCategory = &vs
		rec.FlowNote = fs.Note
	}
	if mr, ok := ranks[s.FundCode]; ok {
		rank, score := mr.Rank, mr.Score
		rec.MomentumRank = &rank
		rec.MomentumScore = &score
	}
	return rec
}

func rankOrSentinel(r models.FundRecord) int {
	if r.MomentumRank == nil {
		return unrankedSentinel
	}
	return *r.MomentumRank
}

// topByPct1D returns the top five by 1-day change. Funds with an absent or
// zero change carry no signal and are excluded.
func topByPct1D(funds []models.FundRecord, ascending bool) []models.FundRecord {
	withSignal := make([]models.FundRecord, 0, len(funds))
	for _, f := range funds {
		if f.Pct1D != nil && *f.Pct1D != 0 {
			withSignal = append(withSignal, f)
		}
	}
	sort.SliceStable(withSignal, func(i, j int) bool {
		if ascending {
			return *withSignal[i].Pct1D < *withSignal[j].Pct1D
		}
		return *withSignal[i].Pct1D > *withSignal[j].Pct1D
	})
	return head(withSignal, topN)
}

func oversold(funds []models.FundRecord) []models.FundRecord {
	out := make([]models.FundRecord, 0)
	for _, f := range funds {
		if f.RSI14 != nil && *f.RSI14 != 0 && *f.RSI14 <= oversoldScreen {
			out = append(out, f)
		}
	}
	return out
}

func inflows(funds []models.FundRecord) []models.FundRecord {
	out := make([]models.FundRecord, 0)
	for _, f := range funds {
		if f.FlowSignal == models.FlowInflow {
			out = append(out, f)
		}
	}
	return out
}

func head(funds []models.FundRecord, n int) []models.FundRecord {
	if len(funds) < n {
		n = len(funds)
	}
	out := make([]models.FundRecord, n)
	copy(out, funds[:n])
	return out
}
