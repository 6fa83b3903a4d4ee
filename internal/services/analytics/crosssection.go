package analytics

import (
	"fmt"
	"sort"

	"FundScope/internal/domain/models"
	"FundScope/pkg/util"
)

// flowBand is the distance from the category median, in percentage points,
// beyond which a fund is classified as seeing inflows or outflows.
const flowBand = 1.5

// FlowProxy classifies each fund's 1-month change against the category
// median, as a stand-in for capital flow data which NAV alone cannot show.
// Funds without a 1-month change are excluded. The median is the lower
// median: the element at (len-1)/2 of the sorted list, with no averaging
// for even-length lists.
func FlowProxy(snaps []models.IndicatorSnapshot) map[string]models.FlowSignal {
	valid := make([]models.IndicatorSnapshot, 0, len(snaps))
	for _, s := range snaps {
		if s.Pct1M != nil {
			valid = append(valid, s)
		}
	}
	if len(valid) == 0 {
		return map[string]models.FlowSignal{}
	}

	changes := make([]float64, len(valid))
	for i, s := range valid {
		changes[i] = *s.Pct1M
	}
	sort.Float64s(changes)
	median := changes[(len(changes)-1)/2]

	out := make(map[string]models.FlowSignal, len(valid))
	for _, s := range valid {
		diff := *s.Pct1M - median
		signal := models.FlowNeutral
		if diff > flowBand {
			signal = models.FlowInflow
		} else if diff < -flowBand {
			signal = models.FlowOutflow
		}
		out[s.FundCode] = models.FlowSignal{
			Signal:     signal,
			VsCategory: util.Round(diff, 2),
			Note:       fmt.Sprintf("%+.1f%% vs category median", diff),
		}
	}
	return out
}

// Composite score weights: short momentum, medium momentum, RSI tilt.
const (
	weight1W  = 0.4
	weight1M  = 0.4
	weightRSI = 0.2
)

// RankMomentum scores every fund with a computable 1-month change and
// assigns dense 1-based ranks in descending score order. A missing 1-week
// change contributes zero; a missing or zero RSI contributes zero. Ties
// keep input order (stable sort).
func RankMomentum(snaps []models.IndicatorSnapshot) map[string]models.MomentumRank {
	type scored struct {
		code  string
		score float64
	}

	list := make([]scored, 0, len(snaps))
	for _, s := range snaps {
		if s.Pct1M == nil {
			continue
		}
		score := *s.Pct1M * weight1M
		if s.Pct1W != nil {
			score += *s.Pct1W * weight1W
		}
		if s.RSI14 != nil && *s.RSI14 != 0 {
			score += ((*s.RSI14 - 50) / 50) * 20 * weightRSI
		}
		list = append(list, scored{code: s.FundCode, score: util.Round(score, 4)})
	}

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].score > list[j].score
	})

	out := make(map[string]models.MomentumRank, len(list))
	for i, s := range list {
		out[s.code] = models.MomentumRank{Rank: i + 1, Score: s.score}
	}
	return out
}
