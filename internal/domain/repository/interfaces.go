package repository

import (
	"context"

	"FundScope/internal/domain/models"
)

// FetchStrategy produces zero or more NAV observations for a fund within a
// fixed lookback window, or fails. Strategies are tried in priority order by
// the source chain; a failure here is downgraded to an empty result there.
type FetchStrategy interface {
	Name() string
	Fetch(ctx context.Context, secID string, lookbackDays int) ([]models.Observation, error)
}

// SeriesStore owns the per-fund NAV history. Merge folds a possibly-empty,
// possibly-unsorted, possibly-duplicated batch into the stored series
// (last write wins per date) and returns the full updated series.
type SeriesStore interface {
	Load(ctx context.Context) error
	Series(fundCode string) models.Series
	Merge(fundCode string, batch []models.Observation) models.Series
	Flush(ctx context.Context) error
}

// SnapshotWriter persists run artifacts (indicator list, dashboard).
type SnapshotWriter interface {
	WriteIndicators(ctx context.Context, snaps []models.IndicatorSnapshot) error
	WriteDashboard(ctx context.Context, d *models.Dashboard) error
}

// Metrics records operational signals for a run.
type Metrics interface {
	RecordFetch(strategy, outcome string)
	RecordFundRefreshed(code string, nav float64)
	RecordError(kind string)
	RecordRunDuration(seconds float64)
	RecordFundsProcessed(n int)
}
