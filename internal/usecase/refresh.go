package usecase

import (
	"context"
	"sync"
	"time"

	"FundScope/internal/domain/models"
	drepo "FundScope/internal/domain/repository"
	"FundScope/internal/services/analytics"
	"FundScope/pkg/cache"
	"FundScope/pkg/logger"
)

// Cache keys served by the HTTP API.
const (
	CacheKeyDashboard  = "dashboard"
	CacheKeyFundPrefix = "fund:"
)

// Refresher runs the full pipeline: for each fund in order, fetch through
// the source chain, merge into history, derive indicators; then run the
// cross-sectional stage once over all funds and assemble the dashboard.
// Funds are processed serially. A single fund's total failure never aborts
// the run, it just falls back to stored history.
type Refresher struct {
	funds     []models.Fund
	chain     *SourceChain
	store     drepo.SeriesStore
	snapshots drepo.SnapshotWriter
	metrics   drepo.Metrics
	cache     cache.Service
	cacheTTL  time.Duration
	logger    *logger.Logger

	mu sync.Mutex // one run at a time; ticker and API refresh may overlap
}

// NewRefresher creates the pipeline usecase.
func NewRefresher(
	funds []models.Fund,
	chain *SourceChain,
	store drepo.SeriesStore,
	snapshots drepo.SnapshotWriter,
	m drepo.Metrics,
	c cache.Service,
	cacheTTL time.Duration,
	l *logger.Logger,
) *Refresher {
	return &Refresher{
		funds:     funds,
		chain:     chain,
		store:     store,
		snapshots: snapshots,
		metrics:   m,
		cache:     c,
		cacheTTL:  cacheTTL,
		logger:    l,
	}
}

// Run executes one full refresh and returns the assembled dashboard.
// Returns an error only for persistence failures or cancellation; provider
// failures degrade per fund.
func (r *Refresher) Run(ctx context.Context) (*models.Dashboard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	snaps := make([]models.IndicatorSnapshot, 0, len(r.funds))

	for _, fund := range r.funds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		batch := r.chain.Fetch(ctx, fund)
		series := r.store.Merge(fund.Code, batch)

		snap := analytics.Compute(fund, series)
		if snap == nil {
			r.logger.Warn("insufficient history, fund skipped",
				logger.String("fund", fund.Code),
				logger.Int("observations", len(series)),
			)
			continue
		}
		snaps = append(snaps, *snap)
		r.metrics.RecordFundRefreshed(fund.Code, snap.LatestNAV)
	}

	flows := analytics.FlowProxy(snaps)
	ranks := analytics.RankMomentum(snaps)
	dashboard := AssembleDashboard(time.Now(), snaps, flows, ranks)

	if err := r.persist(ctx, snaps, dashboard); err != nil {
		return nil, err
	}
	r.cacheRecords(ctx, dashboard)

	r.metrics.RecordFundsProcessed(len(snaps))
	r.metrics.RecordRunDuration(time.Since(start).Seconds())
	r.logger.Info("refresh complete",
		logger.Int("funds_loaded", len(snaps)),
		logger.Int("universe", len(r.funds)),
		logger.Float64("seconds", time.Since(start).Seconds()),
	)
	return dashboard, nil
}

func (r *Refresher) persist(ctx context.Context, snaps []models.IndicatorSnapshot, d *models.Dashboard) error {
	if err := r.store.Flush(ctx); err != nil {
		r.metrics.RecordError("persist")
		return err
	}
	if err := r.snapshots.WriteIndicators(ctx, snaps); err != nil {
		r.metrics.RecordError("persist")
		return err
	}
	if err := r.snapshots.WriteDashboard(ctx, d); err != nil {
		r.metrics.RecordError("persist")
		return err
	}
	return nil
}

// cacheRecords refreshes the API read path. Cache failures are logged,
// never fatal; the API can fall back to the dashboard artifact.
func (r *Refresher) cacheRecords(ctx context.Context, d *models.Dashboard) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, CacheKeyDashboard, d, r.cacheTTL); err != nil {
		r.logger.Warn("dashboard cache set failed", logger.Error(err))
	}
	for _, f := range d.Funds {
		if err := r.cache.Set(ctx, CacheKeyFundPrefix+f.Code, f, r.cacheTTL); err != nil {
			r.logger.Warn("fund cache set failed", logger.String("fund", f.Code), logger.Error(err))
		}
	}
}

// Universe returns the configured fund list (read-only).
func (r *Refresher) Universe() []models.Fund {
	return r.funds
}
