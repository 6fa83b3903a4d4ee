package di

import (
	"fmt"

	"FundScope/internal/domain/models"
	drepo "FundScope/internal/domain/repository"
	"FundScope/internal/handler/api"
	internalrepo "FundScope/internal/repository"
	"FundScope/internal/service/morningstar"
	"FundScope/internal/usecase"
	"FundScope/pkg/cache"
	"FundScope/pkg/config"
	xhttp "FundScope/pkg/http"
	applogger "FundScope/pkg/logger"
	"FundScope/pkg/metrics"
	"FundScope/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideCache creates the API read cache: layered memory+redis when redis
// is enabled, plain memory otherwise.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisAddr(cfg.Cache.Redis.Addr),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix("fundscope"),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(rc), nil
}

// ProvideSeriesStore creates the flat-file NAV history store.
func ProvideSeriesStore(cfg *config.Config) drepo.SeriesStore {
	return internalrepo.NewFileSeriesStore(cfg.Storage.Dir)
}

// ProvideSnapshotWriter creates the run-artifact writer.
func ProvideSnapshotWriter(cfg *config.Config) (drepo.SnapshotWriter, error) {
	w, err := internalrepo.NewFileSnapshotWriter(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("snapshot writer: %w", err)
	}
	return w, nil
}

// ProvideMorningstarClient creates the shared provider transport.
func ProvideMorningstarClient(cfg *config.Config) *morningstar.Client {
	return morningstar.NewClient(morningstar.Config{
		TimeseriesURL:  cfg.Morningstar.TimeseriesURL,
		GraphURL:       cfg.Morningstar.GraphURL,
		QuoteURL:       cfg.Morningstar.QuoteURL,
		Currency:       cfg.Morningstar.Currency,
		RequestTimeout: cfg.Morningstar.RequestTimeout,
		RatePerSec:     cfg.Morningstar.RatePerSec,
		Burst:          cfg.Morningstar.Burst,
	})
}

// ProvideStrategies lists the fetch strategies in priority order.
func ProvideStrategies(client *morningstar.Client) []drepo.FetchStrategy {
	return []drepo.FetchStrategy{
		morningstar.NewTimeseriesStrategy(client),
		morningstar.NewGraphStrategy(client),
		morningstar.NewQuoteStrategy(client),
	}
}

// ProvideSourceChain creates the ordered fallback chain.
func ProvideSourceChain(strategies []drepo.FetchStrategy, cfg *config.Config, m drepo.Metrics, l *applogger.Logger) *usecase.SourceChain {
	return usecase.NewSourceChain(strategies, cfg.Morningstar.LookbackDays, m, l)
}

// ProvideFunds maps the configured universe into domain descriptors.
func ProvideFunds(cfg *config.Config) []models.Fund {
	funds := make([]models.Fund, len(cfg.Funds))
	for i, f := range cfg.Funds {
		funds[i] = models.Fund{Code: f.Code, Name: f.Name, SecID: f.SecID}
	}
	return funds
}

// ProvideRefresher creates the pipeline usecase.
func ProvideRefresher(
	funds []models.Fund,
	chain *usecase.SourceChain,
	store drepo.SeriesStore,
	snapshots drepo.SnapshotWriter,
	m drepo.Metrics,
	c cache.Service,
	cfg *config.Config,
	l *applogger.Logger,
) *usecase.Refresher {
	return usecase.NewRefresher(funds, chain, store, snapshots, m, c, cfg.Cache.DashboardTTL, l)
}

// ProvideHandler creates the API handler.
func ProvideHandler(l *applogger.Logger, refresher *usecase.Refresher, c cache.Service) xhttp.Handler {
	return api.NewDashboardEchoHandler(l, refresher, c)
}

// ProvideApp creates the application.
func ProvideApp(
	cfg *config.Config,
	refresher *usecase.Refresher,
	store drepo.SeriesStore,
	handler xhttp.Handler,
	l *applogger.Logger,
) *server.App {
	return server.New(cfg, refresher, store, handler, l)
}
