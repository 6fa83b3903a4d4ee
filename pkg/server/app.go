package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	drepo "FundScope/internal/domain/repository"
	"FundScope/internal/usecase"
	"FundScope/pkg/config"
	xhttp "FundScope/pkg/http"
	applogger "FundScope/pkg/logger"
)

// App encapsulates the entire application lifecycle: load history, run an
// initial refresh, serve the API, refresh on a timer, shut down on signal.
type App struct {
	cfg        *config.Config
	refresher  *usecase.Refresher
	store      drepo.SeriesStore
	httpServer *xhttp.Server
	logger     *applogger.Logger
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	refresher *usecase.Refresher,
	store drepo.SeriesStore,
	handler xhttp.Handler,
	logger *applogger.Logger,
) *App {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	httpServer := xhttp.NewServer(handler,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithMetricsPath(metricsPath),
	)

	return &App{
		cfg:        cfg,
		refresher:  refresher,
		store:      store,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := a.store.Load(ctx); err != nil {
		return err
	}

	if a.cfg.Refresh.OnStart {
		if _, err := a.refresher.Run(ctx); err != nil {
			// The API can still serve; the ticker retries later.
			a.logger.Error("initial refresh failed", applogger.Error(err))
		}
	}

	if err := a.httpServer.Start(); err != nil {
		return err
	}

	ticker := time.NewTicker(a.cfg.Refresh.Interval)
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			if _, err := a.refresher.Run(ctx); err != nil {
				a.logger.Error("scheduled refresh failed", applogger.Error(err))
			}
		case sig := <-quit:
			a.logger.Info("shutting down", applogger.String("signal", sig.String()))
			cancel()

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
			defer shutdownCancel()
			return a.httpServer.Stop(shutdownCtx)
		}
	}
}
