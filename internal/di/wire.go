//go:build wireinject
// +build wireinject

package di

import (
	"FundScope/pkg/config"
	"FundScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient services
		ProvideLogger,
		ProvideMetrics,
		ProvideCache,

		// Repositories
		ProvideSeriesStore,
		ProvideSnapshotWriter,

		// Provider transport and strategies
		ProvideMorningstarClient,
		ProvideStrategies,
		ProvideSourceChain,

		// Use cases
		ProvideFunds,
		ProvideRefresher,

		// HTTP
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
