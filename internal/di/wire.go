//go:build wireinject
// +build wireinject

package di

import (
	"CropCast/pkg/config"
	"CropCast/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideClock,
		ProvideMetrics,

		// Core services
		ProvideSeriesGenerator,
		ProvidePriceModel,
		ProvideWeatherProvider,

		// Use cases
		ProvideForecastEngine,
		ProvideMarketAnalyzer,
		ProvideComputePool,

		// HTTP surface
		ProvideForecastHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
