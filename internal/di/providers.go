package di

import (
	"fmt"

	"CropCast/internal/domain/models"
	domrepo "CropCast/internal/domain/repository"
	domsvc "CropCast/internal/domain/service"
	"CropCast/internal/handler/api"
	mid "CropCast/internal/middleware"
	"CropCast/internal/services/market"
	"CropCast/internal/services/model"
	"CropCast/internal/services/weather"
	"CropCast/internal/usecase"
	"CropCast/pkg/config"
	xhttp "CropCast/pkg/http"
	applogger "CropCast/pkg/logger"
	"CropCast/pkg/metrics"
	"CropCast/pkg/server"

	"github.com/jonboulle/clockwork"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideClock supplies the real clock; tests swap in a fake.
func ProvideClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// ProvideSeriesGenerator creates the synthetic history generator.
func ProvideSeriesGenerator(cfg *config.Config, clock clockwork.Clock) domsvc.SeriesGenerator {
	return market.NewGenerator(cfg.Forecast.Seed, clock)
}

// ProvidePriceModel creates the random-forest trainer.
func ProvidePriceModel(cfg *config.Config) domsvc.PriceModel {
	return model.NewTrainer(
		model.WithTrees(cfg.Forecast.Trees),
		model.WithSeed(cfg.Forecast.Seed),
	)
}

// ProvideWeatherProvider creates the placeholder weather provider.
func ProvideWeatherProvider(cfg *config.Config) domsvc.WeatherProvider {
	return weather.NewStatic(models.WeatherSnapshot{
		Temperature:   cfg.Weather.Temperature,
		Humidity:      cfg.Weather.Humidity,
		Precipitation: cfg.Weather.Precipitation,
		WindSpeed:     cfg.Weather.WindSpeed,
	})
}

// ProvideForecastEngine creates the forecast orchestrator.
func ProvideForecastEngine(
	cfg *config.Config,
	gen domsvc.SeriesGenerator,
	priceModel domsvc.PriceModel,
	wp domsvc.WeatherProvider,
	m domrepo.Metrics,
	clock clockwork.Clock,
) *usecase.ForecastEngine {
	return usecase.NewForecastEngine(
		gen, priceModel, wp, m, clock,
		cfg.Forecast.HistoryDays,
		cfg.Forecast.MaxHorizonDays,
		cfg.Forecast.Seed,
	)
}

// ProvideMarketAnalyzer creates the rolling-statistics analyzer.
func ProvideMarketAnalyzer(cfg *config.Config, gen domsvc.SeriesGenerator, m domrepo.Metrics) *usecase.MarketAnalyzer {
	return usecase.NewMarketAnalyzer(gen, m, cfg.Analysis.WindowDays, cfg.Analysis.TrailingDays)
}

// ProvideComputePool creates the bounded worker pool for model fits.
func ProvideComputePool(cfg *config.Config, m domrepo.Metrics) *mid.ComputePool {
	return mid.NewComputePool(m,
		mid.WithWorkers(cfg.Forecast.Workers),
		mid.WithQueueSize(cfg.Forecast.QueueSize),
	)
}

// ProvideForecastHandler creates the HTTP handler.
func ProvideForecastHandler(
	l *applogger.Logger,
	engine *usecase.ForecastEngine,
	analyzer *usecase.MarketAnalyzer,
	pool *mid.ComputePool,
	clock clockwork.Clock,
) xhttp.Handler {
	return api.NewForecastHandler(l, engine, analyzer, pool, clock)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, pool *mid.ComputePool, l *applogger.Logger) *server.App {
	return server.New(cfg, handler, pool, l)
}
