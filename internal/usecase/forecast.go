package usecase

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"CropCast/internal/domain/models"
	domrepo "CropCast/internal/domain/repository"
	domsvc "CropCast/internal/domain/service"
	"CropCast/internal/services/features"
	"CropCast/pkg/util"

	"github.com/jonboulle/clockwork"
)

// Weather-perturbation sigmas used when walking the horizon. These emulate
// forecast uncertainty; they are a fixed heuristic, not a calibrated interval.
const (
	sigmaTemperature   = 1.0
	sigmaHumidity      = 2.0
	sigmaPrecipitation = 0.2
	sigmaWindSpeed     = 0.5
)

// ForecastEngine produces a multi-day price forecast for a crop. Every call
// synthesizes a fresh year of history and fits a fresh model against it;
// nothing is shared or cached across requests.
type ForecastEngine struct {
	gen         domsvc.SeriesGenerator
	model       domsvc.PriceModel
	weather     domsvc.WeatherProvider
	metrics     domrepo.Metrics
	clock       clockwork.Clock
	historyDays int
	maxHorizon  int
	seed        int64
}

func NewForecastEngine(
	gen domsvc.SeriesGenerator,
	model domsvc.PriceModel,
	weather domsvc.WeatherProvider,
	metrics domrepo.Metrics,
	clock clockwork.Clock,
	historyDays, maxHorizon int,
	seed int64,
) *ForecastEngine {
	return &ForecastEngine{
		gen:         gen,
		model:       model,
		weather:     weather,
		metrics:     metrics,
		clock:       clock,
		historyDays: historyDays,
		maxHorizon:  maxHorizon,
		seed:        seed,
	}
}

// Forecast walks the horizon day by day, predicting a price for each date
// starting tomorrow. The horizon is clamped to [1, maxHorizon].
func (e *ForecastEngine) Forecast(
	ctx context.Context,
	cropName string,
	currentPrice float64,
	weather *models.WeatherSnapshot,
	horizonDays int,
) (*models.ForecastResult, error) {
	start := time.Now()
	horizon := util.Clamp(horizonDays, 1, e.maxHorizon)

	history := e.gen.Generate(cropName, e.historyDays)
	if len(history) == 0 {
		return nil, fmt.Errorf("forecast %s: empty history", cropName)
	}

	targets := make([]float64, len(history))
	for i, obs := range history {
		targets[i] = obs.Price
	}
	fitted, err := e.model.Fit(features.Build(history), targets)
	if err != nil {
		e.metrics.RecordError("fit")
		return nil, fmt.Errorf("fit price model for %s: %w", cropName, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snap, err := e.resolveWeather(ctx, weather)
	if err != nil {
		e.metrics.RecordError("weather")
		return nil, fmt.Errorf("resolve weather: %w", err)
	}

	rng := rand.New(rand.NewSource(e.seed))
	today := util.Midnight(e.clock.Now())
	historyStart := history[0].Date

	predictions := make([]models.DailyPrediction, 0, horizon)
	prices := make([]float64, 0, horizon)
	for d := 1; d <= horizon; d++ {
		perturbed := models.WeatherSnapshot{
			Temperature:   snap.Temperature + rng.NormFloat64()*sigmaTemperature,
			Humidity:      snap.Humidity + rng.NormFloat64()*sigmaHumidity,
			Precipitation: snap.Precipitation + rng.NormFloat64()*sigmaPrecipitation,
			WindSpeed:     snap.WindSpeed + rng.NormFloat64()*sigmaWindSpeed,
		}
		date := today.AddDate(0, 0, d)

		price := fitted.Predict(features.BuildFuture(perturbed, date, historyStart))
		price = round2(math.Max(0.1, price))

		predictions = append(predictions, models.DailyPrediction{
			Date:           date.Format(time.DateOnly),
			PredictedPrice: price,
			Confidence:     round2(Confidence(d)),
			DemandLevel:    DemandLevel(price, currentPrice),
		})
		prices = append(prices, price)
	}

	result := &models.ForecastResult{
		CropName:      cropName,
		CurrentPrice:  currentPrice,
		Predictions:   predictions,
		WeatherImpact: weatherImpact(mean(prices), currentPrice),
		MarketTrend:   MarketTrend(prices),
	}

	e.metrics.RecordForecast(cropName)
	e.metrics.RecordLastPrice(cropName, prices[len(prices)-1])
	e.metrics.RecordLatency("forecast", time.Since(start).Seconds())
	return result, nil
}

func (e *ForecastEngine) resolveWeather(ctx context.Context, supplied *models.WeatherSnapshot) (models.WeatherSnapshot, error) {
	if supplied != nil {
		return *supplied, nil
	}
	return e.weather.Current(ctx, nil)
}

// Confidence decays linearly with horizon distance and floors at 0.6. It is
// a heuristic score, not a statistical interval.
func Confidence(daysAhead int) float64 {
	return math.Max(0.6, 0.95-0.01*float64(daysAhead))
}

// DemandLevel classifies demand by the predicted/current price ratio.
func DemandLevel(predicted, current float64) string {
	if current <= 0 {
		return "medium"
	}
	switch ratio := predicted / current; {
	case ratio > 1.15:
		return "high"
	case ratio < 0.85:
		return "low"
	default:
		return "medium"
	}
}

// MarketTrend compares the mean of the first three predictions to the mean
// of the last three. Sequences shorter than two points read as stable.
func MarketTrend(prices []float64) string {
	if len(prices) < 2 {
		return "stable"
	}
	head := prices[:min(3, len(prices))]
	tail := prices[max(0, len(prices)-3):]
	change := (mean(tail) - mean(head)) / mean(head)
	switch {
	case change > 0.05:
		return "increasing"
	case change < -0.05:
		return "decreasing"
	default:
		return "stable"
	}
}

func weatherImpact(avgPredicted, current float64) string {
	switch {
	case avgPredicted > current*1.1:
		return "Favorable weather conditions may increase prices"
	case avgPredicted < current*0.9:
		return "Weather conditions may put downward pressure on prices"
	default:
		return "Weather conditions show neutral impact on pricing"
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
