package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"CropCast/internal/domain/models"
	domrepo "CropCast/internal/domain/repository"
	domsvc "CropCast/internal/domain/service"
	"CropCast/pkg/util"
)

// MarketAnalyzer computes rolling statistics over a short synthetic window.
// It shares the series generator with the forecast engine but involves no
// model fitting.
type MarketAnalyzer struct {
	gen          domsvc.SeriesGenerator
	metrics      domrepo.Metrics
	windowDays   int
	trailingDays int
}

func NewMarketAnalyzer(gen domsvc.SeriesGenerator, metrics domrepo.Metrics, windowDays, trailingDays int) *MarketAnalyzer {
	return &MarketAnalyzer{
		gen:          gen,
		metrics:      metrics,
		windowDays:   windowDays,
		trailingDays: trailingDays,
	}
}

// Analyze builds a MarketSnapshot for the crop. windowDays <= 0 selects the
// configured default; explicit values are clamped to [30, 365].
func (a *MarketAnalyzer) Analyze(ctx context.Context, cropName string, windowDays int) (*models.MarketSnapshot, error) {
	start := time.Now()
	if windowDays <= 0 {
		windowDays = a.windowDays
	}
	windowDays = util.Clamp(windowDays, 30, 365)

	history := a.gen.Generate(cropName, windowDays)
	if len(history) == 0 {
		a.metrics.RecordError("analysis")
		return nil, fmt.Errorf("analyze %s: empty history", cropName)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trailing := history
	if len(history) > a.trailingDays {
		trailing = history[len(history)-a.trailingDays:]
	}
	prices := make([]float64, len(trailing))
	for i, obs := range trailing {
		prices[i] = obs.Price
	}

	current := history[len(history)-1].Price
	avg := mean(prices)

	sentiment := "negative"
	if current > avg {
		sentiment = "positive"
	}

	snap := &models.MarketSnapshot{
		CropName:        cropName,
		CurrentPrice:    round2(current),
		AvgPrice30d:     round2(avg),
		PriceVolatility: round2(stddev(prices)),
		MarketSentiment: sentiment,
		// Placeholders: supply and demand are not modeled.
		SupplyLevel:    "medium",
		DemandForecast: "stable",
	}

	a.metrics.RecordLatency("analysis", time.Since(start).Seconds())
	return snap, nil
}

// stddev is the sample standard deviation; fewer than two points yield 0.
func stddev(xs []float64) float64 {
	n := len(xs)
	if n < 2 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(n-1))
}
