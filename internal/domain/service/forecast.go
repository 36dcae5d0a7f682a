package service

import (
	"context"

	"CropCast/internal/domain/models"
)

// SeriesGenerator produces a synthetic daily price/weather history for a crop.
// The returned sequence is chronological and ends at "today".
type SeriesGenerator interface {
	Generate(cropName string, numDays int) []models.HistoricalObservation
}

// FittedModel is an opaque trained estimator. It is owned by the request that
// fitted it and is never shared or cached.
type FittedModel interface {
	Predict(features []float64) float64
}

// PriceModel fits a fresh regression estimator to (features, price) pairs.
type PriceModel interface {
	Fit(features [][]float64, targets []float64) (FittedModel, error)
}

// WeatherProvider resolves current weather for a location. The production
// implementation is a static placeholder; real forecast-API integration is
// out of scope.
type WeatherProvider interface {
	Current(ctx context.Context, location map[string]interface{}) (models.WeatherSnapshot, error)
}
