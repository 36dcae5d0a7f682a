package features

import (
	"time"

	"CropCast/internal/domain/models"
	"CropCast/pkg/util"
)

// Names is the fixed feature order used for both training and prediction
// vectors. Reordering it invalidates any model fitted against it.
var Names = []string{
	"temperature",
	"humidity",
	"precipitation",
	"wind_speed",
	"day_of_year",
	"days_since_start",
}

// Build derives one feature vector per observation, parallel to the history.
func Build(history []models.HistoricalObservation) [][]float64 {
	if len(history) == 0 {
		return nil
	}
	start := history[0].Date
	out := make([][]float64, 0, len(history))
	for _, obs := range history {
		out = append(out, vector(
			obs.Temperature, obs.Humidity, obs.Precipitation, obs.WindSpeed,
			obs.Date, start,
		))
	}
	return out
}

// BuildFuture builds a prediction vector for a synthesized future point.
// days_since_start is measured against the training history's start date.
func BuildFuture(w models.WeatherSnapshot, targetDate, historyStart time.Time) []float64 {
	return vector(
		w.Temperature, w.Humidity, w.Precipitation, w.WindSpeed,
		targetDate, historyStart,
	)
}

func vector(temp, hum, precip, wind float64, date, start time.Time) []float64 {
	return []float64{
		temp,
		hum,
		precip,
		wind,
		float64(date.YearDay()),
		float64(util.DaysBetween(start, date)),
	}
}
