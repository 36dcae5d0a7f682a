package features

import (
	"testing"
	"time"

	"CropCast/internal/domain/models"
)

func sampleHistory(n int) []models.HistoricalObservation {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	out := make([]models.HistoricalObservation, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.HistoricalObservation{
			Date:          start.AddDate(0, 0, i),
			Price:         2.0 + float64(i),
			Temperature:   15.5,
			Humidity:      70,
			Precipitation: 1.2,
			WindSpeed:     6,
		})
	}
	return out
}

func TestBuildLengthMatchesHistory(t *testing.T) {
	hist := sampleHistory(10)
	X := Build(hist)
	if len(X) != len(hist) {
		t.Fatalf("got %d vectors, want %d", len(X), len(hist))
	}
}

func TestBuildFeatureOrder(t *testing.T) {
	hist := sampleHistory(3)
	X := Build(hist)
	// [temperature, humidity, precipitation, wind_speed, day_of_year, days_since_start]
	v := X[0]
	if len(v) != len(Names) {
		t.Fatalf("vector width %d, want %d", len(v), len(Names))
	}
	if v[0] != 15.5 || v[1] != 70 || v[2] != 1.2 || v[3] != 6 {
		t.Fatalf("weather features misordered: %v", v)
	}
	if v[4] != float64(hist[0].Date.YearDay()) {
		t.Fatalf("day_of_year %v, want %v", v[4], hist[0].Date.YearDay())
	}
}

func TestBuildDaysSinceStart(t *testing.T) {
	X := Build(sampleHistory(5))
	for i, v := range X {
		if got := v[5]; got != float64(i) {
			t.Fatalf("days_since_start[%d] = %v, want %d", i, got, i)
		}
	}
}

func TestBuildFuture(t *testing.T) {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	target := start.AddDate(0, 0, 370)
	w := models.WeatherSnapshot{Temperature: 22.5, Humidity: 65, Precipitation: 0.5, WindSpeed: 7.2}
	v := BuildFuture(w, target, start)
	if v[0] != 22.5 || v[3] != 7.2 {
		t.Fatalf("weather misordered: %v", v)
	}
	if v[4] < 1 || v[4] > 366 {
		t.Fatalf("day_of_year out of range: %v", v[4])
	}
	if v[5] != 370 {
		t.Fatalf("days_since_start %v, want 370", v[5])
	}
}

func TestBuildEmptyHistory(t *testing.T) {
	if X := Build(nil); X != nil {
		t.Fatalf("expected nil for empty history")
	}
}
