package market

import (
	"math"
	"math/rand"
	"strings"

	"CropCast/internal/domain/models"
	"CropCast/pkg/util"

	"github.com/jonboulle/clockwork"
)

// basePrices are per-crop anchors for the synthetic series. Unknown crops
// fall back to defaultBasePrice.
var basePrices = map[string]float64{
	"tomatoes": 3.50,
	"lettuce":  2.20,
	"carrots":  1.80,
	"corn":     4.50,
	"wheat":    6.00,
	"apples":   2.90,
	"potatoes": 1.50,
}

const defaultBasePrice = 3.00

// Generator synthesizes daily price/weather history. It stands in for a real
// market-data feed: seasonality, a slow upward drift, and weather shocks are
// baked into the price path.
//
// Every Generate call builds its own rand source from the configured seed, so
// concurrent calls never share generator state and repeated calls with the
// same crop and window produce the same series.
type Generator struct {
	seed  int64
	clock clockwork.Clock
}

func NewGenerator(seed int64, clock clockwork.Clock) *Generator {
	return &Generator{seed: seed, clock: clock}
}

// BasePrice returns the anchor price for a crop, case-insensitively.
func BasePrice(cropName string) float64 {
	if p, ok := basePrices[strings.ToLower(cropName)]; ok {
		return p
	}
	return defaultBasePrice
}

// Generate returns numDays observations in chronological order, ending at
// today. Day index 0 is the oldest point.
func (g *Generator) Generate(cropName string, numDays int) []models.HistoricalObservation {
	today := util.Midnight(g.clock.Now())
	base := BasePrice(cropName)
	rng := rand.New(rand.NewSource(g.seed))

	out := make([]models.HistoricalObservation, 0, numDays)
	for i := 0; i < numDays; i++ {
		// Seasonal cycle peaks in winter, amplitude +-20%.
		seasonal := 1 + 0.2*math.Sin(2*math.Pi*float64(i)/365-math.Pi/2)

		temperature := 20 + 15*math.Sin(2*math.Pi*float64(i)/365) + rng.NormFloat64()*3
		humidity := 60 + 20*rng.Float64()
		precipitation := math.Max(0, 2+rng.NormFloat64())
		windSpeed := 5 + 3*rng.Float64()

		// Extreme temperatures and heavy rain push prices up; the two
		// factors compose multiplicatively.
		weatherImpact := 1.0
		if temperature < 5 || temperature > 35 {
			weatherImpact *= 1.1
		}
		if precipitation > 5 {
			weatherImpact *= 1.05
		}

		trend := 1 + 0.001*float64(i)

		price := base * seasonal * weatherImpact * trend
		price += rng.NormFloat64() * 0.1 * price
		price = math.Max(0.1, price)

		out = append(out, models.HistoricalObservation{
			Date:          today.AddDate(0, 0, -(numDays - 1 - i)),
			Price:         round2(price),
			Temperature:   round1(temperature),
			Humidity:      round1(humidity),
			Precipitation: round2(precipitation),
			WindSpeed:     round1(windSpeed),
		})
	}
	return out
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
