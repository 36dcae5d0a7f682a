package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CropCast/internal/services/market"
)

func newTestAnalyzer(t *testing.T) (*MarketAnalyzer, *market.Generator) {
	t.Helper()
	gen := market.NewGenerator(42, testClock())
	return NewMarketAnalyzer(gen, nopMetrics{}, 90, 30), gen
}

func TestAnalyzeTrailingAverage(t *testing.T) {
	analyzer, gen := newTestAnalyzer(t)

	snap, err := analyzer.Analyze(context.Background(), "corn", 90)
	require.NoError(t, err)

	// Recompute the trailing-30 mean from the same deterministic series.
	history := gen.Generate("corn", 90)
	trailing := history[len(history)-30:]
	sum := 0.0
	for _, obs := range trailing {
		sum += obs.Price
	}
	wantAvg := sum / 30

	assert.Equal(t, "corn", snap.CropName)
	assert.InDelta(t, wantAvg, snap.AvgPrice30d, 0.005)
	assert.InDelta(t, history[len(history)-1].Price, snap.CurrentPrice, 0.005)
}

func TestAnalyzeVolatilityNonNegative(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	snap, err := analyzer.Analyze(context.Background(), "lettuce", 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, snap.PriceVolatility, 0.0)
}

func TestAnalyzeSentimentMatchesPrices(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	snap, err := analyzer.Analyze(context.Background(), "apples", 90)
	require.NoError(t, err)

	if snap.CurrentPrice > snap.AvgPrice30d {
		assert.Equal(t, "positive", snap.MarketSentiment)
	} else {
		assert.Equal(t, "negative", snap.MarketSentiment)
	}
}

func TestAnalyzeWindowClamp(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	// days=5 clamps up to 30; the result must match an explicit 30-day window.
	small, err := analyzer.Analyze(context.Background(), "wheat", 5)
	require.NoError(t, err)
	thirty, err := analyzer.Analyze(context.Background(), "wheat", 30)
	require.NoError(t, err)
	assert.Equal(t, thirty, small)
}

func TestAnalyzeDefaultWindow(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	byDefault, err := analyzer.Analyze(context.Background(), "potatoes", 0)
	require.NoError(t, err)
	explicit, err := analyzer.Analyze(context.Background(), "potatoes", 90)
	require.NoError(t, err)
	assert.Equal(t, explicit, byDefault)
}

func TestAnalyzePlaceholders(t *testing.T) {
	analyzer, _ := newTestAnalyzer(t)

	snap, err := analyzer.Analyze(context.Background(), "tomatoes", 60)
	require.NoError(t, err)
	assert.Equal(t, "medium", snap.SupplyLevel)
	assert.Equal(t, "stable", snap.DemandForecast)
}
