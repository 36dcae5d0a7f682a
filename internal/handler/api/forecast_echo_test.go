package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CropCast/internal/domain/models"
	"CropCast/internal/handler/api"
	mid "CropCast/internal/middleware"
	"CropCast/internal/services/market"
	"CropCast/internal/services/model"
	"CropCast/internal/services/weather"
	"CropCast/internal/usecase"
	xlogger "CropCast/pkg/logger"
)

type nopMetrics struct{}

func (nopMetrics) RecordForecast(string)           {}
func (nopMetrics) RecordError(string)              {}
func (nopMetrics) RecordLastPrice(string, float64) {}
func (nopMetrics) RecordLatency(string, float64)   {}
func (nopMetrics) RecordQueueDepth(int)            {}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	gen := market.NewGenerator(42, clock)
	trainer := model.NewTrainer(model.WithTrees(10), model.WithSeed(42))
	wp := weather.NewStatic(models.WeatherSnapshot{
		Temperature: 22.5, Humidity: 65, Precipitation: 0.5, WindSpeed: 7.2,
	})

	engine := usecase.NewForecastEngine(gen, trainer, wp, nopMetrics{}, clock, 120, 90, 42)
	analyzer := usecase.NewMarketAnalyzer(gen, nopMetrics{}, 90, 30)

	pool := mid.NewComputePool(nopMetrics{}, mid.WithWorkers(2), mid.WithQueueSize(8))
	pool.Start()
	t.Cleanup(pool.Stop)

	logger, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)

	e := echo.New()
	api.NewForecastHandler(logger, engine, analyzer, pool, clock).RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRootEndpoint(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "running", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestHealthEndpoint(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "2025-06-15T12:00:00Z", body["timestamp"])
}

func TestPredictPrice(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodPost, "/predict/price", `{
		"crop_data": {"name": "tomatoes", "current_price": 3.50},
		"prediction_days": 5
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result models.ForecastResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "tomatoes", result.CropName)
	assert.Equal(t, 3.50, result.CurrentPrice)
	require.Len(t, result.Predictions, 5)
	assert.Equal(t, "2025-06-16", result.Predictions[0].Date)
	assert.InDelta(t, 0.94, result.Predictions[0].Confidence, 1e-9)
	for _, p := range result.Predictions {
		assert.GreaterOrEqual(t, p.PredictedPrice, 0.1)
	}
}

func TestPredictPriceDefaultHorizon(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodPost, "/predict/price", `{
		"crop_data": {"name": "corn", "current_price": 4.50}
	}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result models.ForecastResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Len(t, result.Predictions, 30)
}

func TestPredictPriceMissingName(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodPost, "/predict/price", `{
		"crop_data": {"current_price": 3.50}
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictPriceNonPositivePrice(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodPost, "/predict/price", `{
		"crop_data": {"name": "tomatoes", "current_price": 0}
	}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarketAnalysis(t *testing.T) {
	e := newTestServer(t)
	rec := doJSON(e, http.MethodGet, "/crops/corn/market-analysis", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var snap models.MarketSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "corn", snap.CropName)
	assert.Greater(t, snap.CurrentPrice, 0.0)
	assert.Equal(t, "medium", snap.SupplyLevel)
	assert.Equal(t, "stable", snap.DemandForecast)
	assert.Contains(t, []string{"positive", "negative"}, snap.MarketSentiment)
}
