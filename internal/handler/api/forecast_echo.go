package api

import (
	"time"

	"CropCast/internal/domain/models"
	mid "CropCast/internal/middleware"
	"CropCast/internal/service/ratelimit"
	"CropCast/internal/usecase"
	xhttp "CropCast/pkg/http"
	xlogger "CropCast/pkg/logger"
	"CropCast/pkg/util"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
)

const serviceVersion = "1.0.0"

// ForecastHandler exposes the forecasting and market-analysis endpoints.
// Compute-heavy work is submitted to the pool so handler goroutines stay
// free for request I/O.
type ForecastHandler struct {
	logger   *xlogger.Logger
	engine   *usecase.ForecastEngine
	analyzer *usecase.MarketAnalyzer
	pool     *mid.ComputePool
	rl       *ratelimit.Limiter
	clock    clockwork.Clock
}

func NewForecastHandler(
	logger *xlogger.Logger,
	engine *usecase.ForecastEngine,
	analyzer *usecase.MarketAnalyzer,
	pool *mid.ComputePool,
	clock clockwork.Clock,
) *ForecastHandler {
	return &ForecastHandler{
		logger:   logger,
		engine:   engine,
		analyzer: analyzer,
		pool:     pool,
		rl:       ratelimit.New(),
		clock:    clock,
	}
}

func (h *ForecastHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)
	e.POST("/predict/price", h.PredictPrice)
	e.GET("/crops/:crop_name/market-analysis", h.MarketAnalysis)
}

func (h *ForecastHandler) Root(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{
		"message": "CropCast forecasting service",
		"status":  "running",
		"version": serviceVersion,
	})
}

func (h *ForecastHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{
		"status":    "healthy",
		"timestamp": h.clock.Now().Format(time.RFC3339),
	})
}

func (h *ForecastHandler) PredictPrice(c echo.Context) error {
	req := &models.PredictRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.rl.Allow(c.RealIP()+":predict", 10, 5) {
		h.logger.Warn("predict rate limited", xlogger.String("remote", c.RealIP()))
		return xhttp.TooManyRequestsResponse(c, "rate limited")
	}

	crop := req.CropData
	h.logger.Info("generating predictions",
		xlogger.String("crop", crop.Name),
		xlogger.Int("days", req.PredictionDays),
	)
	if t, ok := util.ParseTime(crop.HarvestDate); ok {
		h.logger.Debug("harvest date supplied",
			xlogger.String("crop", crop.Name),
			xlogger.String("harvest", t.Format(time.DateOnly)),
		)
	}

	var result *models.ForecastResult
	var err error
	ctx := c.Request().Context()
	if perr := h.pool.Do(ctx, func() {
		result, err = h.engine.Forecast(ctx, crop.Name, crop.CurrentPrice, req.WeatherData, req.PredictionDays)
	}); perr != nil {
		h.logger.Error("forecast not scheduled", xlogger.Error(perr))
		return xhttp.InternalErrorResponse(c, perr)
	}
	if err != nil {
		h.logger.Error("error generating predictions",
			xlogger.String("crop", crop.Name),
			xlogger.Error(err),
		)
		return xhttp.InternalErrorResponse(c, err)
	}

	return xhttp.SuccessResponse(c, result)
}

func (h *ForecastHandler) MarketAnalysis(c echo.Context) error {
	crop := c.Param("crop_name")
	days := xhttp.ParseIntDefault(c.QueryParam("days"), 0)

	var snap *models.MarketSnapshot
	var err error
	ctx := c.Request().Context()
	if perr := h.pool.Do(ctx, func() {
		snap, err = h.analyzer.Analyze(ctx, crop, days)
	}); perr != nil {
		h.logger.Error("analysis not scheduled", xlogger.Error(perr))
		return xhttp.InternalErrorResponse(c, perr)
	}
	if err != nil {
		h.logger.Error("error in market analysis",
			xlogger.String("crop", crop),
			xlogger.Error(err),
		)
		return xhttp.InternalErrorResponse(c, err)
	}

	return xhttp.SuccessResponse(c, snap)
}

var _ xhttp.Handler = (*ForecastHandler)(nil)
