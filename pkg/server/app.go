package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	mid "CropCast/internal/middleware"
	"CropCast/pkg/config"
	xhttp "CropCast/pkg/http"
	applogger "CropCast/pkg/logger"
)

// App encapsulates the application lifecycle: the compute pool and the HTTP
// server, started together and shut down in reverse order.
type App struct {
	cfg        *config.Config
	handler    xhttp.Handler
	pool       *mid.ComputePool
	logger     *applogger.Logger
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(cfg *config.Config, handler xhttp.Handler, pool *mid.ComputePool, logger *applogger.Logger) *App {
	return &App{
		cfg:     cfg,
		handler: handler,
		pool:    pool,
		logger:  logger,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	a.pool.Start()
	a.logger.Info("compute pool started",
		applogger.Int("workers", a.cfg.Forecast.Workers),
		applogger.Int("queue", a.cfg.Forecast.QueueSize),
	)

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithMetrics(a.cfg.Metrics.Enabled, a.cfg.Metrics.Path),
		xhttp.WithLogger(a.logger),
	)
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("http server started", applogger.Int("port", a.cfg.Server.Port))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}
	a.pool.Stop()

	a.logger.Info("shutdown complete")
	return nil
}
