package app

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/CodeActivity/internal/config"
	httpv1 "github.com/Egor213/CodeActivity/internal/controller/http/v1"
	"github.com/Egor213/CodeActivity/internal/metrics"
	"github.com/Egor213/CodeActivity/internal/repo"
	"github.com/Egor213/CodeActivity/internal/repo/wakatime"
	"github.com/Egor213/CodeActivity/internal/service"
	errorsUtils "github.com/Egor213/CodeActivity/pkg/errors"
	"github.com/Egor213/CodeActivity/pkg/httpserver"
	"github.com/Egor213/CodeActivity/pkg/logger"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	if cfg.WakaTime.APIKey == "" {
		log.WithField("env_var", "WAKATIME_API_KEY").
			Warn("API key is not configured, activity requests will fail")
	}

	// Metrics
	metricsCnt := metrics.New()

	// API handler
	apiHandler, err := NewAPIHandler(cfg, metricsCnt, prometheus.DefaultRegisterer, log.StandardLogger())
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// API server
	log.Info("Starting API server...")
	log.Debugf("API server port: %s", cfg.HTTP.Port)
	apiServer := httpserver.New(apiHandler,
		httpserver.Port(cfg.HTTP.Port),
		httpserver.ReadTimeout(cfg.HTTP.ReadTimeout),
		httpserver.WriteTimeout(cfg.HTTP.WriteTimeout),
		httpserver.ShutdownTimeout(cfg.HTTP.ShutdownTimeout),
	)

	// Prometheus server
	log.Info("Starting metrics server...")
	log.Debugf("Metrics server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	log.Info("Configuring graceful shutdown...")

	// Waiting signal
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info(errorsUtils.WrapPathErr(errors.New(s.String())))
	case err := <-apiServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Error(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	shutdownApp(apiServer, metricsServer)
}

// NewAPIHandler wires repositories, services and routes into an echo instance.
func NewAPIHandler(cfg *config.Config, cnt *metrics.Counters, reg prometheus.Registerer, l log.FieldLogger) (*echo.Echo, error) {
	rounding, err := service.ParseRounding(cfg.Activity.Rounding)
	if err != nil {
		return nil, err
	}

	repositories := repo.NewRepositories(repo.RepositoriesDependencies{
		HTTPClient: wakatime.NewHTTPClient(cfg.WakaTime.Timeout),
		BaseURL:    cfg.WakaTime.BaseURL,
		Counters:   cnt,
	})

	services := service.NewServices(service.ServicesDependencies{
		Repos:    repositories,
		APIKey:   cfg.WakaTime.APIKey,
		Rounding: rounding,
		Logger:   l,
	})

	handler := echo.New()
	handler.HideBanner = true
	handler.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "activity",
		Registerer: reg,
	}))
	httpv1.ConfigureRouter(handler, services, cnt, httpv1.RouterOptions{
		Logger: l,
		CORS:   !cfg.Activity.DisableCORS,
	})

	return handler, nil
}

func shutdownApp(servers ...*httpserver.Server) {
	log.Info("Shutting down...")
	for _, s := range servers {
		if err := s.Shutdown(); err != nil {
			log.Error(errorsUtils.WrapPathErr(err))
		}
	}
}
