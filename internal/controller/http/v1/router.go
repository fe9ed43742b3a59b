package httpv1

import (
	"github.com/Egor213/CodeActivity/internal/metrics"
	"github.com/Egor213/CodeActivity/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"
)

type RouterOptions struct {
	Logger log.FieldLogger
	CORS   bool
}

// ConfigureRouter mounts the activity endpoint at /api. OPTIONS is only
// routed when CORS is enabled.
func ConfigureRouter(handler *echo.Echo, services *service.Services, counters *metrics.Counters, opts RouterOptions) {
	if opts.Logger == nil {
		opts.Logger = log.StandardLogger()
	}

	handler.Use(requestLogger(opts.Logger))

	ac := NewActivityController(services.Activity, counters, opts.Logger, opts.CORS)

	handler.GET("/api", ac.GetActivity)
	if opts.CORS {
		handler.OPTIONS("/api", ac.Preflight)
	}
}

func requestLogger(logger log.FieldLogger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logger.WithFields(log.Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": v.Latency.Milliseconds(),
			})
			if v.Error != nil {
				entry.WithField("error", v.Error).Error("Request failed")
				return nil
			}
			entry.Debug("Request completed")
			return nil
		},
	})
}
