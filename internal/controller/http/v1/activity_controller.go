package httpv1

import (
	"net/http"

	logginghelper "github.com/Egor213/CodeActivity/internal/controller/common/logging"
	"github.com/Egor213/CodeActivity/internal/metrics"
	"github.com/Egor213/CodeActivity/internal/service"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

const (
	CacheControl = "public, s-maxage=3600, stale-while-revalidate=7200"

	corsAllowOrigin  = "*"
	corsAllowMethods = "GET, OPTIONS"
	corsAllowHeaders = "Content-Type, Authorization"

	unknownErrorMessage = "Unknown error"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ActivityController struct {
	activityService service.Activity
	counters        *metrics.Counters
	logger          log.FieldLogger
	cors            bool
}

func NewActivityController(as service.Activity, cnt *metrics.Counters, logger log.FieldLogger, cors bool) *ActivityController {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &ActivityController{
		activityService: as,
		counters:        cnt,
		logger:          logger,
		cors:            cors,
	}
}

func (c *ActivityController) GetActivity(ctx echo.Context) (err error) {
	c.setCORSHeaders(ctx)

	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		logginghelper.LogPanic(c.logger, recovered)
		c.counters.ActivityRequests.Inc(http.MethodGet, "failed")

		msg := unknownErrorMessage
		if e, ok := recovered.(error); ok {
			msg = e.Error()
		}
		err = ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
	}()

	activity, err := c.activityService.GetActivity(ctx.Request().Context())
	if err != nil {
		logginghelper.LogError(c.logger, err)
		c.counters.ActivityRequests.Inc(http.MethodGet, "failed")
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	logginghelper.LogServed(c.logger, activity)
	c.counters.ActivityRequests.Inc(http.MethodGet, "ok")

	ctx.Response().Header().Set(echo.HeaderCacheControl, CacheControl)
	return ctx.JSON(http.StatusOK, activity)
}

func (c *ActivityController) Preflight(ctx echo.Context) error {
	c.setCORSHeaders(ctx)
	c.counters.ActivityRequests.Inc(http.MethodOptions, "ok")
	return ctx.JSON(http.StatusOK, struct{}{})
}

func (c *ActivityController) setCORSHeaders(ctx echo.Context) {
	if !c.cors {
		return
	}
	h := ctx.Response().Header()
	h.Set(echo.HeaderAccessControlAllowOrigin, corsAllowOrigin)
	h.Set(echo.HeaderAccessControlAllowMethods, corsAllowMethods)
	h.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeaders)
}
