package api

import (
	"errors"
	"net/http"

	"FundScope/internal/domain/models"
	"FundScope/internal/usecase"
	"FundScope/pkg/cache"
	xhttp "FundScope/pkg/http"
	xlogger "FundScope/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardEchoHandler serves the latest run's dashboard and per-fund
// records. Reads come from the layered cache; a cold cache triggers a
// refresh run.
type DashboardEchoHandler struct {
	logger    *xlogger.Logger
	refresher *usecase.Refresher
	cache     cache.Service
}

func NewDashboardEchoHandler(logger *xlogger.Logger, refresher *usecase.Refresher, c cache.Service) *DashboardEchoHandler {
	return &DashboardEchoHandler{logger: logger, refresher: refresher, cache: c}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/dashboard", h.Dashboard)
	g.GET("/funds", h.Funds)
	g.GET("/funds/:code", h.Fund)
	g.POST("/refresh", h.Refresh)
	e.GET("/healthz", h.Health)
}

// Dashboard returns the latest dashboard, refreshing on a cold cache.
func (h *DashboardEchoHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	var d models.Dashboard
	if err := h.cache.Get(ctx, usecase.CacheKeyDashboard, &d); err == nil {
		return xhttp.SuccessResponse(c, d)
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		h.logger.Warn("dashboard cache read failed", xlogger.Error(err))
	}

	fresh, err := h.refresher.Run(ctx)
	if err != nil {
		h.logger.Error("refresh failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, fresh)
}

// Funds returns the configured fund universe.
func (h *DashboardEchoHandler) Funds(c echo.Context) error {
	return xhttp.SuccessResponse(c, h.refresher.Universe())
}

type fundRequest struct {
	Code string `param:"code" validate:"required"`
}

// Fund returns one fund's latest composite record.
func (h *DashboardEchoHandler) Fund(c echo.Context) error {
	req := &fundRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	var rec models.FundRecord
	err := h.cache.Get(c.Request().Context(), usecase.CacheKeyFundPrefix+req.Code, &rec)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return xhttp.AppErrorResponse(c, xhttp.NewNotFoundError("code", "fund not found or not yet refreshed"))
		}
		h.logger.Error("fund cache read failed", xlogger.String("fund", req.Code), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, rec)
}

// Refresh runs the full pipeline and returns the new dashboard.
func (h *DashboardEchoHandler) Refresh(c echo.Context) error {
	d, err := h.refresher.Run(c.Request().Context())
	if err != nil {
		h.logger.Error("refresh failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, d)
}

// Health is a liveness probe.
func (h *DashboardEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
