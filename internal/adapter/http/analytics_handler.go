package http

import (
	"net/http"
	"time"

	analyticsuc "bark-backend/internal/usecase/analytics"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalyticsHandler struct {
	uc  *analyticsuc.Usecase
	log *zap.Logger
}

func NewAnalyticsHandler(uc *analyticsuc.Usecase, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc, log: log}
}

func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	d, err := h.uc.Dashboard(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *AnalyticsHandler) Jobs(c echo.Context) error {
	r, err := h.uc.Jobs(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *AnalyticsHandler) Shop(c echo.Context) error {
	r, err := h.uc.Shop(c.Request().Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, r)
}

// Export downloads ?report=dashboard|jobs|shop (default dashboard) as XLSX.
func (h *AnalyticsHandler) Export(c echo.Context) error {
	report := analyticsuc.Report(c.QueryParam("report"))
	if report == "" {
		report = analyticsuc.ReportDashboard
	}
	b, err := h.uc.Export(c.Request().Context(), report)
	if err != nil {
		return writeError(c, h.log, err)
	}
	name := "bark-" + string(report) + "-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+name)
	return c.Blob(http.StatusOK, mimeXLSX, b)
}
