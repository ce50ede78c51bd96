package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"webtime/internal/errors"
	"webtime/internal/model"
	"webtime/internal/service"
)

// AnalyticsHandler handles productivity report endpoints.
type AnalyticsHandler struct {
	analytics service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analytics service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Report godoc
// @Summary Generate a productivity report
// @Tags analytics
// @Produce json
// @Param userId query string true "User ID"
// @Param period query string false "daily, weekly or monthly (default weekly)"
// @Param startDate query string false "Explicit window start; used only together with endDate"
// @Param endDate query string false "Explicit window end; used only together with startDate"
// @Success 200 {object} map[string]model.ProductivityReport
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /analytics [get]
func (h *AnalyticsHandler) Report(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId parameter is required")
	}

	period := c.QueryParam("period")
	if period == "" {
		period = "weekly"
	}

	start, end, err := windowParams(c)
	if err != nil {
		return err
	}

	report, err := h.analytics.Report(c.Request().Context(), userID, period, start, end)
	if err != nil {
		c.Logger().Errorf("generate report: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(http.StatusOK, map[string]*model.ProductivityReport{"report": report})
}
