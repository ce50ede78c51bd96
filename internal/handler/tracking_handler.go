package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"webtime/internal/errors"
	"webtime/internal/model"
	"webtime/internal/service"
)

// TrackingHandler handles time entry endpoints.
type TrackingHandler struct {
	tracking service.TrackingService
}

// NewTrackingHandler creates a new tracking handler.
func NewTrackingHandler(tracking service.TrackingService) *TrackingHandler {
	return &TrackingHandler{tracking: tracking}
}

// TrackTimeRequest represents one observation from the browser extension.
// TimeSpent is accepted as a JSON number or a numeric string, matching the
// loose coercion clients rely on.
type TrackTimeRequest struct {
	UserID    string      `json:"userId" validate:"required"`
	URL       string      `json:"url" validate:"required"`
	Title     string      `json:"title"`
	TimeSpent interface{} `json:"timeSpent" validate:"required"`
	SessionID string      `json:"sessionId" validate:"required"`
}

// TrackTimeResponse confirms a recorded entry.
type TrackTimeResponse struct {
	Message  string         `json:"message"`
	Category model.Category `json:"category"`
}

// coerceSeconds converts a bound timeSpent value to whole seconds.
func coerceSeconds(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case string:
		trimmed := strings.TrimSpace(n)
		if parsed, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			return parsed, true
		}
		if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil &&
			!math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
			return int64(parsed), true
		}
	}
	return 0, false
}

// parseDate accepts RFC 3339 timestamps or plain 2006-01-02 dates.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// Record godoc
// @Summary Record a time entry
// @Tags tracking
// @Accept json
// @Produce json
// @Param request body TrackTimeRequest true "Time entry"
// @Success 201 {object} TrackTimeResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /track [post]
func (h *TrackingHandler) Record(c echo.Context) error {
	var req TrackTimeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	seconds, ok := coerceSeconds(req.TimeSpent)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "timeSpent must be a number")
	}

	category, err := h.tracking.Record(c.Request().Context(), service.RecordInput{
		UserID:    req.UserID,
		URL:       req.URL,
		Title:     req.Title,
		TimeSpent: seconds,
		SessionID: req.SessionID,
	})
	if err != nil {
		c.Logger().Errorf("record time entry: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}

	return c.JSON(http.StatusCreated, TrackTimeResponse{
		Message:  "Time entry recorded successfully",
		Category: category,
	})
}

// Query godoc
// @Summary List a user's time entries
// @Tags tracking
// @Produce json
// @Param userId query string true "User ID"
// @Param startDate query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param endDate query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} map[string][]model.TimeEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /track [get]
func (h *TrackingHandler) Query(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId parameter is required")
	}

	start, end, err := windowParams(c)
	if err != nil {
		return err
	}

	entries, err := h.tracking.Query(c.Request().Context(), userID, start, end)
	if err != nil {
		c.Logger().Errorf("query time entries: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_ERROR",
		})
	}
	if entries == nil {
		entries = []model.TimeEntry{}
	}

	return c.JSON(http.StatusOK, map[string][]model.TimeEntry{"timeEntries": entries})
}

// windowParams reads the optional startDate/endDate pair. A lone bound is
// ignored rather than rejected.
func windowParams(c echo.Context) (start, end *time.Time, err error) {
	startRaw := c.QueryParam("startDate")
	endRaw := c.QueryParam("endDate")
	if startRaw == "" || endRaw == "" {
		return nil, nil, nil
	}

	startAt, err := parseDate(startRaw)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid startDate")
	}
	endAt, err := parseDate(endRaw)
	if err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "invalid endDate")
	}
	return &startAt, &endAt, nil
}
