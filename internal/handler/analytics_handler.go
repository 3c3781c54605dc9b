package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"redcross/internal/service"
)

// AnalyticsHandler serves the admin dashboard aggregates.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler.
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Dashboard godoc
// @Summary Dashboard aggregates
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.Dashboard}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	d, err := h.analyticsService.Dashboard(c.Request().Context())
	if err != nil {
		return errorFor(err, "", "")
	}
	return c.JSON(http.StatusOK, Response{Success: true, Data: d})
}

// Volunteers godoc
// @Summary Volunteer aggregates
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.VolunteerStats}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /analytics/volunteers [get]
func (h *AnalyticsHandler) Volunteers(c echo.Context) error {
	stats, err := h.analyticsService.Volunteers(c.Request().Context())
	if err != nil {
		return errorFor(err, "", "")
	}
	return c.JSON(http.StatusOK, Response{Success: true, Data: stats})
}

// Members godoc
// @Summary Member aggregates
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=service.MemberStats}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /analytics/members [get]
func (h *AnalyticsHandler) Members(c echo.Context) error {
	stats, err := h.analyticsService.Members(c.Request().Context())
	if err != nil {
		return errorFor(err, "", "")
	}
	return c.JSON(http.StatusOK, Response{Success: true, Data: stats})
}
