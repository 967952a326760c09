package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/hamedsh/dokandar-api/internal/application/analytics"
)

// AnalyticsHandler serves the derived read views. Both endpoints recompute
// from the live collections on every call.
type AnalyticsHandler struct {
	uc *analytics.SummaryUseCase
}

// NewAnalyticsHandler builds the handler.
func NewAnalyticsHandler(uc *analytics.SummaryUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard summary figures
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	return c.JSON(h.uc.Dashboard())
}

// Reports godoc
// @Summary      Reports page figures
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.ReportsSummary
// @Router       /api/analytics/reports [get]
func (h *AnalyticsHandler) Reports(c *fiber.Ctx) error {
	return c.JSON(h.uc.Reports())
}
