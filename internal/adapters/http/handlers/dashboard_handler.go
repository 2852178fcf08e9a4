package handlers

import (
	"chapa-dashboard/internal/adapters/http/middleware"
	"chapa-dashboard/internal/core/access"
	"chapa-dashboard/internal/core/services"
	"chapa-dashboard/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard statistics endpoints
type DashboardHandler struct {
	statsService *services.StatsService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(statsService *services.StatsService) *DashboardHandler {
	return &DashboardHandler{statsService: statsService}
}

// Stats handles the system stats snapshot
// @Summary System statistics
// @Description Recompute the system stats snapshot (Admin+)
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /dashboard/stats [get]
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	// Render-time duplicate of the group gate
	role, _ := middleware.RoleFromContext(c)
	if !access.HasPageAccess(role, access.PageAnalytics) {
		return response.Forbidden(c, "You don't have permission to access this resource")
	}

	stats, err := h.statsService.SystemStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute stats")
	}

	return response.Success(c, "Stats retrieved successfully", stats)
}

// Analytics handles the analytics page payload
// @Summary Analytics data
// @Description Monthly and regional analytics series (Admin+)
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /dashboard/analytics [get]
func (h *DashboardHandler) Analytics(c *fiber.Ctx) error {
	role, _ := middleware.RoleFromContext(c)
	if !access.HasPageAccess(role, access.PageAnalytics) {
		return response.Forbidden(c, "You don't have permission to access this resource")
	}

	analytics, err := h.statsService.Analytics(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to load analytics")
	}

	return response.Success(c, "Analytics retrieved successfully", analytics)
}
