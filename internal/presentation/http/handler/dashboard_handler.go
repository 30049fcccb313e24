package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/kibettheo/medicore-api/internal/application/service"
	"github.com/kibettheo/medicore-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetStats handles fetching hospital-wide dashboard statistics
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard statistics retrieved successfully", stats)
}

// GetStockAlerts handles fetching medicines needing attention
func (h *DashboardHandler) GetStockAlerts(c *gin.Context) {
	medicines, err := h.dashboardService.GetStockAlerts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock alerts retrieved successfully", gin.H{
		"medicines": medicines,
	})
}
