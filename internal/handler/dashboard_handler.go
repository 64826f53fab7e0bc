package handler

import (
	"net/http"

	"kostify-backend/internal/middleware"
	"kostify-backend/internal/service"
	"kostify-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Stats returns the aggregated dashboard counters. All underlying reads
// run concurrently; any failure fails the whole response rather than
// returning partial numbers.
func (h *DashboardHandler) Stats(c *gin.Context) {
	propertyID, ok := middleware.PropertyScope(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusForbidden, "Property outside your scope")
		return
	}

	stats, err := h.dashboardService.GetStats(c.Request.Context(), ownerID(c), propertyID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch dashboard stats")
		return
	}

	utils.SuccessResponse(c, stats)
}
