package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/hrmslite/hrms-lite-api/internal/errors"
	"github.com/hrmslite/hrms-lite-api/internal/services"
)

// DashboardHandler serves the aggregated dashboard payload.
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary returns today's rollups.
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardService.Summary()
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	apierrors.Success(c, http.StatusOK, "", summary)
}
