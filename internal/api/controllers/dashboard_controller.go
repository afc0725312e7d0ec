package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/anskp/Flexi-Fit-sub001/internal/services"
	"github.com/anskp/Flexi-Fit-sub001/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboard godoc
// @Summary Get the role-shaped dashboard for the authenticated account
// @Description Admins get platform KPIs; members get activity/diet/training; gym owners and trainers get their business metrics
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	accountID, ok := accountIDFromContext(c)
	if !ok {
		return
	}

	dashboard, err := d.dashboardService.GetDashboard(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard data fetched successfully")
}
