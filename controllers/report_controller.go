package controllers

import (
	"net/http"

	"github.com/rahul202k24/RestaurantPro/pkg/resp"
	"github.com/rahul202k24/RestaurantPro/services"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	Service *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{Service: svc}
}

// GET /api/reports/sales
func (ctl *ReportController) Sales(c *gin.Context) {
	summary, err := ctl.Service.Sales()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
