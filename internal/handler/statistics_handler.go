package handler

import (
	"net/http"

	"costr/internal/service"
	"costr/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
}

func NewStatisticsHandler(statisticsService service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.GET("/statistics", h.GetSummary)
	}
}

// GetSummary returns the dashboard summary
// @Summary      Get dashboard summary
// @Description  Sums documents and payments in the default currency. Dates are inclusive and formatted YYYY-MM-DD.
// @Tags         statistics
// @Produce      json
// @Param        start_date  query     string  false  "Start date (YYYY-MM-DD)"
// @Param        end_date    query     string  false  "End date (YYYY-MM-DD)"
// @Success      200         {object}  response.Response{data=model.DashboardSummary}
// @Failure      422         {object}  response.Response
// @Router       /api/statistics [get]
func (h *StatisticsHandler) GetSummary(c *gin.Context) {
	summary, err := h.statisticsService.Summary(service.StatisticsRange{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, summary))
}
