package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack/internal/models/request_models"
	"fittrack/internal/services"
	"fittrack/pkg/middleware"
	"fittrack/pkg/utils"
)

type StatsController struct {
	statsService services.StatsService
}

func NewStatsController(statsService services.StatsService) *StatsController {
	return &StatsController{statsService: statsService}
}

// Summary godoc
// @Summary Activity summary for the last N days
// @Tags Stats
// @Produce json
// @Param days query int false "Window in days" default(7) minimum(1) maximum(365)
// @Success 200 {object} response_models.ActivitySummary
// @Security BearerAuth
// @Router /api/stats/summary [get]
func (s *StatsController) Summary(c *gin.Context) {
	var query request_models.SummaryQuery
	if !utils.BindQuery(c, &query) {
		return
	}

	summary, err := s.statsService.BuildSummary(c.Request.Context(), middleware.CurrentAccountID(c), query.Days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, summary)
}
