package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack/internal/models/request_models"
	"fittrack/internal/services"
	"fittrack/pkg/middleware"
	"fittrack/pkg/utils"
)

type GoalController struct {
	goalService services.GoalServiceInterface
}

func NewGoalController(goalService services.GoalServiceInterface) *GoalController {
	return &GoalController{goalService: goalService}
}

// ListGoals godoc
// @Summary List the caller's goals, nearest deadline first
// @Tags Goals
// @Produce json
// @Param status query string false "completed|in-progress"
// @Param type query string false "weight|workout|distance|strength|custom"
// @Success 200 {array} response_models.GoalResponse
// @Security BearerAuth
// @Router /api/goals [get]
func (g *GoalController) ListGoals(c *gin.Context) {
	var query request_models.ListGoalsQuery
	if !utils.BindQuery(c, &query) {
		return
	}

	goals, err := g.goalService.ListGoals(c.Request.Context(), middleware.CurrentAccountID(c), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, goals)
}

// GetGoal godoc
// @Summary Get one goal
// @Tags Goals
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} response_models.GoalResponse
// @Failure 404 {object} utils.APIError
// @Security BearerAuth
// @Router /api/goals/{id} [get]
func (g *GoalController) GetGoal(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrGoalNotFound)
		return
	}

	goal, err := g.goalService.GetGoal(c.Request.Context(), middleware.CurrentAccountID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, goal)
}

// CreateGoal godoc
// @Summary Create a goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param request body request_models.CreateGoalRequest true "Goal"
// @Success 201 {object} response_models.GoalResponse
// @Failure 400 {object} utils.APIError
// @Security BearerAuth
// @Router /api/goals [post]
func (g *GoalController) CreateGoal(c *gin.Context) {
	var req request_models.CreateGoalRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	goal, err := g.goalService.CreateGoal(c.Request.Context(), middleware.CurrentAccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, goal)
}

// UpdateGoal godoc
// @Summary Partially update a goal
// @Tags Goals
// @Accept json
// @Produce json
// @Param id path string true "Goal ID"
// @Param request body request_models.UpdateGoalRequest true "Fields to change"
// @Success 200 {object} response_models.GoalResponse
// @Failure 404 {object} utils.APIError
// @Security BearerAuth
// @Router /api/goals/{id} [patch]
func (g *GoalController) UpdateGoal(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrGoalNotFound)
		return
	}

	var req request_models.UpdateGoalRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	goal, err := g.goalService.UpdateGoal(c.Request.Context(), middleware.CurrentAccountID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, goal)
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Tags Goals
// @Param id path string true "Goal ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.APIError
// @Security BearerAuth
// @Router /api/goals/{id} [delete]
func (g *GoalController) DeleteGoal(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrGoalNotFound)
		return
	}

	if err := g.goalService.DeleteGoal(c.Request.Context(), middleware.CurrentAccountID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Goal deleted")
}
