package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fittrack/internal/models/request_models"
	"fittrack/internal/services"
	"fittrack/pkg/middleware"
	"fittrack/pkg/utils"
)

type WorkoutController struct {
	workoutService services.WorkoutServiceInterface
}

func NewWorkoutController(workoutService services.WorkoutServiceInterface) *WorkoutController {
	return &WorkoutController{workoutService: workoutService}
}

// ListWorkouts godoc
// @Summary List the caller's workouts, newest first
// @Tags Workouts
// @Produce json
// @Param type query string false "strength|cardio|flexibility|sports|other"
// @Param from query string false "YYYY-MM-DD, inclusive"
// @Param to query string false "YYYY-MM-DD, inclusive"
// @Success 200 {array} response_models.WorkoutResponse
// @Security BearerAuth
// @Router /api/workouts [get]
func (w *WorkoutController) ListWorkouts(c *gin.Context) {
	var query request_models.ListWorkoutsQuery
	if !utils.BindQuery(c, &query) {
		return
	}

	workouts, err := w.workoutService.ListWorkouts(c.Request.Context(), middleware.CurrentAccountID(c), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, workouts)
}

// GetWorkout godoc
// @Summary Get one workout
// @Tags Workouts
// @Produce json
// @Param id path string true "Workout ID"
// @Success 200 {object} response_models.WorkoutResponse
// @Failure 404 {object} utils.APIError
// @Security BearerAuth
// @Router /api/workouts/{id} [get]
func (w *WorkoutController) GetWorkout(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrWorkoutNotFound)
		return
	}

	workout, err := w.workoutService.GetWorkout(c.Request.Context(), middleware.CurrentAccountID(c), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, workout)
}

// CreateWorkout godoc
// @Summary Log a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param request body request_models.CreateWorkoutRequest true "Workout"
// @Success 201 {object} response_models.WorkoutResponse
// @Failure 400 {object} utils.APIError
// @Security BearerAuth
// @Router /api/workouts [post]
func (w *WorkoutController) CreateWorkout(c *gin.Context) {
	var req request_models.CreateWorkoutRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	workout, err := w.workoutService.CreateWorkout(c.Request.Context(), middleware.CurrentAccountID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, workout)
}

// UpdateWorkout godoc
// @Summary Partially update a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param id path string true "Workout ID"
// @Param request body request_models.UpdateWorkoutRequest true "Fields to change"
// @Success 200 {object} response_models.WorkoutResponse
// @Failure 404 {object} utils.APIError
// @Security BearerAuth
// @Router /api/workouts/{id} [patch]
func (w *WorkoutController) UpdateWorkout(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrWorkoutNotFound)
		return
	}

	var req request_models.UpdateWorkoutRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	workout, err := w.workoutService.UpdateWorkout(c.Request.Context(), middleware.CurrentAccountID(c), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, workout)
}

// DeleteWorkout godoc
// @Summary Delete a workout
// @Tags Workouts
// @Param id path string true "Workout ID"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.APIError
// @Security BearerAuth
// @Router /api/workouts/{id} [delete]
func (w *WorkoutController) DeleteWorkout(c *gin.Context) {
	id, ok := recordID(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrWorkoutNotFound)
		return
	}

	if err := w.workoutService.DeleteWorkout(c.Request.Context(), middleware.CurrentAccountID(c), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Workout deleted")
}
