package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type APIError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	TraceID string `json:"traceId,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func traceIDOf(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIError{
		Message: message,
		TraceID: traceIDOf(c),
	})
}

func RespondFieldError(c *gin.Context, field, message string) {
	c.JSON(http.StatusBadRequest, APIError{
		Message: message,
		Field:   field,
		TraceID: traceIDOf(c),
	})
}

// RespondUnauthorized aborts the chain with the single 401 body used for
// every authentication failure.
func RespondUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, APIError{
		Message: "Authentication required",
		TraceID: traceIDOf(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	var verr *ValidationError

	switch {
	case errors.As(err, &verr):
		RespondFieldError(c, verr.Field, verr.Message)
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondFieldError(c, "email", "Email is already registered")
	case errors.Is(err, ErrInvalidGoalTarget):
		RespondFieldError(c, "target", "Target must be greater than zero")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrAccountNotFound):
		RespondUnauthorized(c)
	case errors.Is(err, ErrWorkoutNotFound):
		RespondError(c, http.StatusNotFound, "Workout not found")
	case errors.Is(err, ErrGoalNotFound):
		RespondError(c, http.StatusNotFound, "Goal not found")
	case errors.Is(err, ErrDatabaseError):
		zap.L().Error("database error",
			zap.String("trace_id", traceIDOf(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Server error")
	default:
		zap.L().Error("unexpected error",
			zap.String("trace_id", traceIDOf(c)),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		RespondError(c, http.StatusInternalServerError, "Server error")
	}
}
