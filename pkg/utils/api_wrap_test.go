package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
		field   string
	}{
		{"validation", NewValidationError("name", "name is required"), http.StatusBadRequest, "name is required", "name"},
		{"duplicate email", fmt.Errorf("insert: %w", ErrEmailAlreadyExists), http.StatusBadRequest, "Email is already registered", "email"},
		{"bad target", ErrInvalidGoalTarget, http.StatusBadRequest, "Target must be greater than zero", "target"},
		{"bad credentials", ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password", ""},
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized, "Authentication required", ""},
		{"workout missing", ErrWorkoutNotFound, http.StatusNotFound, "Workout not found", ""},
		{"goal missing", ErrGoalNotFound, http.StatusNotFound, "Goal not found", ""},
		{"database", DatabaseError("list workouts", errors.New("timeout")), http.StatusInternalServerError, "Server error", ""},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "Server error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set("trace_id", "trace-1")

			HandleServiceError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Message)
			assert.Equal(t, tt.field, body.Field)
			assert.Equal(t, "trace-1", body.TraceID)
		})
	}
}

func TestDatabaseErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := DatabaseError("get goal", cause)

	assert.ErrorIs(t, err, ErrDatabaseError)
	assert.Contains(t, err.Error(), "get goal")
	assert.Contains(t, err.Error(), "connection refused")
}
