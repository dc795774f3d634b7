package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTraceIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("trace_id")) })

	incoming := uuid.NewString()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", incoming)
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get("X-Trace-ID"))
	assert.Equal(t, incoming, w.Body.String())

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "<script>")
	r.ServeHTTP(w, req)
	generated := w.Header().Get("X-Trace-ID")
	assert.NotEqual(t, "<script>", generated)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
}

func TestRecovery_Returns500Body(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware(), Recovery(zap.NewNop()))
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"message":"Server error"`)
	assert.NotContains(t, w.Body.String(), "kaboom")
}
