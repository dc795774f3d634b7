package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindItem struct {
	Name string `json:"name" binding:"required"`
}

type bindRequest struct {
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=6"`
	Kind     string     `json:"kind" binding:"omitempty,oneof=a b"`
	Count    int        `json:"count" binding:"omitempty,gt=0"`
	Items    []bindItem `json:"items" binding:"omitempty,dive"`
}

func bindBody(t *testing.T, body string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	UseJSONFieldNames()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req bindRequest
	return w, BindJSON(c, &req)
}

func TestBindJSON_FieldErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		field   string
		message string
	}{
		{"missing email", `{"password":"secret1"}`, "email", "email is required"},
		{"bad email", `{"email":"nope","password":"secret1"}`, "email", "email must be a valid email"},
		{"short password", `{"email":"a@b.co","password":"123"}`, "password", "password must be at least 6 characters"},
		{"oneof", `{"email":"a@b.co","password":"secret1","kind":"c"}`, "kind", "kind must be one of: a b"},
		{"gt", `{"email":"a@b.co","password":"secret1","count":-1}`, "count", "count must be greater than 0"},
		{"nested", `{"email":"a@b.co","password":"secret1","items":[{"name":"x"},{}]}`, "items[1].name", "items[1].name is required"},
		{"wrong type", `{"email":"a@b.co","password":"secret1","count":"many"}`, "count", "count must be a number"},
		{"malformed", `{"email":`, "body", "Invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := bindBody(t, tt.body)
			require.False(t, ok)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			var body APIError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.field, body.Field)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestBindJSON_Valid(t *testing.T) {
	_, ok := bindBody(t, `{"email":"a@b.co","password":"secret1","items":[{"name":"x"}]}`)
	assert.True(t, ok)
}
