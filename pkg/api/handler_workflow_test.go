package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

// Query-validation paths run before any service call, so a zero Server is
// enough to exercise them.

func TestListWorkflowsValidation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.GET("/api/v1/workflows", s.listWorkflowsHandler)

	tests := []struct {
		name  string
		query string
	}{
		{"invalid status", "?status=sideways"},
		{"invalid request_type", "?request_type=NOT_A_TYPE"},
		{"invalid created_after", "?created_after=yesterday"},
		{"invalid created_before", "?created_before=13/01/2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/workflows"+tt.query, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestWorkflowEventsValidation(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.GET("/api/v1/workflows/:id/events", s.workflowEventsHandler)

	tests := []struct {
		name  string
		query string
	}{
		{"invalid stage", "?stage=nonsense"},
		{"negative after_sequence", "?after_sequence=-5"},
		{"non-numeric after_sequence", "?after_sequence=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/workflows/wf-1/events"+tt.query, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestReplanRequiresFeedback(t *testing.T) {
	s := &Server{}
	e := echo.New()
	e.POST("/api/v1/plans/:id/replan", s.replanHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plans/p-1/replan", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
