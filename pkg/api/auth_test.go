package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestExtractAuthor(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "forwarded user wins",
			headers:  map[string]string{"X-Forwarded-User": "alice", "X-Forwarded-Email": "alice@example.com"},
			expected: "alice",
		},
		{
			name:     "falls back to forwarded email",
			headers:  map[string]string{"X-Forwarded-Email": "bob@example.com"},
			expected: "bob@example.com",
		},
		{
			name:     "falls back to remote user",
			headers:  map[string]string{"X-Remote-User": "carol"},
			expected: "carol",
		},
		{
			name:     "defaults to api-client",
			headers:  nil,
			expected: "api-client",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			e := echo.New()
			e.GET("/test", func(c *echo.Context) error {
				got = extractAuthor(c)
				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, got)
		})
	}
}
