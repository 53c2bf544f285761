package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	echo "github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(securityHeaders())
	e.GET("/test", func(c *echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestResponseStatus(t *testing.T) {
	newCtx := func() *echo.Context {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		return e.NewContext(req, httptest.NewRecorder())
	}

	t.Run("committed status wins", func(t *testing.T) {
		c := newCtx()
		assert.NoError(t, c.NoContent(http.StatusNoContent))
		assert.Equal(t, http.StatusNoContent, responseStatus(c, nil))
	})

	t.Run("uncommitted HTTPError reports its code", func(t *testing.T) {
		c := newCtx()
		err := echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		assert.Equal(t, http.StatusBadRequest, responseStatus(c, err))
	})

	t.Run("plain error is a 500", func(t *testing.T) {
		c := newCtx()
		assert.Equal(t, http.StatusInternalServerError, responseStatus(c, errors.New("boom")))
	})

	t.Run("no write and no error is a 200", func(t *testing.T) {
		c := newCtx()
		assert.Equal(t, http.StatusOK, responseStatus(c, nil))
	})
}

func TestBearerAuth(t *testing.T) {
	newServer := func(token string) *echo.Echo {
		e := echo.New()
		e.GET("/protected", func(c *echo.Context) error {
			return c.String(http.StatusOK, "ok")
		}, bearerAuth(token))
		return e
	}

	t.Run("empty token disables auth", func(t *testing.T) {
		e := newServer("")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		e := newServer("secret")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		e := newServer("secret")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer nope")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct token passes", func(t *testing.T) {
		e := newServer("secret")
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer secret")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
