package api

import (
	echo "github.com/labstack/echo/v5"
)

// authorHeaders in priority order: oauth2-proxy identity headers first,
// then the generic remote-user header set by auth proxies.
var authorHeaders = []string{"X-Forwarded-User", "X-Forwarded-Email", "X-Remote-User"}

// extractAuthor resolves who is making the request for approval decisions
// and audit fields. Unauthenticated access records "api-client".
func extractAuthor(c *echo.Context) string {
	for _, h := range authorHeaders {
		if v := c.Request().Header.Get(h); v != "" {
			return v
		}
	}
	return "api-client"
}
