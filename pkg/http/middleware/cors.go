package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The API is read-mostly JSON, so the method and header allow-lists are
// fixed; only the origins vary per deployment.
const (
	corsMethods = "GET, POST, OPTIONS"
	corsHeaders = "Origin, Content-Type, Accept"
)

// CORS lets browser dashboards on the given origins call the API.
// "*" allows any origin. Requests from other origins pass through
// without CORS headers.
func CORS(allowOrigins ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := c.Request().Header.Get("Origin")

			allowed := ""
			for _, o := range allowOrigins {
				if o == "*" {
					allowed = "*"
					break
				}
				if o == origin && origin != "" {
					allowed = origin
					break
				}
			}
			if allowed == "" {
				return next(c)
			}

			h := c.Response().Header()
			h.Set("Access-Control-Allow-Origin", allowed)
			h.Set("Access-Control-Allow-Methods", corsMethods)
			h.Set("Access-Control-Allow-Headers", corsHeaders)

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusNoContent)
			}
			return next(c)
		}
	}
}
