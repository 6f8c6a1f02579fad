package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"

	"github.com/tasktrail/task-api/internal/api/metrics"
	"github.com/tasktrail/task-api/internal/core/domain"
)

// APIKeyHeader is the custom header carrying the process-wide shared secret,
// distinct from per-user authentication.
const APIKeyHeader = "X-API-Key"

// APIKey rejects any request whose shared-secret header does not match key.
// It runs before the bearer check and before any business logic, on every
// route except the ops surfaces (root, health, metrics, swagger). The
// central error handler maps domain.ErrInvalidAPIKey to 403.
func APIKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			got := c.Request().Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				metrics.RequestsRejectedTotal.WithLabelValues("bad_api_key").Inc()
				return domain.ErrInvalidAPIKey
			}
			return next(c)
		}
	}
}
