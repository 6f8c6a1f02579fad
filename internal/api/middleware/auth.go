package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tasktrail/task-api/internal/api/metrics"
	"github.com/tasktrail/task-api/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	// ContextUser holds the resolved *domain.User.
	ContextUser = "auth_user"
	// ContextToken holds the raw bearer token (needed by logout).
	ContextToken = "auth_token"
)

// Auth validates the bearer token and resolves the acting user.
// A request fails with 401 when the header is missing or malformed, the token
// does not decode, the token has been revoked, or the token's subject no
// longer matches an existing account (user deleted after issuance).
func Auth(issuer ports.TokenIssuer, users ports.UserRepository, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}
			raw := parts[1]

			subject, _, err := issuer.Decode(raw)
			if err != nil {
				metrics.RequestsRejectedTotal.WithLabelValues("bad_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			revoked, err := denylist.IsRevoked(c.Request().Context(), raw)
			if err != nil {
				return err
			}
			if revoked {
				metrics.RequestsRejectedTotal.WithLabelValues("revoked_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			user, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				metrics.RequestsRejectedTotal.WithLabelValues("bad_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid user")
			}

			c.Set(ContextUser, user)
			c.Set(ContextToken, raw)

			return next(c)
		}
	}
}
