package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tasktrail/task-api/internal/api/middleware"
	"github.com/tasktrail/task-api/internal/core/domain"
)

// ctxUser extracts the user resolved by the Auth middleware. Its presence
// proves the middleware ran; a route that reaches a handler without it is a
// wiring bug and fails closed with 401.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.ContextUser).(*domain.User)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// ctxToken extracts the raw bearer token stored by the Auth middleware.
func ctxToken(c echo.Context) (string, error) {
	raw, ok := c.Get(middleware.ContextToken).(string)
	if !ok || raw == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return raw, nil
}
