package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskdeck/todo-api/internal/core/domain"
)

// ctxIdentity extracts the Identity injected by the Auth middleware. Its
// presence proves the middleware ran; a protected handler reached without it
// is a wiring bug and fails closed with 401.
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	ident, _ := c.Get("identity").(*domain.Identity)
	if ident == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ident, nil
}
