package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxUsername extracts the username claim injected by the Auth middleware.
// An empty username means the middleware did not run on this route, which
// is a wiring mistake — reject with 401 rather than proceeding.
func ctxUsername(c echo.Context) (string, error) {
	username, _ := c.Get("username").(string)
	if username == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return username, nil
}
