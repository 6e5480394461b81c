package internalhttp

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Register attaches unversioned service endpoints.
func Register(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
}
