package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// CSRF issues an anti-forgery token cookie on safe requests and
// requires the X-CSRF-Token header on POST/PUT/DELETE. A missing or
// invalid token yields 403 regardless of what the handler would do.
func CSRF() echo.MiddlewareFunc {
	return echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup: "header:X-CSRF-Token",
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusForbidden, "missing or invalid anti-forgery token")
		},
	})
}
