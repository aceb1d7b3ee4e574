package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/crypto/bcrypt"
)

// BasicAuth checks credentials against an injected username and bcrypt
// password hash. Unauthenticated requests get 401 before any handler
// runs.
func BasicAuth(username, passwordHash string) echo.MiddlewareFunc {
	return echomw.BasicAuth(func(user, password string, c echo.Context) (bool, error) {
		if subtle.ConstantTimeCompare([]byte(user), []byte(username)) != 1 {
			return false, nil
		}
		if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
			return false, nil
		}
		return true, nil
	})
}
