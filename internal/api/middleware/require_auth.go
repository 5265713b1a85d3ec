package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/educourse/course-system/internal/core/domain"
)

// RequireAuth rejects requests that carry no resolved identity. It must run
// after Auth on the same route group.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(IdentityKey).(*domain.User); !ok {
				return domain.ErrUnauthenticated
			}
			return next(c)
		}
	}
}
