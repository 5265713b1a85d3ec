package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/educourse/course-system/internal/core/ports"
)

// IdentityKey is the echo context key holding the resolved *domain.User.
const IdentityKey = "identity"

// Auth resolves the optional bearer token into an identity and injects it
// into the request context. A missing, malformed, expired, or otherwise
// invalid token leaves the request anonymous; it never fails the request
// by itself. Operations that require authentication are guarded separately
// by RequireAuth.
func Auth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get("Authorization"))
			if token != "" {
				user, err := auth.Resolve(c.Request().Context(), token)
				if err == nil && user != nil {
					c.Set(IdentityKey, user)
				}
			}
			return next(c)
		}
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
