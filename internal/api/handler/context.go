package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/educourse/course-system/internal/api/middleware"
	"github.com/educourse/course-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware.
// Privileged handlers call it after RequireAuth, but the guard here keeps
// them correct even when wired onto an unguarded route.
func ctxIdentity(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.IdentityKey).(*domain.User)
	if !ok || user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// ctxViewerID returns the authenticated user's id, or "" for anonymous
// requests. Used by read handlers whose response is annotated per viewer.
func ctxViewerID(c echo.Context) string {
	if user, ok := c.Get(middleware.IdentityKey).(*domain.User); ok && user != nil {
		return user.ID
	}
	return ""
}
