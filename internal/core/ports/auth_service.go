package ports

import (
	"context"

	"github.com/educourse/course-system/internal/core/domain"
)

// AuthService implements registration, login, and token resolution.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)

	// Login authenticates by email and password and returns a signed bearer
	// token plus the identity. Unknown email and wrong password both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Resolve maps a bearer token back to its identity. Any failure
	// (malformed token, bad signature, expiry, unknown user) yields
	// (nil, nil): callers treat the request as anonymous, never as an error.
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
