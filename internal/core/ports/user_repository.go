package ports

import (
	"context"

	"github.com/educourse/course-system/internal/core/domain"
)

// UserRepository defines persistence operations for the credential store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail retrieves a user by exact (case-sensitive) email match.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
