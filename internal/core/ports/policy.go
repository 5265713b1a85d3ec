package ports

import (
	"context"

	"github.com/educourse/course-system/internal/core/domain"
)

// AuthorizationPolicy decides whether an identity may perform a privileged
// action on a course. Decisions always re-read the enrollment ledger:
// nothing is cached on the identity, so a concurrent enrollment change is
// visible on the next check.
type AuthorizationPolicy interface {
	HasRole(ctx context.Context, userID, courseID string, role domain.EnrollmentRole) (bool, error)
	CanEditCourse(ctx context.Context, userID, courseID string) (bool, error)
}
