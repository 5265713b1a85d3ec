package ports

import (
	"context"

	"github.com/educourse/course-system/internal/core/domain"
)

// EnrollmentService implements the enroll/unenroll operations and the
// ledger reads backing "me" queries.
type EnrollmentService interface {
	// Enroll adds the user to a course with the given role (STUDENT when
	// empty). Fails with domain.ErrCourseNotFound or domain.ErrAlreadyEnrolled.
	Enroll(ctx context.Context, userID, courseID string, role domain.EnrollmentRole) (*domain.Enrollment, error)

	// Unenroll removes the user's enrollment, refusing to remove a course's
	// last professor. Fails with domain.ErrNotEnrolled or domain.ErrLastProfessor.
	Unenroll(ctx context.Context, userID, courseID string) error

	// ListForUser returns the user's enrollments with courses populated,
	// newest first.
	ListForUser(ctx context.Context, userID string) ([]*domain.Enrollment, error)
}
