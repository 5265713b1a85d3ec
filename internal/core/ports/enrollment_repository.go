package ports

import (
	"context"

	"github.com/educourse/course-system/internal/core/domain"
)

// EnrollmentRepository is the authoritative ledger of user↔course relations.
// Every authorization decision is re-derived from it at call time.
type EnrollmentRepository interface {
	// Create inserts a new enrollment. Returns domain.ErrAlreadyEnrolled when
	// a row for the same (user, course) pair already exists; the unique index
	// on that pair is the backstop under concurrent enrolls.
	Create(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error)

	// Unenroll removes the caller's enrollment on a course. It runs as one
	// transaction that locks the course's enrollment rows before counting, so
	// concurrent unenrolls cannot drop a course's professor count to zero.
	// Returns domain.ErrNotEnrolled when no row matches, and
	// domain.ErrLastProfessor when the row is the course's only PROFESSOR.
	Unenroll(ctx context.Context, userID, courseID string) error

	// FindByUserAndCourse returns the user's enrollment on a course, or
	// domain.ErrNotEnrolled.
	FindByUserAndCourse(ctx context.Context, userID, courseID string) (*domain.Enrollment, error)

	// HasRole reports whether an enrollment exists with exactly this
	// (user, course, role) triple. No role hierarchy is applied.
	HasRole(ctx context.Context, userID, courseID string, role domain.EnrollmentRole) (bool, error)

	// ListByCourse returns a course's enrollments with User populated.
	ListByCourse(ctx context.Context, courseID string) ([]*domain.Enrollment, error)

	// ListByUser returns a user's enrollments with Course populated,
	// ordered by enrollment time, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error)
}
