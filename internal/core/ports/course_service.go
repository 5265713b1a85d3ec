package ports

import (
	"context"

	"github.com/educourse/course-system/internal/core/domain"
)

// CreateCourseInput carries the fields for a new course. All are required.
type CreateCourseInput struct {
	Title       string
	Description string
	Level       domain.CourseLevel
}

// UpdateCourseInput is a partial patch; nil fields are left untouched.
type UpdateCourseInput struct {
	Title       *string
	Description *string
	Level       *domain.CourseLevel
}

// CourseView is a course decorated for a specific viewer: the full
// enrollment list (users included) and, when the viewer is authenticated,
// their own enrollment on the course.
type CourseView struct {
	*domain.Course
	Enrollments    []*domain.Enrollment `json:"enrollments"`
	UserEnrollment *domain.Enrollment   `json:"user_enrollment,omitempty"`
}

// CourseService implements catalog reads and professor-guarded writes.
// viewerID is empty for anonymous callers.
type CourseService interface {
	List(ctx context.Context, viewerID string) ([]*CourseView, error)
	Get(ctx context.Context, id, viewerID string) (*CourseView, error)

	// Create inserts the course and enrolls the creator as its first
	// professor atomically.
	Create(ctx context.Context, creatorID string, input CreateCourseInput) (*CourseView, error)

	// Update applies a partial patch. Requires a PROFESSOR enrollment on the
	// course; returns domain.ErrForbidden otherwise.
	Update(ctx context.Context, userID, courseID string, input UpdateCourseInput) (*CourseView, error)
}
