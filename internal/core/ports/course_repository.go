package ports

import (
	"context"

	"github.com/educourse/course-system/internal/core/domain"
)

// CourseRepository defines persistence operations for the course catalog.
type CourseRepository interface {
	// CreateWithProfessor inserts the course and a PROFESSOR enrollment for
	// creatorID as one transaction. A course is never observable without at
	// least one professor.
	CreateWithProfessor(ctx context.Context, course *domain.Course, creatorID string) error

	FindByID(ctx context.Context, id string) (*domain.Course, error)
	// List returns all courses ordered by creation time, newest first.
	List(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, course *domain.Course) error
}
