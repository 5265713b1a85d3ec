package service

import (
	"context"

	"github.com/educourse/course-system/internal/core/domain"
	"github.com/educourse/course-system/internal/core/ports"
)

// Policy answers authorization questions by reading the enrollment ledger.
// Every check hits the store: roles are never cached on the identity, so a
// concurrent enrollment change is visible on the next call.
type Policy struct {
	enrollments ports.EnrollmentRepository
}

func NewPolicy(enrollments ports.EnrollmentRepository) *Policy {
	return &Policy{enrollments: enrollments}
}

// HasRole reports whether the user holds exactly this role on the course.
// PROFESSOR does not imply STUDENT, nor the reverse.
func (p *Policy) HasRole(ctx context.Context, userID, courseID string, role domain.EnrollmentRole) (bool, error) {
	return p.enrollments.HasRole(ctx, userID, courseID, role)
}

// CanEditCourse reports whether the user holds a PROFESSOR enrollment on
// the course.
func (p *Policy) CanEditCourse(ctx context.Context, userID, courseID string) (bool, error) {
	return p.HasRole(ctx, userID, courseID, domain.RoleProfessor)
}
