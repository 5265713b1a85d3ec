package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/educourse/course-system/internal/core/domain"
	"github.com/educourse/course-system/internal/core/ports"
)

// EnrollmentService guards writes to the enrollment ledger.
type EnrollmentService struct {
	enrollments ports.EnrollmentRepository
	courses     ports.CourseRepository
	logger      zerolog.Logger
}

func NewEnrollmentService(enrollments ports.EnrollmentRepository, courses ports.CourseRepository, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{enrollments: enrollments, courses: courses, logger: logger}
}

// Enroll adds the user to a course. The role defaults to STUDENT. A user
// holds at most one enrollment per course; the unique index on
// (user_id, course_id) rejects a concurrent duplicate even when the
// pre-check below passes.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID string, role domain.EnrollmentRole) (*domain.Enrollment, error) {
	if role == "" {
		role = domain.RoleStudent
	}

	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		return nil, err
	}

	if _, err := s.enrollments.FindByUserAndCourse(ctx, userID, courseID); err == nil {
		return nil, domain.ErrAlreadyEnrolled
	} else if !errors.Is(err, domain.ErrNotEnrolled) {
		return nil, err
	}

	enrollment := &domain.Enrollment{
		ID:         uuid.NewString(),
		UserID:     userID,
		CourseID:   courseID,
		Role:       role,
		EnrolledAt: time.Now().UTC(),
	}

	created, err := s.enrollments.Create(ctx, enrollment)
	if err != nil {
		if !errors.Is(err, domain.ErrAlreadyEnrolled) {
			s.logger.Error().Err(err).Str("user_id", userID).Str("course_id", courseID).Msg("failed to create enrollment")
		}
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("course_id", courseID).Str("role", string(role)).Msg("enrolled")
	return created, nil
}

// Unenroll removes the user's enrollment on a course. The repository runs
// the not-enrolled check, the last-professor count, and the delete inside a
// single transaction with the course's rows locked, so two professors of a
// two-professor course racing here cannot both succeed.
func (s *EnrollmentService) Unenroll(ctx context.Context, userID, courseID string) error {
	if err := s.enrollments.Unenroll(ctx, userID, courseID); err != nil {
		if !errors.Is(err, domain.ErrNotEnrolled) && !errors.Is(err, domain.ErrLastProfessor) {
			s.logger.Error().Err(err).Str("user_id", userID).Str("course_id", courseID).Msg("failed to unenroll")
		}
		return err
	}

	s.logger.Info().Str("user_id", userID).Str("course_id", courseID).Msg("unenrolled")
	return nil
}

// ListForUser returns the user's enrollments, newest first, with courses
// populated.
func (s *EnrollmentService) ListForUser(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
	return s.enrollments.ListByUser(ctx, userID)
}
