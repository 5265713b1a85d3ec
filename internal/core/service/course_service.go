package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/educourse/course-system/internal/core/domain"
	"github.com/educourse/course-system/internal/core/ports"
)

// CourseService implements catalog reads and professor-guarded writes.
type CourseService struct {
	courses     ports.CourseRepository
	enrollments ports.EnrollmentRepository
	policy      ports.AuthorizationPolicy
	logger      zerolog.Logger
}

func NewCourseService(courses ports.CourseRepository, enrollments ports.EnrollmentRepository, policy ports.AuthorizationPolicy, logger zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, enrollments: enrollments, policy: policy, logger: logger}
}

// List returns all courses, newest first, each carrying its enrollment list.
// When viewerID is non-empty the viewer's own enrollment is attached.
func (s *CourseService) List(ctx context.Context, viewerID string) ([]*ports.CourseView, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*ports.CourseView, 0, len(courses))
	for _, course := range courses {
		view, err := s.buildView(ctx, course, viewerID)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *CourseService) Get(ctx context.Context, id, viewerID string) (*ports.CourseView, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, course, viewerID)
}

// Create inserts the course together with a PROFESSOR enrollment for the
// creator as one transaction, so the course is never observable without a
// professor.
func (s *CourseService) Create(ctx context.Context, creatorID string, input ports.CreateCourseInput) (*ports.CourseView, error) {
	if !input.Level.IsValid() {
		input.Level = domain.LevelBeginner
	}

	now := time.Now().UTC()
	course := &domain.Course{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Level:       input.Level,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.courses.CreateWithProfessor(ctx, course, creatorID); err != nil {
		s.logger.Error().Err(err).Str("user_id", creatorID).Msg("failed to create course")
		return nil, err
	}

	s.logger.Info().Str("course_id", course.ID).Str("user_id", creatorID).Msg("course created")

	return s.buildView(ctx, course, creatorID)
}

// Update applies a partial patch to a course. The caller must hold a
// PROFESSOR enrollment on it; the check re-reads the ledger at call time.
func (s *CourseService) Update(ctx context.Context, userID, courseID string, input ports.UpdateCourseInput) (*ports.CourseView, error) {
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.policy.CanEditCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		course.Title = *input.Title
	}
	if input.Description != nil {
		course.Description = *input.Description
	}
	if input.Level != nil && input.Level.IsValid() {
		course.Level = *input.Level
	}
	course.UpdatedAt = time.Now().UTC()

	if err := s.courses.Update(ctx, course); err != nil {
		s.logger.Error().Err(err).Str("course_id", courseID).Msg("failed to update course")
		return nil, err
	}

	s.logger.Info().Str("course_id", courseID).Str("user_id", userID).Msg("course updated")
	return s.buildView(ctx, course, userID)
}

func (s *CourseService) buildView(ctx context.Context, course *domain.Course, viewerID string) (*ports.CourseView, error) {
	enrollments, err := s.enrollments.ListByCourse(ctx, course.ID)
	if err != nil {
		return nil, err
	}

	view := &ports.CourseView{Course: course, Enrollments: enrollments}
	if viewerID != "" {
		for _, e := range enrollments {
			if e.UserID == viewerID {
				view.UserEnrollment = e
				break
			}
		}
	}
	return view, nil
}
