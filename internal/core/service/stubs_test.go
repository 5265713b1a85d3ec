package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/educourse/course-system/internal/core/domain"
)

// In-memory doubles for the catalog and the ledger. The enrollment stub
// serialises Unenroll behind a mutex, mirroring the transactional
// count-then-delete the Postgres repository performs.

type stubCourseRepo struct {
	mu      sync.Mutex
	courses map[string]*domain.Course
	ledger  *stubEnrollmentRepo
}

func newStubCourseRepo(ledger *stubEnrollmentRepo) *stubCourseRepo {
	return &stubCourseRepo{courses: make(map[string]*domain.Course), ledger: ledger}
}

func (r *stubCourseRepo) CreateWithProfessor(_ context.Context, course *domain.Course, creatorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *course
	r.courses[course.ID] = &clone
	r.ledger.add(&domain.Enrollment{
		ID:         uuid.NewString(),
		UserID:     creatorID,
		CourseID:   course.ID,
		Role:       domain.RoleProfessor,
		EnrolledAt: time.Now().UTC(),
	})
	return nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id string) (*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.courses[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, domain.ErrCourseNotFound
}

func (r *stubCourseRepo) List(_ context.Context) ([]*domain.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Course, 0, len(r.courses))
	for _, c := range r.courses {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCourseRepo) Update(_ context.Context, course *domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.courses[course.ID]; !ok {
		return domain.ErrCourseNotFound
	}
	clone := *course
	r.courses[course.ID] = &clone
	return nil
}

type stubEnrollmentRepo struct {
	mu   sync.Mutex
	rows []*domain.Enrollment
}

func newStubEnrollmentRepo() *stubEnrollmentRepo {
	return &stubEnrollmentRepo{}
}

func (r *stubEnrollmentRepo) add(e *domain.Enrollment) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appendRow(e)
}

func (r *stubEnrollmentRepo) appendRow(e *domain.Enrollment) {
	clone := *e
	r.rows = append(r.rows, &clone)
}

func (r *stubEnrollmentRepo) Create(_ context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == e.UserID && row.CourseID == e.CourseID {
			return nil, domain.ErrAlreadyEnrolled
		}
	}
	r.appendRow(e)
	clone := *e
	return &clone, nil
}

func (r *stubEnrollmentRepo) Unenroll(_ context.Context, userID, courseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	professors := 0
	for i, row := range r.rows {
		if row.CourseID != courseID {
			continue
		}
		if row.Role == domain.RoleProfessor {
			professors++
		}
		if row.UserID == userID {
			idx = i
		}
	}

	if idx == -1 {
		return domain.ErrNotEnrolled
	}
	if r.rows[idx].Role == domain.RoleProfessor && professors == 1 {
		return domain.ErrLastProfessor
	}
	r.rows = append(r.rows[:idx], r.rows[idx+1:]...)
	return nil
}

func (r *stubEnrollmentRepo) FindByUserAndCourse(_ context.Context, userID, courseID string) (*domain.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == userID && row.CourseID == courseID {
			clone := *row
			return &clone, nil
		}
	}
	return nil, domain.ErrNotEnrolled
}

func (r *stubEnrollmentRepo) HasRole(_ context.Context, userID, courseID string, role domain.EnrollmentRole) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, row := range r.rows {
		if row.UserID == userID && row.CourseID == courseID && row.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubEnrollmentRepo) ListByCourse(_ context.Context, courseID string) ([]*domain.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Enrollment
	for _, row := range r.rows {
		if row.CourseID == courseID {
			clone := *row
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubEnrollmentRepo) ListByUser(_ context.Context, userID string) ([]*domain.Enrollment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Enrollment
	for _, row := range r.rows {
		if row.UserID == userID {
			clone := *row
			out = append(out, &clone)
		}
	}
	// newest first, matching the repository contract
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *stubEnrollmentRepo) professorCount(courseID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, row := range r.rows {
		if row.CourseID == courseID && row.Role == domain.RoleProfessor {
			n++
		}
	}
	return n
}
