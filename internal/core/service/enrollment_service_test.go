package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/educourse/course-system/internal/core/domain"
)

func seedCourse(t *testing.T, courses *stubCourseRepo, id, professorID string) {
	t.Helper()
	err := courses.CreateWithProfessor(context.Background(), &domain.Course{
		ID:        id,
		Title:     "Course " + id,
		Level:     domain.LevelBeginner,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}, professorID)
	if err != nil {
		t.Fatalf("seed course: %v", err)
	}
}

func TestEnrollmentService_Enroll_DefaultsToStudent(t *testing.T) {
	ledger := newStubEnrollmentRepo()
	courses := newStubCourseRepo(ledger)
	svc := NewEnrollmentService(ledger, courses, zerolog.Nop())
	seedCourse(t, courses, "go-101", "prof-1")

	enrollment, err := svc.Enroll(context.Background(), "student-1", "go-101", "")
	if err != nil {
		t.Fatalf("Enroll returned error: %v", err)
	}
	if enrollment.Role != domain.RoleStudent {
		t.Fatalf("expected STUDENT default, got %s", enrollment.Role)
	}
	if enrollment.EnrolledAt.IsZero() {
		t.Fatalf("expected enrolledAt to be set")
	}
}

func TestEnrollmentService_Enroll_CourseNotFound(t *testing.T) {
	ledger := newStubEnrollmentRepo()
	courses := newStubCourseRepo(ledger)
	svc := NewEnrollmentService(ledger, courses, zerolog.Nop())

	if _, err := svc.Enroll(context.Background(), "student-1", "ghost", ""); !errors.Is(err, domain.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestEnrollmentService_Enroll_TwiceYieldsAlreadyEnrolled(t *testing.T) {
	ledger := newStubEnrollmentRepo()
	courses := newStubCourseRepo(ledger)
	svc := NewEnrollmentService(ledger, courses, zerolog.Nop())
	seedCourse(t, courses, "go-101", "prof-1")

	if _, err := svc.Enroll(context.Background(), "student-1", "go-101", domain.RoleStudent); err != nil {
		t.Fatalf("first enroll failed: %v", err)
	}
	if _, err := svc.Enroll(context.Background(), "student-1", "go-101", domain.RoleStudent); !errors.Is(err, domain.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled, got %v", err)
	}
	// a different role does not help: one enrollment per (user, course)
	if _, err := svc.Enroll(context.Background(), "student-1", "go-101", domain.RoleProfessor); !errors.Is(err, domain.ErrAlreadyEnrolled) {
		t.Fatalf("expected ErrAlreadyEnrolled for role change, got %v", err)
	}
}

func TestEnrollmentService_Unenroll_NotEnrolled(t *testing.T) {
	ledger := newStubEnrollmentRepo()
	courses := newStubCourseRepo(ledger)
	svc := NewEnrollmentService(ledger, courses, zerolog.Nop())
	seedCourse(t, courses, "go-101", "prof-1")

	if err := svc.Unenroll(context.Background(), "student-1", "go-101"); !errors.Is(err, domain.ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

func TestEnrollmentService_Unenroll_SoleProfessorIsBlocked(t *testing.T) {
	ledger := newStubEnrollmentRepo()
	courses := newStubCourseRepo(ledger)
	svc := NewEnrollmentService(ledger, courses, zerolog.Nop())
	seedCourse(t, courses, "go-101", "prof-1")

	if err := svc.Unenroll(context.Background(), "prof-1", "go-101"); !errors.Is(err, domain.ErrLastProfessor) {
		t.Fatalf("expected ErrLastProfessor, got %v", err)
	}

	// the enrollment row must survive the failed attempt
	if _, err := ledger.FindByUserAndCourse(context.Background(), "prof-1", "go-101"); err != nil {
		t.Fatalf("professor enrollment was removed: %v", err)
	}
}

func TestEnrollmentService_Unenroll_SecondProfessorMayLeave(t *testing.T) {
	ledger := newStubEnrollmentRepo()
	courses := newStubCourseRepo(ledger)
	svc := NewEnrollmentService(ledger, courses, zerolog.Nop())
	seedCourse(t, courses, "go-101", "prof-1")

	if _, err := svc.Enroll(context.Background(), "prof-2", "go-101", domain.RoleProfessor); err != nil {
		t.Fatalf("enroll second professor: %v", err)
	}
	if err := svc.Unenroll(context.Background(), "prof-2", "go-101"); err != nil {
		t.Fatalf("second professor could not leave: %v", err)
	}
	if got := ledger.professorCount("go-101"); got != 1 {
		t.Fatalf("expected 1 professor left, got %d", got)
	}
}

func TestEnrollmentService_Unenroll_StudentMayAlwaysLeave(t *testing.T) {
	ledger := newStubEnrollmentRepo()
	courses := newStubCourseRepo(ledger)
	svc := NewEnrollmentService(ledger, courses, zerolog.Nop())
	seedCourse(t, courses, "go-101", "prof-1")

	if _, err := svc.Enroll(context.Background(), "student-1", "go-101", domain.RoleStudent); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if err := svc.Unenroll(context.Background(), "student-1", "go-101"); err != nil {
		t.Fatalf("student could not leave: %v", err)
	}
}

func TestEnrollmentService_Unenroll_ConcurrentProfessorsNeverEmptyCourse(t *testing.T) {
	ledger := newStubEnrollmentRepo()
	courses := newStubCourseRepo(ledger)
	svc := NewEnrollmentService(ledger, courses, zerolog.Nop())
	seedCourse(t, courses, "go-101", "prof-1")

	if _, err := svc.Enroll(context.Background(), "prof-2", "go-101", domain.RoleProfessor); err != nil {
		t.Fatalf("enroll second professor: %v", err)
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, prof := range []string{"prof-1", "prof-2"} {
		wg.Add(1)
		go func(i int, prof string) {
			defer wg.Done()
			errs[i] = svc.Unenroll(context.Background(), prof, "go-101")
		}(i, prof)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else if !errors.Is(err, domain.ErrLastProfessor) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one unenroll to succeed, got %d", succeeded)
	}
	if got := ledger.professorCount("go-101"); got != 1 {
		t.Fatalf("professor count dropped to %d", got)
	}
}

func TestEnrollmentService_ListForUser_NewestFirst(t *testing.T) {
	ledger := newStubEnrollmentRepo()
	courses := newStubCourseRepo(ledger)
	svc := NewEnrollmentService(ledger, courses, zerolog.Nop())
	seedCourse(t, courses, "go-101", "prof-1")
	seedCourse(t, courses, "go-201", "prof-1")

	if _, err := svc.Enroll(context.Background(), "student-1", "go-101", ""); err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if _, err := svc.Enroll(context.Background(), "student-1", "go-201", ""); err != nil {
		t.Fatalf("enroll: %v", err)
	}

	list, err := svc.ListForUser(context.Background(), "student-1")
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 enrollments, got %d", len(list))
	}
	if list[0].CourseID != "go-201" {
		t.Fatalf("expected newest enrollment first, got %s", list[0].CourseID)
	}
}
