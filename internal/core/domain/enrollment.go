package domain

import "time"

// EnrollmentRole is the role a user holds on a single course. Roles are
// scoped per (user, course) pair; there is no hierarchy between them.
type EnrollmentRole string

const (
	RoleStudent   EnrollmentRole = "STUDENT"
	RoleProfessor EnrollmentRole = "PROFESSOR"
)

// IsValid reports whether r is one of the known enrollment roles.
func (r EnrollmentRole) IsValid() bool {
	return r == RoleStudent || r == RoleProfessor
}

// Enrollment ties one user to one course with exactly one role.
// (UserID, CourseID) is unique: a user holds at most one enrollment per
// course, and changing role requires unenroll followed by enroll.
//
// User and Course are populated by the repository when the caller asked
// for them; they are nil otherwise.
type Enrollment struct {
	ID         string         `json:"id"`
	UserID     string         `json:"user_id"`
	CourseID   string         `json:"course_id"`
	Role       EnrollmentRole `json:"role"`
	EnrolledAt time.Time      `json:"enrolled_at"`

	User   *User   `json:"user,omitempty"`
	Course *Course `json:"course,omitempty"`
}
