package domain

import "errors"

// Sentinel errors surfaced to the API boundary. Each maps to a fixed HTTP
// status and a user-facing message in the central error handler.
var (
	// ErrUnauthenticated is returned when a privileged operation is
	// attempted without a resolved identity.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password, so login never leaks whether an account exists.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrForbidden is returned when the caller is authenticated but lacks
	// the required role on the target course.
	ErrForbidden = errors.New("you do not have permission to edit this course")

	ErrUserNotFound   = errors.New("user not found")
	ErrUserExists     = errors.New("user already exists")
	ErrCourseNotFound = errors.New("course not found")

	// Enrollment-invariant violations.
	ErrAlreadyEnrolled = errors.New("you are already enrolled in this course")
	ErrNotEnrolled     = errors.New("you are not enrolled in this course")
	ErrLastProfessor   = errors.New("cannot unenroll: you are the only professor for this course")
)
