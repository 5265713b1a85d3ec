// Package metrics defines the custom Prometheus metrics for the course
// enrollment API. It is the single source of truth for metric names,
// labels, and help strings; metrics register with the default registry at
// package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "educourse"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// CoursesCreatedTotal counts newly created courses.
// Label:
//   - level: "BEGINNER", "INTERMEDIATE", or "ADVANCED"
var CoursesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "courses_created_total",
		Help:      "Total number of courses created, by level.",
	},
	[]string{"level"},
)

// EnrollmentsTotal counts successful enrollments.
// Label:
//   - role: "STUDENT" or "PROFESSOR"
var EnrollmentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollments_total",
		Help:      "Total number of successful enrollments, by role.",
	},
	[]string{"role"},
)

// EnrollmentErrorsTotal counts rejected enrollment operations.
// Label:
//   - reason: "course_not_found", "already_enrolled", "not_enrolled",
//     or "last_professor"
var EnrollmentErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrollment_errors_total",
		Help:      "Total number of enrollment operations rejected by an invariant.",
	},
	[]string{"reason"},
)

// UnenrollmentsTotal counts successful unenrollments.
var UnenrollmentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "unenrollments_total",
		Help:      "Total number of successful unenrollments.",
	},
)
