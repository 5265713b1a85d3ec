package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/educourse/course-system/internal/api/metrics"
	"github.com/educourse/course-system/internal/core/domain"
	"github.com/educourse/course-system/internal/core/ports"
)

// EnrollmentHandler handles HTTP requests for the enrollment ledger.
type EnrollmentHandler struct {
	enrollments ports.EnrollmentService
}

func NewEnrollmentHandler(enrollments ports.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollments: enrollments}
}

type enrollRequest struct {
	Role string `json:"role" validate:"omitempty,oneof=STUDENT PROFESSOR"`
}

type unenrollResponse struct {
	Success bool `json:"success"`
}

// Enroll adds the caller to a course. Role defaults to STUDENT.
//
// @Summary      Enroll in a course
// @Tags         enrollments
// @Accept       json
// @Produce      json
// @Param        id    path      string         true   "Course id"
// @Param        body  body      enrollRequest  false  "Enrollment role"
// @Success      201   {object}  domain.Enrollment
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /courses/{id}/enroll [post]
func (h *EnrollmentHandler) Enroll(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req enrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	enrollment, err := h.enrollments.Enroll(c.Request().Context(), user.ID, c.Param("id"), domain.EnrollmentRole(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCourseNotFound):
			metrics.EnrollmentErrorsTotal.WithLabelValues("course_not_found").Inc()
		case errors.Is(err, domain.ErrAlreadyEnrolled):
			metrics.EnrollmentErrorsTotal.WithLabelValues("already_enrolled").Inc()
		}
		return err
	}

	metrics.EnrollmentsTotal.WithLabelValues(string(enrollment.Role)).Inc()
	return c.JSON(http.StatusCreated, enrollment)
}

// Unenroll removes the caller's enrollment from a course. A course's last
// professor cannot unenroll.
//
// @Summary      Unenroll from a course
// @Tags         enrollments
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  unenrollResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Security     BearerAuth
// @Router       /courses/{id}/enroll [delete]
func (h *EnrollmentHandler) Unenroll(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.enrollments.Unenroll(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotEnrolled):
			metrics.EnrollmentErrorsTotal.WithLabelValues("not_enrolled").Inc()
		case errors.Is(err, domain.ErrLastProfessor):
			metrics.EnrollmentErrorsTotal.WithLabelValues("last_professor").Inc()
		}
		return err
	}

	metrics.UnenrollmentsTotal.Inc()
	return c.JSON(http.StatusOK, unenrollResponse{Success: true})
}
