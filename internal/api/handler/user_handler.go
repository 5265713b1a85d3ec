package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/educourse/course-system/internal/core/domain"
	"github.com/educourse/course-system/internal/core/ports"
)

// UserHandler serves the authenticated caller's own data.
type UserHandler struct {
	enrollments ports.EnrollmentService
}

func NewUserHandler(enrollments ports.EnrollmentService) *UserHandler {
	return &UserHandler{enrollments: enrollments}
}

type meResponse struct {
	*domain.User
	Enrollments []*domain.Enrollment `json:"enrollments"`
}

// Me returns the caller's identity with their enrollments.
//
// @Summary      Get the current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  meResponse
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	enrollments, err := h.enrollments.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{User: user, Enrollments: enrollments})
}

// MyEnrollments returns the caller's enrollments, newest first.
//
// @Summary      List the current user's enrollments
// @Tags         users
// @Produce      json
// @Success      200  {array}  domain.Enrollment
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /me/enrollments [get]
func (h *UserHandler) MyEnrollments(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	enrollments, err := h.enrollments.ListForUser(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enrollments)
}
