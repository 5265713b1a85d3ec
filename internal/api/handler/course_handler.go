package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/educourse/course-system/internal/api/metrics"
	"github.com/educourse/course-system/internal/core/domain"
	"github.com/educourse/course-system/internal/core/ports"
)

// CourseHandler handles HTTP requests for catalog reads and writes.
type CourseHandler struct {
	courses ports.CourseService
	policy  ports.AuthorizationPolicy
}

func NewCourseHandler(courses ports.CourseService, policy ports.AuthorizationPolicy) *CourseHandler {
	return &CourseHandler{courses: courses, policy: policy}
}

type createCourseRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Level       string `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED"`
}

type updateCourseRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Level       *string `json:"level" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
}

type canEditResponse struct {
	CanEdit bool `json:"can_edit"`
}

// List returns every course, newest first. Authenticated callers see their
// own enrollment attached to each course.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}  ports.CourseView
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	views, err := h.courses.List(c.Request().Context(), ctxViewerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get returns one course by id.
//
// @Summary      Get a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  ports.CourseView
// @Failure      404  {object}  map[string]string
// @Router       /courses/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	view, err := h.courses.Get(c.Request().Context(), c.Param("id"), ctxViewerID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// CanEdit reports whether the caller may edit the course. Anonymous callers
// always get false.
//
// @Summary      Check edit permission on a course
// @Tags         courses
// @Produce      json
// @Param        id   path      string  true  "Course id"
// @Success      200  {object}  canEditResponse
// @Router       /courses/{id}/can-edit [get]
func (h *CourseHandler) CanEdit(c echo.Context) error {
	viewerID := ctxViewerID(c)
	if viewerID == "" {
		return c.JSON(http.StatusOK, canEditResponse{CanEdit: false})
	}

	allowed, err := h.policy.CanEditCourse(c.Request().Context(), viewerID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, canEditResponse{CanEdit: allowed})
}

// Create inserts a new course; the caller becomes its first professor.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        body  body      createCourseRequest  true  "Course fields"
// @Success      201   {object}  ports.CourseView
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Security     BearerAuth
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.courses.Create(c.Request().Context(), user.ID, ports.CreateCourseInput{
		Title:       req.Title,
		Description: req.Description,
		Level:       domain.CourseLevel(req.Level),
	})
	if err != nil {
		return err
	}

	metrics.CoursesCreatedTotal.WithLabelValues(string(view.Level)).Inc()
	return c.JSON(http.StatusCreated, view)
}

// Update applies a partial patch to a course. Requires a PROFESSOR
// enrollment on it.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Course id"
// @Param        body  body      updateCourseRequest  true  "Fields to change"
// @Success      200   {object}  ports.CourseView
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Security     BearerAuth
// @Router       /courses/{id} [patch]
func (h *CourseHandler) Update(c echo.Context) error {
	user, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Level != nil {
		level := domain.CourseLevel(*req.Level)
		input.Level = &level
	}

	view, err := h.courses.Update(c.Request().Context(), user.ID, c.Param("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
