package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/educourse/course-system/docs"
	"github.com/educourse/course-system/internal/api/handler"
	"github.com/educourse/course-system/internal/api/middleware"
	"github.com/educourse/course-system/internal/core/service"
	"github.com/educourse/course-system/internal/infrastructure/config"
	"github.com/educourse/course-system/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The store handle is injected into every repository; nothing here holds
// global state.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("educourse"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	courseRepo := postgres.NewCourseRepository(db)
	enrollmentRepo := postgres.NewEnrollmentRepository(db)

	// --- Services ---
	policy := service.NewPolicy(enrollmentRepo)
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.TTL, log)
	courseService := service.NewCourseService(courseRepo, enrollmentRepo, policy, log)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, courseRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService, policy)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	userHandler := handler.NewUserHandler(enrollmentService)

	// Token resolution runs on every route; it only annotates the request
	// and never rejects it. RequireAuth guards the privileged routes.
	e.Use(middleware.Auth(authService))
	requireAuth := middleware.RequireAuth()

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Course routes ---
	e.GET("/courses", courseHandler.List)
	e.GET("/courses/:id", courseHandler.Get)
	e.GET("/courses/:id/can-edit", courseHandler.CanEdit)
	e.POST("/courses", courseHandler.Create, requireAuth)
	e.PATCH("/courses/:id", courseHandler.Update, requireAuth)

	// --- Enrollment routes ---
	e.POST("/courses/:id/enroll", enrollmentHandler.Enroll, requireAuth)
	e.DELETE("/courses/:id/enroll", enrollmentHandler.Unenroll, requireAuth)

	// --- Current-user routes ---
	e.GET("/me", userHandler.Me, requireAuth)
	e.GET("/me/enrollments", userHandler.MyEnrollments, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
