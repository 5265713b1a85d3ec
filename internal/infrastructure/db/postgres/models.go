package postgres

import (
	"time"

	"github.com/educourse/course-system/internal/core/domain"
)

type userModel struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type courseModel struct {
	ID          string `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Level       string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (courseModel) TableName() string { return "courses" }

type enrollmentModel struct {
	ID         string `gorm:"primaryKey"`
	UserID     string `gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	CourseID   string `gorm:"not null;uniqueIndex:idx_enrollments_user_course"`
	Role       string `gorm:"not null"`
	EnrolledAt time.Time

	User   *userModel   `gorm:"foreignKey:UserID"`
	Course *courseModel `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}

func (enrollmentModel) TableName() string { return "enrollments" }

func userFromDomain(u *domain.User) userModel {
	return userModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m userModel) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func courseFromDomain(c *domain.Course) courseModel {
	return courseModel{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Level:       string(c.Level),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (m courseModel) toDomain() *domain.Course {
	return &domain.Course{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Level:       domain.CourseLevel(m.Level),
		CreatedAt:   m.CreatedAt.UTC(),
		UpdatedAt:   m.UpdatedAt.UTC(),
	}
}

func enrollmentFromDomain(e *domain.Enrollment) enrollmentModel {
	return enrollmentModel{
		ID:         e.ID,
		UserID:     e.UserID,
		CourseID:   e.CourseID,
		Role:       string(e.Role),
		EnrolledAt: e.EnrolledAt,
	}
}

func (m enrollmentModel) toDomain() *domain.Enrollment {
	e := &domain.Enrollment{
		ID:         m.ID,
		UserID:     m.UserID,
		CourseID:   m.CourseID,
		Role:       domain.EnrollmentRole(m.Role),
		EnrolledAt: m.EnrolledAt.UTC(),
	}
	if m.User != nil {
		e.User = m.User.toDomain()
	}
	if m.Course != nil {
		e.Course = m.Course.toDomain()
	}
	return e
}
