package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/educourse/course-system/internal/core/domain"
)

// CourseRepository persists courses in the courses table.
type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

// CreateWithProfessor inserts the course row and a PROFESSOR enrollment for
// creatorID in one transaction. If either insert fails both roll back, so a
// course without a professor is never committed.
func (r *CourseRepository) CreateWithProfessor(ctx context.Context, course *domain.Course, creatorID string) error {
	courseRow := courseFromDomain(course)
	enrollmentRow := enrollmentModel{
		ID:         uuid.NewString(),
		UserID:     creatorID,
		CourseID:   course.ID,
		Role:       string(domain.RoleProfessor),
		EnrolledAt: time.Now().UTC(),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&courseRow).Error; err != nil {
			return err
		}
		return tx.Create(&enrollmentRow).Error
	})
	if err != nil {
		return fmt.Errorf("create course with professor: %w", err)
	}
	return nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id string) (*domain.Course, error) {
	var row courseModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	return row.toDomain(), nil
}

func (r *CourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	var rows []courseModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courses := make([]*domain.Course, 0, len(rows))
	for _, row := range rows {
		courses = append(courses, row.toDomain())
	}
	return courses, nil
}

func (r *CourseRepository) Update(ctx context.Context, course *domain.Course) error {
	row := courseFromDomain(course)
	res := r.db.WithContext(ctx).Model(&courseModel{}).Where("id = ?", course.ID).Updates(map[string]any{
		"title":       row.Title,
		"description": row.Description,
		"level":       row.Level,
		"updated_at":  row.UpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("update course: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}
