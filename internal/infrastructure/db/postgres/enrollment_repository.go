package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/educourse/course-system/internal/core/domain"
)

// EnrollmentRepository persists the enrollment ledger.
type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) (*domain.Enrollment, error) {
	row := enrollmentFromDomain(e)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}
	return row.toDomain(), nil
}

// Unenroll deletes the user's enrollment on a course, refusing to remove the
// course's last professor. The whole sequence runs in one transaction that
// takes FOR UPDATE locks on the course's enrollment rows first, so a
// concurrent unenroll on the same course blocks until this one commits and
// then sees the post-delete professor count.
func (r *EnrollmentRepository) Unenroll(ctx context.Context, userID, courseID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []enrollmentModel
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("course_id = ?", courseID).
			Find(&rows).Error
		if err != nil {
			return fmt.Errorf("lock enrollments: %w", err)
		}

		var target *enrollmentModel
		professors := 0
		for i := range rows {
			if rows[i].Role == string(domain.RoleProfessor) {
				professors++
			}
			if rows[i].UserID == userID {
				target = &rows[i]
			}
		}

		if target == nil {
			return domain.ErrNotEnrolled
		}
		if target.Role == string(domain.RoleProfessor) && professors == 1 {
			return domain.ErrLastProfessor
		}

		if err := tx.Delete(&enrollmentModel{}, "id = ?", target.ID).Error; err != nil {
			return fmt.Errorf("delete enrollment: %w", err)
		}
		return nil
	})
}

func (r *EnrollmentRepository) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*domain.Enrollment, error) {
	var row enrollmentModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotEnrolled
		}
		return nil, fmt.Errorf("find enrollment: %w", err)
	}
	return row.toDomain(), nil
}

func (r *EnrollmentRepository) HasRole(ctx context.Context, userID, courseID string, role domain.EnrollmentRole) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&enrollmentModel{}).
		Where("user_id = ? AND course_id = ? AND role = ?", userID, courseID, string(role)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("count role: %w", err)
	}
	return count > 0, nil
}

func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID string) ([]*domain.Enrollment, error) {
	var rows []enrollmentModel
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("course_id = ?", courseID).
		Order("enrolled_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list enrollments by course: %w", err)
	}
	return toDomainList(rows), nil
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Enrollment, error) {
	var rows []enrollmentModel
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Order("enrolled_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list enrollments by user: %w", err)
	}
	return toDomainList(rows), nil
}

func toDomainList(rows []enrollmentModel) []*domain.Enrollment {
	out := make([]*domain.Enrollment, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out
}
