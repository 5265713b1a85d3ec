package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/educourse/course-system/internal/core/domain"
)

// Seed loads the demo dataset: three users sharing the password
// "password123", five courses, and six enrollments. Inserts are idempotent;
// rows that already exist are left untouched, so re-running is safe.
func Seed(ctx context.Context, db *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}

	now := time.Now().UTC()

	users := []userModel{
		{ID: uuid.NewString(), Name: "John Doe", Email: "john@example.com", PasswordHash: string(hash), CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Jane Smith", Email: "jane@example.com", PasswordHash: string(hash), CreatedAt: now, UpdatedAt: now},
		{ID: uuid.NewString(), Name: "Prof. Wilson", Email: "prof@example.com", PasswordHash: string(hash), CreatedAt: now, UpdatedAt: now},
	}

	courses := []courseModel{
		{
			ID:          "react-basics",
			Title:       "React Fundamentals",
			Description: "Learn the basics of React including components, props, state, and hooks. Perfect for beginners who want to start their journey in modern web development.",
			Level:       string(domain.LevelBeginner),
		},
		{
			ID:          "node-advanced",
			Title:       "Advanced Node.js",
			Description: "Deep dive into Node.js with advanced concepts like streams, clusters, microservices, and performance optimization.",
			Level:       string(domain.LevelAdvanced),
		},
		{
			ID:          "graphql-intro",
			Title:       "GraphQL Introduction",
			Description: "Master GraphQL from scratch. Learn queries, mutations, subscriptions, and how to build efficient APIs.",
			Level:       string(domain.LevelIntermediate),
		},
		{
			ID:          "python-basics",
			Title:       "Python for Beginners",
			Description: "Start your programming journey with Python. Learn syntax, data structures, and basic programming concepts.",
			Level:       string(domain.LevelBeginner),
		},
		{
			ID:          "ai-fundamentals",
			Title:       "AI & Machine Learning",
			Description: "Explore the world of artificial intelligence and machine learning with practical examples and real-world applications.",
			Level:       string(domain.LevelAdvanced),
		},
	}
	for i := range courses {
		courses[i].CreatedAt = now
		courses[i].UpdatedAt = now
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range users {
			// Preserve the existing id when the email is already present so
			// enrollments below reference the right user.
			var existing userModel
			err := tx.Where("email = ?", users[i].Email).First(&existing).Error
			switch {
			case err == nil:
				users[i].ID = existing.ID
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&users[i]).Error; err != nil {
					return fmt.Errorf("seed user %s: %w", users[i].Email, err)
				}
			default:
				return fmt.Errorf("seed user lookup %s: %w", users[i].Email, err)
			}
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&courses).Error; err != nil {
			return fmt.Errorf("seed courses: %w", err)
		}

		john, jane, prof := users[0].ID, users[1].ID, users[2].ID
		enrollments := []enrollmentModel{
			{UserID: john, CourseID: "react-basics", Role: string(domain.RoleStudent)},
			{UserID: jane, CourseID: "react-basics", Role: string(domain.RoleStudent)},
			{UserID: prof, CourseID: "react-basics", Role: string(domain.RoleProfessor)},
			{UserID: prof, CourseID: "node-advanced", Role: string(domain.RoleProfessor)},
			{UserID: john, CourseID: "graphql-intro", Role: string(domain.RoleStudent)},
			{UserID: prof, CourseID: "python-basics", Role: string(domain.RoleProfessor)},
		}
		for i := range enrollments {
			enrollments[i].ID = uuid.NewString()
			enrollments[i].EnrolledAt = now
		}

		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollments).Error; err != nil {
			return fmt.Errorf("seed enrollments: %w", err)
		}
		return nil
	})
}
