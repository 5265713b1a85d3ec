package domain

import "time"

// CourseLevel classifies the difficulty of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "BEGINNER"
	LevelIntermediate CourseLevel = "INTERMEDIATE"
	LevelAdvanced     CourseLevel = "ADVANCED"
)

// IsValid reports whether l is one of the known course levels.
func (l CourseLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Course is a catalog entry. Courses are created by an authenticated user,
// who becomes the course's first professor in the same transaction.
type Course struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Level       CourseLevel `json:"level"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
