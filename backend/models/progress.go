package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusLocked     = "locked"
	StatusAvailable  = "available"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// LessonProgress tracks one user's state for one lesson.
//
// Invariants maintained by the progression engine:
//   - Progress == 0   <=> Status is locked or available
//   - Progress == 100 <=> Status is completed
//   - 0 < Progress < 100 => Status is in_progress
type LessonProgress struct {
	gorm.Model
	UserID          uint   `gorm:"uniqueIndex:idx_user_lesson;not null"`
	LessonID        uint   `gorm:"uniqueIndex:idx_user_lesson;not null"`
	Status          string `gorm:"default:locked"`
	Progress        int    `gorm:"default:0"` // percent, 0-100
	StartedAt       *time.Time
	CompletedAt     *time.Time
	LastAttemptedAt *time.Time
}
