package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"unique;not null"`
	Email        string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"default:user"` // user, admin
}

// Profile holds the gamification state for one user. It is written only by
// the progression engine; Level is always derived from XP, never set on its
// own.
type Profile struct {
	gorm.Model
	UserID           uint   `gorm:"uniqueIndex;not null"`
	Username         string `gorm:"not null"`
	XP               int    `gorm:"default:0"`
	Level            int    `gorm:"default:1"`
	Streak           int    `gorm:"default:0"`
	LastActiveDate   *time.Time
	LearningLanguage string `gorm:"default:spanish"`
	UILanguage       string `gorm:"default:en"`
}

type LoginHistory struct {
	gorm.Model
	UserID    uint
	LoginTime time.Time
}
