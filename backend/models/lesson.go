package models

import (
	"encoding/json"

	"gorm.io/gorm"
)

// Lesson is an immutable catalog entry. Each learning language carries its
// own lesson sequence; SequenceOrder is the unlock order within a language,
// across all units.
type Lesson struct {
	gorm.Model
	Language      string `gorm:"uniqueIndex:idx_language_order;not null"`
	Title         string `gorm:"not null"`
	Description   string
	Icon          string
	Level         int `gorm:"default:1"` // difficulty tier
	XP            int `gorm:"default:10"`
	Unit          int `gorm:"default:1"`
	SequenceOrder int `gorm:"uniqueIndex:idx_language_order;not null"`
	Exercises     []Exercise
}

const (
	ExerciseMultipleChoice = "multiple_choice"
	ExerciseTranslation    = "translation"
	ExerciseFillBlank      = "fill_blank"
)

// Exercise belongs to exactly one lesson. Options is a JSON array of option
// strings; it is empty for translation exercises.
type Exercise struct {
	gorm.Model
	LessonID uint            `gorm:"index;not null"`
	Position int             `gorm:"not null"`
	Kind     string          `gorm:"not null"`
	Prompt   string          `gorm:"type:text;not null"`
	Options  json.RawMessage `gorm:"type:text"`
	Answer   string          `gorm:"not null"`
}

// OptionList decodes the stored option strings.
func (e *Exercise) OptionList() []string {
	if len(e.Options) == 0 {
		return nil
	}
	var options []string
	if err := json.Unmarshal(e.Options, &options); err != nil {
		return nil
	}
	return options
}
