// Package engine implements the lesson-progression and gamification rules:
// lesson unlock order, progress state transitions, XP and level accrual, and
// daily streaks. It is the only writer of LessonProgress and Profile rows.
package engine

import (
	"errors"

	"lingolearn/backend/models"

	"gorm.io/gorm"
)

type Engine struct {
	DB    *gorm.DB
	Clock Clock
}

func New(db *gorm.DB, clock Clock) *Engine {
	if clock == nil {
		clock = SystemClock()
	}
	return &Engine{DB: db, Clock: clock}
}

// CompletionResult is the outcome of CompleteLesson.
type CompletionResult struct {
	Progress     models.LessonProgress
	Profile      models.Profile
	XPAwarded    int
	NextUnlocked *uint // id of the next lesson in sequence, nil after the last one
}

// InitializeProgress lazily creates the progress rows for a user's learning
// language: one per catalog lesson in that language, the lowest sequence
// order available, the rest locked. If any row already exists for the user
// in that language the call is a no-op and returns the existing rows
// untouched. Each language tracks its own rows, so switching languages
// neither loses nor shares progress.
func (e *Engine) InitializeProgress(userID uint, language string) ([]models.LessonProgress, error) {
	var existing []models.LessonProgress
	if err := e.DB.
		Joins("JOIN lessons ON lessons.id = lesson_progresses.lesson_id").
		Where("lesson_progresses.user_id = ? AND lessons.language = ?", userID, language).
		Find(&existing).Error; err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return existing, nil
	}

	var lessons []models.Lesson
	if err := e.DB.Where("language = ?", language).
		Order("sequence_order ASC").Find(&lessons).Error; err != nil {
		return nil, err
	}
	if len(lessons) == 0 {
		return nil, nil
	}

	rows := make([]models.LessonProgress, 0, len(lessons))
	for i, lesson := range lessons {
		status := models.StatusLocked
		if i == 0 {
			status = models.StatusAvailable
		}
		rows = append(rows, models.LessonProgress{
			UserID:   userID,
			LessonID: lesson.ID,
			Status:   status,
		})
	}

	if err := e.DB.Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// StartOrResumeLesson transitions an available lesson to in_progress and
// stamps the attempt time. Locked lessons fail with ErrLessonLocked.
func (e *Engine) StartOrResumeLesson(userID, lessonID uint) (*models.LessonProgress, error) {
	progress, err := e.lessonProgress(userID, lessonID)
	if err != nil {
		return nil, err
	}

	if progress.Status == models.StatusLocked {
		return nil, ErrLessonLocked
	}

	now := e.Clock.Now()
	if progress.Status == models.StatusAvailable && progress.Progress == 0 {
		progress.Status = models.StatusInProgress
		progress.StartedAt = &now
	}
	progress.LastAttemptedAt = &now

	if err := e.DB.Save(progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// RecordExerciseStep recomputes the completion percent after a step is
// passed. Progress only ever moves forward, so duplicate or out-of-order
// retries are harmless, a completed lesson is never downgraded, and the
// stored percent stays below 100 until CompleteLesson runs.
func (e *Engine) RecordExerciseStep(userID, lessonID uint, stepIndex, totalSteps int) (*models.LessonProgress, error) {
	progress, err := e.lessonProgress(userID, lessonID)
	if err != nil {
		return nil, err
	}

	now := e.Clock.Now()
	progress.LastAttemptedAt = &now

	if progress.Status != models.StatusCompleted {
		percent := ProgressPercent(stepIndex, totalSteps)
		// Only CompleteLesson may take a lesson to 100: a step record on the
		// final exercise holds at 99 until the completion runs.
		if percent > 99 {
			percent = 99
		}
		if percent > progress.Progress {
			progress.Progress = percent
			progress.Status = models.StatusInProgress
		}
	}

	if err := e.DB.Save(progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// CompleteLesson marks the lesson completed, awards its XP on the first
// completion only, rederives the level, applies the daily streak rule and
// unlocks the next lesson in sequence order.
//
// The three writes run inside one transaction, ordered progress -> profile
// -> unlock: a crash mid-way leaves the user still in progress rather than
// falsely credited.
func (e *Engine) CompleteLesson(userID, lessonID uint) (*CompletionResult, error) {
	var result CompletionResult

	err := e.DB.Transaction(func(tx *gorm.DB) error {
		var lesson models.Lesson
		if err := tx.First(&lesson, lessonID).Error; err != nil {
			return asEngineErr(err)
		}

		var progress models.LessonProgress
		if err := tx.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
			First(&progress).Error; err != nil {
			return asEngineErr(err)
		}

		var profile models.Profile
		if err := tx.Where("user_id = ?", userID).First(&profile).Error; err != nil {
			return asEngineErr(err)
		}

		now := e.Clock.Now()
		firstCompletion := progress.Status != models.StatusCompleted

		progress.Status = models.StatusCompleted
		progress.Progress = 100
		if progress.CompletedAt == nil {
			progress.CompletedAt = &now
		}
		progress.LastAttemptedAt = &now
		if err := tx.Save(&progress).Error; err != nil {
			return err
		}

		// XP is a once-per-lesson reward; practice runs award nothing.
		if firstCompletion {
			profile.XP += lesson.XP
			result.XPAwarded = lesson.XP
		}
		profile.Level = LevelForXP(profile.XP)
		if streak, changed := NextStreak(profile.Streak, profile.LastActiveDate, now); changed {
			day := dateOf(now)
			profile.Streak = streak
			profile.LastActiveDate = &day
		}
		if err := tx.Save(&profile).Error; err != nil {
			return err
		}

		var next models.Lesson
		err := tx.Where("language = ? AND sequence_order = ?",
			lesson.Language, lesson.SequenceOrder+1).First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Last lesson of this language's catalog.
		} else if err != nil {
			return err
		} else {
			var nextProgress models.LessonProgress
			if err := tx.Where("user_id = ? AND lesson_id = ?", userID, next.ID).
				First(&nextProgress).Error; err != nil {
				return asEngineErr(err)
			}
			if nextProgress.Status == models.StatusLocked {
				nextProgress.Status = models.StatusAvailable
				if err := tx.Save(&nextProgress).Error; err != nil {
					return err
				}
			}
			nextID := next.ID
			result.NextUnlocked = &nextID
		}

		result.Progress = progress
		result.Profile = profile
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// TouchDailyActivity applies the streak rule for any authenticated activity,
// so streaks grow even on days without a completed lesson. At most one call
// per calendar day has an effect; the rest are no-ops.
func (e *Engine) TouchDailyActivity(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := e.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, asEngineErr(err)
	}

	now := e.Clock.Now()
	streak, changed := NextStreak(profile.Streak, profile.LastActiveDate, now)
	if !changed {
		return &profile, nil
	}

	day := dateOf(now)
	profile.Streak = streak
	profile.LastActiveDate = &day
	if err := e.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (e *Engine) lessonProgress(userID, lessonID uint) (*models.LessonProgress, error) {
	var progress models.LessonProgress
	if err := e.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&progress).Error; err != nil {
		return nil, asEngineErr(err)
	}
	return &progress, nil
}

func asEngineErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
