package engine_test

import (
	"testing"
	"time"

	"lingolearn/backend/engine"
	"lingolearn/backend/models"
	"lingolearn/backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Set(t time.Time) { f.now = t }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, utils.Migrate(db))
	return db
}

// newTestEngine seeds a two-lesson Spanish catalog and a fresh profile for
// user 1.
func newTestEngine(t *testing.T) (*engine.Engine, *fakeClock, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	lessons := []models.Lesson{
		{Language: "spanish", Title: "Basics 1", XP: 10, Unit: 1, SequenceOrder: 1},
		{Language: "spanish", Title: "Common Phrases", XP: 15, Unit: 1, SequenceOrder: 2},
	}
	require.NoError(t, db.Create(&lessons).Error)
	require.NoError(t, db.Create(&models.Profile{UserID: 1, Username: "learner"}).Error)

	clock := &fakeClock{now: time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)}
	return engine.New(db, clock), clock, db
}

func lessonByOrder(t *testing.T, db *gorm.DB, order int) models.Lesson {
	t.Helper()
	var lesson models.Lesson
	require.NoError(t, db.Where("sequence_order = ?", order).First(&lesson).Error)
	return lesson
}

func progressFor(t *testing.T, db *gorm.DB, userID, lessonID uint) models.LessonProgress {
	t.Helper()
	var progress models.LessonProgress
	require.NoError(t, db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&progress).Error)
	return progress
}

func TestInitializeProgress(t *testing.T) {
	eng, _, db := newTestEngine(t)

	rows, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := lessonByOrder(t, db, 1)
	available := 0
	for _, row := range rows {
		if row.Status == models.StatusAvailable {
			available++
			assert.Equal(t, first.ID, row.LessonID)
		} else {
			assert.Equal(t, models.StatusLocked, row.Status)
		}
		assert.Equal(t, 0, row.Progress)
	}
	assert.Equal(t, 1, available)
}

func TestInitializeProgressIsIdempotent(t *testing.T) {
	eng, _, db := newTestEngine(t)

	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	// Mutate a row, then call again: nothing may be overwritten.
	first := lessonByOrder(t, db, 1)
	progress := progressFor(t, db, 1, first.ID)
	progress.Status = models.StatusInProgress
	progress.Progress = 40
	require.NoError(t, db.Save(&progress).Error)

	rows, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	var count int64
	db.Model(&models.LessonProgress{}).Where("user_id = ?", 1).Count(&count)
	assert.EqualValues(t, 2, count)

	progress = progressFor(t, db, 1, first.ID)
	assert.Equal(t, models.StatusInProgress, progress.Status)
	assert.Equal(t, 40, progress.Progress)
}

func TestStartOrResumeLockedLesson(t *testing.T) {
	eng, _, db := newTestEngine(t)
	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	second := lessonByOrder(t, db, 2)
	_, err = eng.StartOrResumeLesson(1, second.ID)
	assert.ErrorIs(t, err, engine.ErrLessonLocked)
}

func TestStartOrResumeUnknownLesson(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	_, err = eng.StartOrResumeLesson(1, 999)
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

func TestStartOrResumeTransitions(t *testing.T) {
	eng, clock, db := newTestEngine(t)
	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	first := lessonByOrder(t, db, 1)
	progress, err := eng.StartOrResumeLesson(1, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, progress.Status)
	require.NotNil(t, progress.StartedAt)
	startedAt := *progress.StartedAt
	assert.Equal(t, clock.Now(), startedAt)

	// Resuming later keeps the original start time and restamps the attempt.
	clock.Set(clock.Now().Add(2 * time.Hour))
	progress, err = eng.StartOrResumeLesson(1, first.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, progress.Status)
	assert.Equal(t, startedAt, *progress.StartedAt)
	assert.Equal(t, clock.Now(), *progress.LastAttemptedAt)
}

func TestRecordExerciseStep(t *testing.T) {
	eng, _, db := newTestEngine(t)
	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	first := lessonByOrder(t, db, 1)
	_, err = eng.StartOrResumeLesson(1, first.ID)
	require.NoError(t, err)

	progress, err := eng.RecordExerciseStep(1, first.ID, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 25, progress.Progress)
	assert.Equal(t, models.StatusInProgress, progress.Status)

	// A stale retry of an earlier step never moves progress backwards.
	progress, err = eng.RecordExerciseStep(1, first.ID, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, 50, progress.Progress)

	progress, err = eng.RecordExerciseStep(1, first.ID, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, 50, progress.Progress)
}

func TestRecordExerciseStepAfterCompletion(t *testing.T) {
	eng, _, db := newTestEngine(t)
	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	first := lessonByOrder(t, db, 1)
	_, err = eng.CompleteLesson(1, first.ID)
	require.NoError(t, err)

	// Practice runs restamp the attempt but never downgrade completion.
	progress, err := eng.RecordExerciseStep(1, first.ID, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, progress.Status)
	assert.Equal(t, 100, progress.Progress)
}

// A step record on the final exercise holds at 99: only CompleteLesson may
// mark a lesson completed, so the row never reads 100 while in progress.
func TestRecordExerciseStepFinalStepStaysInProgress(t *testing.T) {
	eng, _, db := newTestEngine(t)
	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	first := lessonByOrder(t, db, 1)
	progress, err := eng.RecordExerciseStep(1, first.ID, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 99, progress.Progress)
	assert.Equal(t, models.StatusInProgress, progress.Status)
}

func TestCompleteLessonAwardsXPOnce(t *testing.T) {
	eng, _, db := newTestEngine(t)
	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	first := lessonByOrder(t, db, 1)
	result, err := eng.CompleteLesson(1, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, result.XPAwarded)
	assert.Equal(t, 10, result.Profile.XP)
	assert.Equal(t, 1, result.Profile.Level)
	assert.Equal(t, models.StatusCompleted, result.Progress.Status)
	assert.Equal(t, 100, result.Progress.Progress)
	require.NotNil(t, result.Progress.CompletedAt)
	completedAt := *result.Progress.CompletedAt

	// Completing again is a no-op for XP and keeps the first completion time.
	result, err = eng.CompleteLesson(1, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.XPAwarded)
	assert.Equal(t, 10, result.Profile.XP)
	assert.Equal(t, completedAt, *result.Progress.CompletedAt)
}

func TestCompleteLessonUnlocksNext(t *testing.T) {
	eng, _, db := newTestEngine(t)
	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	first := lessonByOrder(t, db, 1)
	second := lessonByOrder(t, db, 2)

	result, err := eng.CompleteLesson(1, first.ID)
	require.NoError(t, err)
	require.NotNil(t, result.NextUnlocked)
	assert.Equal(t, second.ID, *result.NextUnlocked)

	progress := progressFor(t, db, 1, second.ID)
	assert.Equal(t, models.StatusAvailable, progress.Status)

	// The last lesson in sequence unlocks nothing.
	result, err = eng.CompleteLesson(1, second.ID)
	require.NoError(t, err)
	assert.Nil(t, result.NextUnlocked)
}

// Each learning language tracks its own rows: switching languages starts a
// fresh sequence and leaves earlier progress alone.
func TestLanguageCatalogsAreIndependent(t *testing.T) {
	eng, _, db := newTestEngine(t)
	french := []models.Lesson{
		{Language: "french", Title: "Basics 1", XP: 10, Unit: 1, SequenceOrder: 1},
		{Language: "french", Title: "Common Phrases", XP: 15, Unit: 1, SequenceOrder: 2},
	}
	require.NoError(t, db.Create(&french).Error)

	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	spanishFirst := lessonByOrder(t, db, 1)
	_, err = eng.CompleteLesson(1, spanishFirst.ID)
	require.NoError(t, err)

	rows, err := eng.InitializeProgress(1, "french")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.StatusAvailable, progressFor(t, db, 1, french[0].ID).Status)
	assert.Equal(t, models.StatusLocked, progressFor(t, db, 1, french[1].ID).Status)

	// Unlocks stay inside the language that was completed.
	result, err := eng.CompleteLesson(1, french[0].ID)
	require.NoError(t, err)
	require.NotNil(t, result.NextUnlocked)
	assert.Equal(t, french[1].ID, *result.NextUnlocked)

	result, err = eng.CompleteLesson(1, french[1].ID)
	require.NoError(t, err)
	assert.Nil(t, result.NextUnlocked)

	// The completed Spanish lesson is untouched by the switch.
	assert.Equal(t, models.StatusCompleted, progressFor(t, db, 1, spanishFirst.ID).Status)
}

func TestCompleteLessonLevelDerivation(t *testing.T) {
	eng, _, db := newTestEngine(t)
	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Profile{}).Where("user_id = ?", 1).
		Update("xp", 995).Error)

	first := lessonByOrder(t, db, 1)
	result, err := eng.CompleteLesson(1, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 1005, result.Profile.XP)
	assert.Equal(t, 2, result.Profile.Level)
}

func TestTouchDailyActivity(t *testing.T) {
	eng, clock, _ := newTestEngine(t)

	profile, err := eng.TouchDailyActivity(1)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Streak)

	// Second touch on the same day is a no-op.
	clock.Set(clock.Now().Add(3 * time.Hour))
	profile, err = eng.TouchDailyActivity(1)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Streak)

	// Next calendar day extends the run.
	clock.Set(clock.Now().AddDate(0, 0, 1))
	profile, err = eng.TouchDailyActivity(1)
	require.NoError(t, err)
	assert.Equal(t, 2, profile.Streak)

	// A missed day resets to 1.
	clock.Set(clock.Now().AddDate(0, 0, 3))
	profile, err = eng.TouchDailyActivity(1)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Streak)
}

func TestTouchDailyActivityUnknownUser(t *testing.T) {
	eng, _, _ := newTestEngine(t)
	_, err := eng.TouchDailyActivity(42)
	assert.ErrorIs(t, err, engine.ErrNotFound)
}

// Full scenario: fresh user, two-lesson catalog, two days of activity.
func TestProgressionScenario(t *testing.T) {
	eng, clock, db := newTestEngine(t)

	_, err := eng.InitializeProgress(1, "spanish")
	require.NoError(t, err)

	first := lessonByOrder(t, db, 1)
	second := lessonByOrder(t, db, 2)
	assert.Equal(t, models.StatusAvailable, progressFor(t, db, 1, first.ID).Status)
	assert.Equal(t, models.StatusLocked, progressFor(t, db, 1, second.ID).Status)

	// Day D: complete L1.
	result, err := eng.CompleteLesson(1, first.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Profile.XP)
	assert.Equal(t, 1, result.Profile.Level)
	assert.Equal(t, 1, result.Profile.Streak)
	assert.Equal(t, models.StatusAvailable, progressFor(t, db, 1, second.ID).Status)

	// Revisit on day D: streak stays at 1.
	profile, err := eng.TouchDailyActivity(1)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Streak)

	// Day D+1: complete L2.
	clock.Set(clock.Now().AddDate(0, 0, 1))
	result, err = eng.CompleteLesson(1, second.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, result.Profile.XP)
	assert.Equal(t, 2, result.Profile.Streak)
	assert.Nil(t, result.NextUnlocked)
}
