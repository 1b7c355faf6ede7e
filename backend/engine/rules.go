package engine

import (
	"math"
	"time"
)

// XPPerLevel is the amount of XP needed to advance one level.
const XPPerLevel = 1000

// LevelForXP derives the level from cumulative XP. Level is never stored
// independently of this rule.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// ProgressPercent computes the completion percent for a step position,
// clamped to [0, 100]. A non-positive total yields 0.
func ProgressPercent(stepIndex, totalSteps int) int {
	if totalSteps <= 0 {
		return 0
	}
	percent := int(math.Round(100 * float64(stepIndex) / float64(totalSteps)))
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// NextStreak applies the daily streak rule to (lastActive, today) and
// reports whether anything changed:
//
//   - today == lastActive: no change, already counted today
//   - lastActive == yesterday: streak + 1
//   - lastActive nil or older: reset to 1
//
// Only calendar dates matter; times of day are ignored.
func NextStreak(streak int, lastActive *time.Time, today time.Time) (int, bool) {
	day := dateOf(today)
	if lastActive != nil {
		last := dateOf(*lastActive)
		if last.Equal(day) {
			return streak, false
		}
		if last.AddDate(0, 0, 1).Equal(day) {
			return streak + 1, true
		}
	}
	return 1, true
}

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
