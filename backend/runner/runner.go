// Package runner drives a single lesson attempt: it presents exercises one
// at a time, grades submitted answers and reports when the attempt is done.
package runner

import (
	"errors"
	"strings"
	"sync"

	"lingolearn/backend/models"
)

var (
	// ErrNoAnswer is returned by Advance before an answer was submitted for
	// the current step.
	ErrNoAnswer = errors.New("no answer submitted for the current step")

	// ErrAlreadyAnswered is returned by Submit when the current step already
	// has an answer and is waiting for Advance.
	ErrAlreadyAnswered = errors.New("current step is already answered")

	// ErrFinished is returned when the attempt has no more steps.
	ErrFinished = errors.New("attempt is finished")
)

type phase int

const (
	phasePresenting phase = iota
	phaseAnswered
	phaseFinished
)

// Attempt is the state machine for one run through a lesson's exercises:
// Presenting(step) -> Answered(step) -> Presenting(step+1) ... -> Finished.
// An attempt is shared between concurrent requests, so every transition and
// read holds its lock; racing submits resolve to one accepted answer and
// one ErrAlreadyAnswered.
type Attempt struct {
	UserID   uint
	LessonID uint

	mu          sync.Mutex
	exercises   []models.Exercise
	step        int
	phase       phase
	lastCorrect bool
}

// NewAttempt builds an attempt resuming at the position implied by the
// stored progress percent. An empty exercise list starts out finished.
func NewAttempt(userID, lessonID uint, exercises []models.Exercise, progressPercent int) *Attempt {
	a := &Attempt{
		UserID:    userID,
		LessonID:  lessonID,
		exercises: exercises,
	}
	if len(exercises) == 0 {
		a.phase = phaseFinished
		return a
	}
	// Only a partially completed lesson resumes mid-way; fresh starts and
	// practice runs on completed lessons begin at the first exercise.
	if progressPercent > 0 && progressPercent < 100 {
		a.step = resumeIndex(progressPercent, len(exercises))
	}
	return a
}

// resumeIndex maps a stored percent back to a step index, clamped so a
// partially completed lesson always resumes on a valid exercise.
func resumeIndex(percent, total int) int {
	index := percent * total / 100
	if index < 0 {
		return 0
	}
	if index > total-1 {
		return total - 1
	}
	return index
}

// Current returns the exercise being presented.
func (a *Attempt) Current() (*models.Exercise, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.phase == phaseFinished {
		return nil, ErrFinished
	}
	return &a.exercises[a.step], nil
}

// StepIndex returns the zero-based index of the current step.
func (a *Attempt) StepIndex() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.step
}

// TotalSteps returns the number of exercises in the lesson.
func (a *Attempt) TotalSteps() int { return len(a.exercises) }

// Finished reports whether the attempt has run out of exercises.
func (a *Attempt) Finished() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.phase == phaseFinished
}

// Submit grades an answer for the current step. Correctness is reported but
// never gates advancement: a wrong answer still moves on. Only legal while
// an exercise is being presented.
func (a *Attempt) Submit(answer string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.phase {
	case phaseFinished:
		return false, ErrFinished
	case phaseAnswered:
		return false, ErrAlreadyAnswered
	}

	correct := grade(&a.exercises[a.step], answer)
	a.lastCorrect = correct
	a.phase = phaseAnswered
	return correct, nil
}

// Advance moves past an answered step. It returns true when the attempt just
// finished; the caller is expected to trigger lesson completion then, and a
// progress-step record otherwise. Only legal after Submit.
func (a *Attempt) Advance() (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch a.phase {
	case phaseFinished:
		return false, ErrFinished
	case phasePresenting:
		return false, ErrNoAnswer
	}

	if a.step >= len(a.exercises)-1 {
		a.phase = phaseFinished
		return true, nil
	}
	a.step++
	a.phase = phasePresenting
	return false, nil
}

// grade applies the per-kind answer rule: translations tolerate case and
// surrounding whitespace, everything else is exact.
func grade(exercise *models.Exercise, answer string) bool {
	switch exercise.Kind {
	case models.ExerciseTranslation:
		return strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(exercise.Answer))
	default:
		return answer == exercise.Answer
	}
}
