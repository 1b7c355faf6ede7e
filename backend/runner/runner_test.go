package runner

import (
	"sync"
	"testing"

	"lingolearn/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourExercises() []models.Exercise {
	return []models.Exercise{
		{Position: 0, Kind: models.ExerciseMultipleChoice, Prompt: "hello?", Answer: "Hola"},
		{Position: 1, Kind: models.ExerciseTranslation, Prompt: "thank you", Answer: "Gracias"},
		{Position: 2, Kind: models.ExerciseFillBlank, Prompt: "___ noches", Answer: "Buenas"},
		{Position: 3, Kind: models.ExerciseMultipleChoice, Prompt: "goodbye?", Answer: "Adiós"},
	}
}

func TestResumeIndex(t *testing.T) {
	cases := []struct {
		percent, total, want int
	}{
		{0, 4, 0},
		{25, 4, 1},
		{50, 4, 2},
		{75, 4, 3},
		{99, 4, 3},
		{-10, 4, 0},
		{33, 3, 0},
		{67, 3, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, resumeIndex(tc.percent, tc.total),
			"resumeIndex(%d, %d)", tc.percent, tc.total)
	}
}

func TestNewAttemptResumesFromProgress(t *testing.T) {
	attempt := NewAttempt(1, 1, fourExercises(), 50)
	assert.Equal(t, 2, attempt.StepIndex())
	assert.False(t, attempt.Finished())

	exercise, err := attempt.Current()
	require.NoError(t, err)
	assert.Equal(t, "___ noches", exercise.Prompt)
}

// A practice run on a completed lesson starts over from the first exercise.
func TestPracticeRunStartsFromBeginning(t *testing.T) {
	attempt := NewAttempt(1, 1, fourExercises(), 100)
	assert.Equal(t, 0, attempt.StepIndex())
	assert.False(t, attempt.Finished())
}

func TestEmptyExerciseListIsFinished(t *testing.T) {
	attempt := NewAttempt(1, 1, nil, 0)
	assert.True(t, attempt.Finished())

	_, err := attempt.Current()
	assert.ErrorIs(t, err, ErrFinished)
	_, err = attempt.Submit("anything")
	assert.ErrorIs(t, err, ErrFinished)
	_, err = attempt.Advance()
	assert.ErrorIs(t, err, ErrFinished)
}

func TestGradingByKind(t *testing.T) {
	exercises := []models.Exercise{
		{Kind: models.ExerciseMultipleChoice, Answer: "Hola"},
		{Kind: models.ExerciseTranslation, Answer: "Por favor"},
		{Kind: models.ExerciseFillBlank, Answer: "Buenas"},
	}

	// multiple choice: exact match only
	attempt := NewAttempt(1, 1, exercises, 0)
	correct, err := attempt.Submit("hola")
	require.NoError(t, err)
	assert.False(t, correct)

	attempt = NewAttempt(1, 1, exercises, 0)
	correct, err = attempt.Submit("Hola")
	require.NoError(t, err)
	assert.True(t, correct)

	// translation: case-insensitive, whitespace-trimmed
	attempt = NewAttempt(1, 1, exercises, 34)
	correct, err = attempt.Submit("  por FAVOR ")
	require.NoError(t, err)
	assert.True(t, correct)

	// fill blank: exact match only
	attempt = NewAttempt(1, 1, exercises, 67)
	correct, err = attempt.Submit(" Buenas ")
	require.NoError(t, err)
	assert.False(t, correct)
}

func TestStateMachineLegality(t *testing.T) {
	attempt := NewAttempt(1, 1, fourExercises(), 0)

	// advance before any answer is illegal
	_, err := attempt.Advance()
	assert.ErrorIs(t, err, ErrNoAnswer)

	_, err = attempt.Submit("Hola")
	require.NoError(t, err)

	// double submit on the same step is illegal
	_, err = attempt.Submit("Hola")
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	finished, err := attempt.Advance()
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, 1, attempt.StepIndex())
}

// Wrong answers are reported but never block advancement.
func TestWrongAnswerStillAdvances(t *testing.T) {
	attempt := NewAttempt(1, 1, fourExercises(), 0)

	for i := 0; i < 4; i++ {
		correct, err := attempt.Submit("wrong answer")
		require.NoError(t, err)
		assert.False(t, correct)

		finished, err := attempt.Advance()
		require.NoError(t, err)
		assert.Equal(t, i == 3, finished)
	}
	assert.True(t, attempt.Finished())
}

// Racing submits on a shared attempt resolve to exactly one accepted answer;
// the rest see ErrAlreadyAnswered and the step does not move.
func TestConcurrentSubmitsAcceptOneAnswer(t *testing.T) {
	attempt := NewAttempt(1, 1, fourExercises(), 0)

	const workers = 16
	var wg sync.WaitGroup
	var mu sync.Mutex
	accepted := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := attempt.Submit("Hola"); err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, 0, attempt.StepIndex())

	finished, err := attempt.Advance()
	require.NoError(t, err)
	assert.False(t, finished)
	assert.Equal(t, 1, attempt.StepIndex())
}

func TestRegistryOwnershipAndReplacement(t *testing.T) {
	registry := NewRegistry()

	first := NewAttempt(1, 7, fourExercises(), 0)
	firstID := registry.Put(first)

	_, ok := registry.Get(firstID, 1)
	assert.True(t, ok)

	// another user cannot read someone else's attempt
	_, ok = registry.Get(firstID, 2)
	assert.False(t, ok)

	// restarting the same lesson replaces the old attempt
	second := NewAttempt(1, 7, fourExercises(), 25)
	secondID := registry.Put(second)
	_, ok = registry.Get(firstID, 1)
	assert.False(t, ok)

	got, ok := registry.Get(secondID, 1)
	require.True(t, ok)
	assert.Equal(t, 1, got.StepIndex())

	registry.Remove(secondID)
	_, ok = registry.Get(secondID, 1)
	assert.False(t, ok)
}
