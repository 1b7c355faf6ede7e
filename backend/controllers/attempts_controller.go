package controllers

import (
	"errors"
	"strconv"

	"lingolearn/backend/config"
	"lingolearn/backend/engine"
	"lingolearn/backend/models"
	"lingolearn/backend/runner"
	"lingolearn/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AttemptsController struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Engine   *engine.Engine
	Registry *runner.Registry
}

func NewAttemptsController(db *gorm.DB, cfg *config.Config, eng *engine.Engine, reg *runner.Registry) *AttemptsController {
	return &AttemptsController{DB: db, Cfg: cfg, Engine: eng, Registry: reg}
}

// StartAttempt godoc
// @Summary Start or resume a lesson attempt
// @Description Opens an attempt for the lesson, resuming from stored progress
// @Tags attempts
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lessons/{id}/attempts [post]
func (atc *AttemptsController) StartAttempt(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, atc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	progress, err := atc.Engine.StartOrResumeLesson(userID, uint(lessonID))
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrLessonLocked):
			return utils.Forbidden(c, "Lesson is locked")
		case errors.Is(err, engine.ErrNotFound):
			return utils.NotFound(c, "Lesson not found")
		default:
			return utils.InternalServerError(c, "Could not start lesson")
		}
	}

	var exercises []models.Exercise
	if err := atc.DB.Where("lesson_id = ?", lessonID).
		Order("position ASC").Find(&exercises).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch exercises")
	}

	attempt := runner.NewAttempt(userID, uint(lessonID), exercises, progress.Progress)

	// A lesson without exercises is treated as already finished.
	if attempt.Finished() {
		result, err := atc.Engine.CompleteLesson(userID, uint(lessonID))
		if err != nil {
			return utils.InternalServerError(c, "Could not complete lesson")
		}
		return utils.Success(c, fiber.StatusOK, completionPayload(result))
	}

	attemptID := atc.Registry.Put(attempt)
	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"attempt_id": attemptID,
		"step":       stepPayload(attempt),
	})
}

// GetAttempt returns the exercise currently presented by an attempt.
func (atc *AttemptsController) GetAttempt(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, atc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	attempt, ok := atc.Registry.Get(c.Params("id"), userID)
	if !ok {
		return utils.NotFound(c, "Attempt not found")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"attempt_id": c.Params("id"),
		"step":       stepPayload(attempt),
	})
}

// SubmitAnswer grades an answer for the current step. Correctness never
// blocks advancement; it is only reported.
func (atc *AttemptsController) SubmitAnswer(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, atc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	attempt, ok := atc.Registry.Get(c.Params("id"), userID)
	if !ok {
		return utils.NotFound(c, "Attempt not found")
	}

	type AnswerInput struct {
		Answer string `json:"answer"`
	}
	var input AnswerInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	exercise, err := attempt.Current()
	if err != nil {
		return utils.Conflict(c, "Attempt is already finished")
	}

	correct, err := attempt.Submit(input.Answer)
	if err != nil {
		return utils.Conflict(c, err.Error())
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"correct":        correct,
		"correct_answer": exercise.Answer,
	})
}

// Advance moves the attempt to the next exercise, persisting the step, or
// completes the lesson after the last one.
func (atc *AttemptsController) Advance(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, atc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	attemptID := c.Params("id")
	attempt, ok := atc.Registry.Get(attemptID, userID)
	if !ok {
		return utils.NotFound(c, "Attempt not found")
	}

	finished, err := attempt.Advance()
	if err != nil {
		return utils.Conflict(c, err.Error())
	}

	if finished {
		result, err := atc.Engine.CompleteLesson(userID, attempt.LessonID)
		if err != nil {
			return utils.InternalServerError(c, "Could not complete lesson")
		}
		atc.Registry.Remove(attemptID)
		return utils.Success(c, fiber.StatusOK, completionPayload(result))
	}

	if _, err := atc.Engine.RecordExerciseStep(userID, attempt.LessonID,
		attempt.StepIndex(), attempt.TotalSteps()); err != nil {
		return utils.InternalServerError(c, "Could not record progress")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"attempt_id": attemptID,
		"step":       stepPayload(attempt),
	})
}

// stepPayload exposes the current exercise without its answer.
func stepPayload(attempt *runner.Attempt) fiber.Map {
	exercise, err := attempt.Current()
	if err != nil {
		return fiber.Map{"finished": true}
	}
	return fiber.Map{
		"index":   attempt.StepIndex(),
		"total":   attempt.TotalSteps(),
		"kind":    exercise.Kind,
		"prompt":  exercise.Prompt,
		"options": exercise.OptionList(),
	}
}

func completionPayload(result *engine.CompletionResult) fiber.Map {
	payload := fiber.Map{
		"finished":   true,
		"xp_awarded": result.XPAwarded,
		"profile": fiber.Map{
			"xp":     result.Profile.XP,
			"level":  result.Profile.Level,
			"streak": result.Profile.Streak,
		},
	}
	if result.NextUnlocked != nil {
		payload["next_unlocked"] = *result.NextUnlocked
	}
	return payload
}
