package controllers

import (
	"errors"
	"strconv"

	"lingolearn/backend/config"
	"lingolearn/backend/engine"
	"lingolearn/backend/models"
	"lingolearn/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LessonsController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Engine *engine.Engine
}

func NewLessonsController(db *gorm.DB, cfg *config.Config, eng *engine.Engine) *LessonsController {
	return &LessonsController{DB: db, Cfg: cfg, Engine: eng}
}

// GetLessons godoc
// @Summary Get the lesson catalog
// @Description Returns all lessons in sequence order merged with the caller's progress
// @Tags lessons
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lessons [get]
func (lc *LessonsController) GetLessons(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, lc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	// The catalog is per learning language, taken from the caller's profile.
	var profile models.Profile
	if err := lc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch profile")
	}

	// First visit in a language creates its progress rows lazily.
	rows, err := lc.Engine.InitializeProgress(userID, profile.LearningLanguage)
	if err != nil {
		return utils.InternalServerError(c, "Could not initialize progress")
	}

	progressByLesson := make(map[uint]models.LessonProgress, len(rows))
	for _, row := range rows {
		progressByLesson[row.LessonID] = row
	}

	var lessons []models.Lesson
	if err := lc.DB.Where("language = ?", profile.LearningLanguage).
		Order("sequence_order ASC").Find(&lessons).Error; err != nil {
		return utils.InternalServerError(c, "Could not fetch lessons")
	}

	result := make([]fiber.Map, 0, len(lessons))
	for _, lesson := range lessons {
		progress, ok := progressByLesson[lesson.ID]
		if !ok {
			// Lesson published after this user's rows were created.
			progress.Status = models.StatusLocked
		}
		result = append(result, fiber.Map{
			"id":             lesson.ID,
			"language":       lesson.Language,
			"title":          lesson.Title,
			"description":    lesson.Description,
			"icon":           lesson.Icon,
			"level":          lesson.Level,
			"xp":             lesson.XP,
			"unit":           lesson.Unit,
			"sequence_order": lesson.SequenceOrder,
			"status":         progress.Status,
			"progress":       progress.Progress,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// GetLessonDetails godoc
// @Summary Get one lesson
// @Description Returns a lesson with the caller's progress and exercise count
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /lessons/{id} [get]
func (lc *LessonsController) GetLessonDetails(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, lc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	lessonID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid lesson ID")
	}

	var lesson models.Lesson
	if err := lc.DB.First(&lesson, lessonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "Lesson not found")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	var exerciseCount int64
	if err := lc.DB.Model(&models.Exercise{}).Where("lesson_id = ?", lesson.ID).
		Count(&exerciseCount).Error; err != nil {
		return utils.InternalServerError(c, "Could not query database")
	}

	// No progress row yet is fine: the lesson simply has none to report.
	var progress models.LessonProgress
	if err := lc.DB.Where("user_id = ? AND lesson_id = ?", userID, lesson.ID).
		First(&progress).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"lesson": fiber.Map{
			"id":             lesson.ID,
			"language":       lesson.Language,
			"title":          lesson.Title,
			"description":    lesson.Description,
			"icon":           lesson.Icon,
			"level":          lesson.Level,
			"xp":             lesson.XP,
			"unit":           lesson.Unit,
			"sequence_order": lesson.SequenceOrder,
			"exercises":      exerciseCount,
		},
		"progress": progress,
	})
}
