package controllers

import (
	"strconv"
	"time"

	"lingolearn/backend/config"
	"lingolearn/backend/models"
	"lingolearn/backend/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProfileController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewProfileController(db *gorm.DB, cfg *config.Config) *ProfileController {
	return &ProfileController{DB: db, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the learner profile with progress summary
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile [get]
func (pc *ProfileController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var user models.User
	if err := pc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	var profile models.Profile
	if err := pc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return utils.NotFound(c, "Profile not found")
	}

	var completedLessons int64
	pc.DB.Model(&models.LessonProgress{}).
		Where("user_id = ? AND status = ?", userID, models.StatusCompleted).
		Count(&completedLessons)

	var inProgressLessons int64
	pc.DB.Model(&models.LessonProgress{}).
		Where("user_id = ? AND status = ?", userID, models.StatusInProgress).
		Count(&inProgressLessons)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":                  user.ID,
		"username":            user.Username,
		"email":               user.Email,
		"created_at":          user.CreatedAt,
		"xp":                  profile.XP,
		"level":               profile.Level,
		"streak":              profile.Streak,
		"last_active_date":    profile.LastActiveDate,
		"learning_language":   profile.LearningLanguage,
		"ui_language":         profile.UILanguage,
		"completed_lessons":   completedLessons,
		"lessons_in_progress": inProgressLessons,
	})
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Updates username, languages or password
// @Tags profile
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile [put]
func (pc *ProfileController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Username         string `json:"username"`
		Email            string `json:"email"`
		OldPassword      string `json:"old_password"`
		NewPassword      string `json:"new_password"`
		LearningLanguage string `json:"learning_language"`
		UILanguage       string `json:"ui_language"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := pc.DB.First(&user, userID).Error; err != nil {
		return utils.NotFound(c, "User not found")
	}

	var profile models.Profile
	if err := pc.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return utils.NotFound(c, "Profile not found")
	}

	if input.Username != "" && input.Username != user.Username {
		var existingUser models.User
		if err := pc.DB.Where("username = ?", input.Username).First(&existingUser).Error; err == nil {
			if existingUser.ID != user.ID {
				return utils.BadRequest(c, "Username already taken")
			}
		}
		user.Username = input.Username
		profile.Username = input.Username
	}

	if input.Email != "" && input.Email != user.Email {
		var existingUser models.User
		if err := pc.DB.Where("email = ?", input.Email).First(&existingUser).Error; err == nil {
			if existingUser.ID != user.ID {
				return utils.BadRequest(c, "Email already taken")
			}
		}
		user.Email = input.Email
	}

	if input.NewPassword != "" {
		if input.OldPassword == "" {
			return utils.BadRequest(c, "Old password is required to set new password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
			return utils.Unauthorized(c, "Invalid old password")
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return utils.InternalServerError(c, "Could not hash password")
		}
		user.PasswordHash = string(hashedPassword)
	}

	if input.LearningLanguage != "" {
		profile.LearningLanguage = input.LearningLanguage
	}
	if input.UILanguage != "" {
		profile.UILanguage = input.UILanguage
	}

	if err := pc.DB.Save(&user).Error; err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}
	if err := pc.DB.Save(&profile).Error; err != nil {
		return utils.InternalServerError(c, "Could not update profile")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"message": "Profile updated successfully",
	})
}

// GetActivity godoc
// @Summary Get user activity
// @Description Returns recent logins and per-day lesson activity
// @Tags profile
// @Accept json
// @Produce json
// @Param days query int false "Number of days to look back" default(7)
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /profile/activity [get]
func (pc *ProfileController) GetActivity(c *fiber.Ctx) error {
	userID, err := utils.ExtractUserIDFromToken(c, pc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	days, _ := strconv.Atoi(c.Query("days", "7"))
	if days < 1 {
		days = 7
	}
	since := time.Now().AddDate(0, 0, -days)

	var logins []models.LoginHistory
	if err := pc.DB.Where("user_id = ? AND login_time >= ?", userID, since).
		Order("login_time DESC").
		Find(&logins).Error; err != nil {
		return utils.InternalServerError(c, "Failed to fetch login history")
	}

	var lessonActivity []struct {
		Date      string `json:"date"`
		Lessons   int    `json:"lessons"`
		Completed int    `json:"completed"`
	}

	pc.DB.Raw(`
		SELECT
			DATE(last_attempted_at) as date,
			COUNT(DISTINCT lesson_id) as lessons,
			SUM(CASE WHEN status = 'completed' THEN 1 ELSE 0 END) as completed
		FROM lesson_progresses
		WHERE user_id = ? AND last_attempted_at >= ?
		GROUP BY DATE(last_attempted_at)
		ORDER BY date DESC
	`, userID, since).Scan(&lessonActivity)

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"logins":          logins,
		"lesson_activity": lessonActivity,
		"period_days":     days,
	})
}
