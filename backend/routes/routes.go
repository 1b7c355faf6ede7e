package routes

import (
	"log"

	"lingolearn/backend/config"
	"lingolearn/backend/controllers"
	"lingolearn/backend/engine"
	"lingolearn/backend/middleware"
	"lingolearn/backend/runner"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, logger *log.Logger) {
	eng := engine.New(db, engine.SystemClock())
	registry := runner.NewRegistry()

	// Auth routes
	authController := controllers.NewAuthController(db, cfg, eng)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware for everything behind login; every authenticated request
	// also counts as daily activity for the streak.
	authMiddleware := middleware.AuthMiddleware(cfg)
	activityMiddleware := middleware.ActivityMiddleware(cfg, eng, logger)

	// Lesson catalog
	lessonsController := controllers.NewLessonsController(db, cfg, eng)
	lessons := app.Group("/api/lessons", authMiddleware, activityMiddleware)
	lessons.Get("/", lessonsController.GetLessons)
	lessons.Get("/:id", lessonsController.GetLessonDetails)

	// Lesson attempts
	attemptsController := controllers.NewAttemptsController(db, cfg, eng, registry)
	lessons.Post("/:id/attempts", attemptsController.StartAttempt)
	attempts := app.Group("/api/attempts", authMiddleware, activityMiddleware)
	attempts.Get("/:id", attemptsController.GetAttempt)
	attempts.Post("/:id/answer", attemptsController.SubmitAnswer)
	attempts.Post("/:id/advance", attemptsController.Advance)

	// Profile
	profileController := controllers.NewProfileController(db, cfg)
	profile := app.Group("/api/profile", authMiddleware, activityMiddleware)
	profile.Get("/", profileController.GetProfile)
	profile.Put("/", profileController.UpdateProfile)
	profile.Get("/activity", profileController.GetActivity)
}
