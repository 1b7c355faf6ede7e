package middleware

import (
	"log"

	"lingolearn/backend/config"
	"lingolearn/backend/engine"
	"lingolearn/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// ActivityMiddleware counts any authenticated request as daily activity, so
// streaks grow on days the user only browses. The engine makes the update
// at-most-once-effective per calendar day, so running this on every request
// is safe. Runs after AuthMiddleware; a failed update never fails the
// request.
func ActivityMiddleware(cfg *config.Config, eng *engine.Engine, logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := utils.ExtractUserIDFromToken(c, cfg)
		if err == nil {
			if _, err := eng.TouchDailyActivity(userID); err != nil {
				logger.Printf("daily activity update failed for user %d: %v", userID, err)
			}
		}
		return c.Next()
	}
}
