package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "thaipk_backend/internals/databases"
)

var startedAt = time.Now()

// BaseRoutes: liveness endpoints, no auth, no group prefix.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "thaipk-backend",
			"status":  "running",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "ok"
		if err := database.Ping(); err != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status":   "ok",
			"db":       dbStatus,
			"uptime_s": int(time.Since(startedAt).Seconds()),
		})
	})
}
