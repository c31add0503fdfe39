package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/configs"
	"thaipk_backend/internals/features/line/subscription/controller"
	"thaipk_backend/internals/helpers/line"
)

// LineWebhookRoutes: inbound platform callback, signed with the channel
// secret rather than an admin token.
func LineWebhookRoutes(router fiber.Router, db *gorm.DB, lineClient *line.Client) {
	ctrl := controller.NewWebhookController(db, lineClient, configs.LineChannelSecret)

	router.Post("/line/webhook", ctrl.HandleWebhook)
}
