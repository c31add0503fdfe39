package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/contact/controller"
	"thaipk_backend/internals/helpers/line"
)

// ContactUserRoutes: public form relay. The rate limiter is applied by the
// caller so tests can mount the route bare.
func ContactUserRoutes(router fiber.Router, db *gorm.DB, lineClient *line.Client, middleware ...fiber.Handler) {
	ctrl := controller.NewContactController(db, lineClient)

	handlers := append(middleware, ctrl.SubmitContact)
	router.Post("/contact", handlers...)
}
