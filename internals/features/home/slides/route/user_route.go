package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/home/slides/controller"
	"thaipk_backend/internals/helpers/storage"
)

// SlideUserRoutes: public read endpoints.
func SlideUserRoutes(router fiber.Router, db *gorm.DB, store storage.ObjectStore) {
	ctrl := controller.NewSlideController(db, store)

	slides := router.Group("/slides")
	slides.Get("/", ctrl.GetActiveSlides)
}
