package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/home/slides/controller"
	"thaipk_backend/internals/helpers/storage"
)

// SlideAdminRoutes: full CRUD for the admin panel.
func SlideAdminRoutes(router fiber.Router, db *gorm.DB, store storage.ObjectStore) {
	ctrl := controller.NewSlideController(db, store)

	slides := router.Group("/slides")
	slides.Get("/", ctrl.GetAllSlides)
	slides.Get("/:id", ctrl.GetSlideByID)
	slides.Post("/", ctrl.CreateSlide)
	slides.Put("/:id", ctrl.UpdateSlide)
	slides.Patch("/:id/status", ctrl.ToggleSlideStatus)
	slides.Delete("/:id", ctrl.DeleteSlide)
}
