package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/gallery/albums/controller"
	"thaipk_backend/internals/helpers/storage"
)

// AlbumUserRoutes: public gallery reads.
func AlbumUserRoutes(router fiber.Router, db *gorm.DB, store storage.ObjectStore) {
	ctrl := controller.NewAlbumController(db, store)

	albums := router.Group("/albums")
	albums.Get("/", ctrl.GetAlbums)
	albums.Get("/:id", ctrl.GetAlbumByID)
	albums.Get("/:id/images", ctrl.GetAlbumImages)
}
