package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/home/articles/controller"
	"thaipk_backend/internals/helpers/storage"
)

// ArticleUserRoutes: public reads (published only).
func ArticleUserRoutes(router fiber.Router, db *gorm.DB, store storage.ObjectStore) {
	ctrl := controller.NewArticleController(db, store)
	catCtrl := controller.NewArticleCategoryController(db)

	articles := router.Group("/articles")
	articles.Get("/", ctrl.GetPublishedArticles)
	articles.Get("/slug/:slug", ctrl.GetArticleBySlug)

	categories := router.Group("/article-categories")
	categories.Get("/", catCtrl.GetAllCategories)
}
