package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/home/articles/controller"
	"thaipk_backend/internals/helpers/storage"
)

// ArticleAdminRoutes: full CRUD incl. drafts and editor image uploads.
func ArticleAdminRoutes(router fiber.Router, db *gorm.DB, store storage.ObjectStore) {
	ctrl := controller.NewArticleController(db, store)
	catCtrl := controller.NewArticleCategoryController(db)

	articles := router.Group("/articles")
	articles.Get("/", ctrl.GetAllArticles)
	articles.Get("/:id", ctrl.GetArticleByID)
	articles.Post("/", ctrl.CreateArticle)
	articles.Post("/content-image", ctrl.UploadContentImage)
	articles.Put("/:id", ctrl.UpdateArticle)
	articles.Delete("/:id", ctrl.DeleteArticle)

	categories := router.Group("/article-categories")
	categories.Get("/", catCtrl.GetAllCategories)
	categories.Get("/:id", catCtrl.GetCategoryByID)
	categories.Post("/", catCtrl.CreateCategory)
	categories.Put("/:id", catCtrl.UpdateCategory)
	categories.Delete("/:id", catCtrl.DeleteCategory)
}
