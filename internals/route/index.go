package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/configs"
	companyRoute "thaipk_backend/internals/features/company/profile/route"
	contactRoute "thaipk_backend/internals/features/contact/route"
	albumRoute "thaipk_backend/internals/features/gallery/albums/route"
	articleRoute "thaipk_backend/internals/features/home/articles/route"
	slideRoute "thaipk_backend/internals/features/home/slides/route"
	lineRoute "thaipk_backend/internals/features/line/subscription/route"
	"thaipk_backend/internals/helpers/line"
	"thaipk_backend/internals/helpers/storage"
	"thaipk_backend/internals/middlewares"
)

// SetupRoutes mounts /api/public for the site, /api/line/webhook for the
// LINE platform and /api/a for the admin panel behind the JWT guard.
func SetupRoutes(app *fiber.App, db *gorm.DB, store storage.ObjectStore, lineClient *line.Client) {
	BaseRoutes(app, db)

	public := app.Group("/api/public")
	slideRoute.SlideUserRoutes(public, db, store)
	albumRoute.AlbumUserRoutes(public, db, store)
	articleRoute.ArticleUserRoutes(public, db, store)
	companyRoute.CompanyInfoUserRoutes(public, db, store)
	contactRoute.ContactUserRoutes(public, db, lineClient, middlewares.ContactRateLimiter())

	// the LINE platform posts here; signature-guarded, not rate limited
	lineRoute.LineWebhookRoutes(app.Group("/api"), db, lineClient)

	admin := app.Group("/api/a", middlewares.AdminAuth(configs.JWTSecret))
	slideRoute.SlideAdminRoutes(admin, db, store)
	albumRoute.AlbumAdminRoutes(admin, db, store)
	articleRoute.ArticleAdminRoutes(admin, db, store)
	companyRoute.CompanyInfoAdminRoutes(admin, db, store)
}
