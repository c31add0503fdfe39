package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/company/profile/controller"
	"thaipk_backend/internals/helpers/storage"
)

// CompanyInfoAdminRoutes: read + save for the admin panel.
func CompanyInfoAdminRoutes(router fiber.Router, db *gorm.DB, store storage.ObjectStore) {
	ctrl := controller.NewCompanyInfoController(db, store)

	router.Get("/company-info", ctrl.GetCompanyInfo)
	router.Put("/company-info", ctrl.SaveCompanyInfo)
}
