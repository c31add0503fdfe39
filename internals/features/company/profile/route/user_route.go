package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/company/profile/controller"
	"thaipk_backend/internals/helpers/storage"
)

// CompanyInfoUserRoutes: public profile read.
func CompanyInfoUserRoutes(router fiber.Router, db *gorm.DB, store storage.ObjectStore) {
	ctrl := controller.NewCompanyInfoController(db, store)

	router.Get("/company-info", ctrl.GetCompanyInfo)
}
