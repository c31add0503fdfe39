package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/company/profile/dto"
	"thaipk_backend/internals/features/company/profile/service"
	helper "thaipk_backend/internals/helpers"
	"thaipk_backend/internals/helpers/storage"
)

var validateCompanyInfo = validator.New()

type CompanyInfoController struct {
	Service *service.CompanyInfoService
}

func NewCompanyInfoController(db *gorm.DB, store storage.ObjectStore) *CompanyInfoController {
	return &CompanyInfoController{Service: service.NewCompanyInfoService(db, store)}
}

// ✅ GET: public - company profile (404 until first setup)
func (ctrl *CompanyInfoController) GetCompanyInfo(c *fiber.Ctx) error {
	info, err := ctrl.Service.Get(c.UserContext())
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to fetch company info")
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=300, stale-while-revalidate=600")
	return helper.JsonOK(c, "OK", dto.ToCompanyInfoDTO(*info))
}

// 🔄 PUT: admin - create-or-update the singleton. Multipart; new logos come
// as "logo" / "logo_dark" files.
func (ctrl *CompanyInfoController) SaveCompanyInfo(c *fiber.Ctx) error {
	var body dto.SaveCompanyInfoRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCompanyInfo.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	in := service.SaveInput{Name: body.CompanyInfoName}
	setOpt := func(dst **string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = &v
		}
	}
	setOpt(&in.Phone, body.CompanyInfoPhone)
	setOpt(&in.Email, body.CompanyInfoEmail)
	setOpt(&in.Address, body.CompanyInfoAddress)
	setOpt(&in.FacebookURL, body.CompanyInfoFacebookURL)
	setOpt(&in.LineURL, body.CompanyInfoLineURL)
	setOpt(&in.Slogan, body.CompanyInfoSlogan)
	setOpt(&in.Description, body.CompanyInfoDescription)

	for field, dst := range map[string]**string{
		"logo":      &in.LogoURL,
		"logo_dark": &in.LogoURLDark,
	} {
		if file, ferr := c.FormFile(field); ferr == nil && file != nil {
			url, uerr := ctrl.Service.UploadLogo(c.UserContext(), file)
			if uerr != nil {
				log.Println("[ERROR] upload logo:", uerr)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload logo")
			}
			*dst = &url
		}
	}

	info, err := ctrl.Service.Save(c.UserContext(), in)
	if err != nil {
		log.Println("[ERROR] save company info:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save company info")
	}

	return helper.JsonUpdated(c, "Company info saved", dto.ToCompanyInfoDTO(*info))
}
