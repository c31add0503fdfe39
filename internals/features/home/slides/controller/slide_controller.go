package controller

import (
	"log"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/home/slides/dto"
	"thaipk_backend/internals/features/home/slides/model"
	"thaipk_backend/internals/features/home/slides/service"
	helper "thaipk_backend/internals/helpers"
	"thaipk_backend/internals/helpers/storage"
)

var validateSlide = validator.New()

type SlideController struct {
	Service *service.SlideService
}

func NewSlideController(db *gorm.DB, store storage.ObjectStore) *SlideController {
	return &SlideController{Service: service.NewSlideService(db, store)}
}

// ✅ GET: public carousel (active only, display order)
func (ctrl *SlideController) GetActiveSlides(c *fiber.Ctx) error {
	slides, err := ctrl.Service.ListActive(c.UserContext())
	if err != nil {
		log.Println("[ERROR] list active slides:", err)
		return helper.JsonFromServiceError(c, err, "Failed to fetch slides")
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=60, stale-while-revalidate=120")
	return helper.JsonList(c, dto.ToSlideDTOList(slides), nil)
}

// ✅ GET: admin - every slide
func (ctrl *SlideController) GetAllSlides(c *fiber.Ctx) error {
	slides, err := ctrl.Service.ListAll(c.UserContext())
	if err != nil {
		log.Println("[ERROR] list slides:", err)
		return helper.JsonFromServiceError(c, err, "Failed to fetch slides")
	}
	return helper.JsonList(c, dto.ToSlideDTOList(slides), nil)
}

func (ctrl *SlideController) GetSlideByID(c *fiber.Ctx) error {
	slide, err := ctrl.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to fetch slide")
	}
	return helper.JsonOK(c, "OK", dto.ToSlideDTO(*slide))
}

// ➕ POST: admin - create slide (multipart: title, link_url, display_order,
// is_active, image)
func (ctrl *SlideController) CreateSlide(c *fiber.Ctx) error {
	var body dto.CreateSlideRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSlide.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slide image is required")
	}

	imageURL, err := ctrl.Service.UploadImage(c.UserContext(), file)
	if err != nil {
		log.Println("[ERROR] upload slide image:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload image")
	}

	slide := model.SlideModel{
		SlideImageURL:     imageURL,
		SlideDisplayOrder: body.SlideDisplayOrder,
		SlideIsActive:     body.SlideIsActive,
	}
	if v := strings.TrimSpace(body.SlideTitle); v != "" {
		slide.SlideTitle = &v
	}
	if v := strings.TrimSpace(body.SlideLinkURL); v != "" {
		slide.SlideLinkURL = &v
	}

	if err := ctrl.Service.Create(c.UserContext(), &slide); err != nil {
		log.Println("[ERROR] create slide:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create slide")
	}

	return helper.JsonCreated(c, "Slide created", dto.ToSlideDTO(slide))
}

// 🔄 PUT: admin - update slide; a new "image" file replaces the old binary.
func (ctrl *SlideController) UpdateSlide(c *fiber.Ctx) error {
	slide, err := ctrl.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to fetch slide")
	}

	if v := c.FormValue("title"); v != "" {
		t := v
		slide.SlideTitle = &t
	}
	if v := c.FormValue("link_url"); v != "" {
		l := v
		slide.SlideLinkURL = &l
	}
	if v := c.FormValue("display_order"); v != "" {
		if n, perr := strconv.Atoi(v); perr == nil && n >= 0 {
			slide.SlideDisplayOrder = n
		}
	}
	if v := c.FormValue("is_active"); v != "" {
		slide.SlideIsActive = v == "true"
	}

	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		oldURL := slide.SlideImageURL
		newURL, uerr := ctrl.Service.UploadImage(c.UserContext(), file)
		if uerr != nil {
			log.Println("[ERROR] upload slide image:", uerr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload image")
		}
		slide.SlideImageURL = newURL
		storage.CleanupURLs(c.UserContext(), ctrl.Service.Store, []string{oldURL}).LogAll()
	}

	if err := ctrl.Service.Update(c.UserContext(), slide); err != nil {
		log.Println("[ERROR] update slide:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update slide")
	}

	return helper.JsonUpdated(c, "Slide updated", dto.ToSlideDTO(*slide))
}

// 🔄 PATCH: admin - toggle visibility
func (ctrl *SlideController) ToggleSlideStatus(c *fiber.Ctx) error {
	var body struct {
		IsActive bool `json:"is_active"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	slide, err := ctrl.Service.SetActive(c.UserContext(), c.Params("id"), body.IsActive)
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to toggle slide")
	}
	return helper.JsonUpdated(c, "Slide updated", dto.ToSlideDTO(*slide))
}

// 🗑️ DELETE: admin
func (ctrl *SlideController) DeleteSlide(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to delete slide")
	}
	return helper.JsonDeleted(c, "Slide deleted", nil)
}
