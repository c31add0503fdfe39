package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/home/articles/dto"
	"thaipk_backend/internals/features/home/articles/service"
	helper "thaipk_backend/internals/helpers"
)

type ArticleCategoryController struct {
	Service *service.ArticleCategoryService
}

func NewArticleCategoryController(db *gorm.DB) *ArticleCategoryController {
	return &ArticleCategoryController{Service: service.NewArticleCategoryService(db)}
}

// ✅ GET: categories by name
func (ctrl *ArticleCategoryController) GetAllCategories(c *fiber.Ctx) error {
	cats, err := ctrl.Service.List(c.UserContext())
	if err != nil {
		log.Println("[ERROR] list categories:", err)
		return helper.JsonFromServiceError(c, err, "Failed to fetch categories")
	}
	return helper.JsonList(c, dto.ToArticleCategoryDTOList(cats), nil)
}

func (ctrl *ArticleCategoryController) GetCategoryByID(c *fiber.Ctx) error {
	cat, err := ctrl.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to fetch category")
	}
	return helper.JsonOK(c, "OK", dto.ToArticleCategoryDTO(*cat))
}

// ➕ POST: admin
func (ctrl *ArticleCategoryController) CreateCategory(c *fiber.Ctx) error {
	var body dto.CreateCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var desc *string
	if v := strings.TrimSpace(body.ArticleCategoryDescription); v != "" {
		desc = &v
	}

	cat, err := ctrl.Service.Create(c.UserContext(), body.ArticleCategoryName, desc)
	if err != nil {
		log.Println("[ERROR] create category:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.JsonCreated(c, "Category created", dto.ToArticleCategoryDTO(*cat))
}

// 🔄 PUT: admin
func (ctrl *ArticleCategoryController) UpdateCategory(c *fiber.Ctx) error {
	var body dto.UpdateCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	cat, err := ctrl.Service.Update(c.UserContext(), c.Params("id"), body.ArticleCategoryName, body.ArticleCategoryDescription)
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to update category")
	}
	return helper.JsonUpdated(c, "Category updated", dto.ToArticleCategoryDTO(*cat))
}

// 🗑️ DELETE: admin
func (ctrl *ArticleCategoryController) DeleteCategory(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to delete category")
	}
	return helper.JsonDeleted(c, "Category deleted", nil)
}
