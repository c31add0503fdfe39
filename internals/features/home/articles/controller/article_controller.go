package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/home/articles/dto"
	"thaipk_backend/internals/features/home/articles/service"
	helper "thaipk_backend/internals/helpers"
	"thaipk_backend/internals/helpers/storage"
)

var validateArticle = validator.New()

type ArticleController struct {
	Service *service.ArticleService
}

func NewArticleController(db *gorm.DB, store storage.ObjectStore) *ArticleController {
	return &ArticleController{Service: service.NewArticleService(db, store)}
}

// ✅ GET: public - published articles
func (ctrl *ArticleController) GetPublishedArticles(c *fiber.Ctx) error {
	articles, err := ctrl.Service.ListPublished(c.UserContext())
	if err != nil {
		log.Println("[ERROR] list published articles:", err)
		return helper.JsonFromServiceError(c, err, "Failed to fetch articles")
	}
	c.Set(fiber.HeaderCacheControl, "public, max-age=60, stale-while-revalidate=120")
	return helper.JsonList(c, dto.ToArticleDTOList(articles), nil)
}

// ✅ GET: public - one article by slug (published only)
func (ctrl *ArticleController) GetArticleBySlug(c *fiber.Ctx) error {
	article, err := ctrl.Service.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to fetch article")
	}
	return helper.JsonOK(c, "OK", dto.ToArticleDTO(*article))
}

// ✅ GET: admin - all articles incl. drafts
func (ctrl *ArticleController) GetAllArticles(c *fiber.Ctx) error {
	articles, err := ctrl.Service.List(c.UserContext())
	if err != nil {
		log.Println("[ERROR] list articles:", err)
		return helper.JsonFromServiceError(c, err, "Failed to fetch articles")
	}
	return helper.JsonList(c, dto.ToArticleDTOList(articles), nil)
}

func (ctrl *ArticleController) GetArticleByID(c *fiber.Ctx) error {
	article, err := ctrl.Service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to fetch article")
	}
	return helper.JsonOK(c, "OK", dto.ToArticleDTO(*article))
}

// ➕ POST: admin - create (multipart; featured image under "image")
func (ctrl *ArticleController) CreateArticle(c *fiber.Ctx) error {
	var body dto.CreateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	in := service.ArticleInput{
		Title:   body.ArticleTitle,
		Content: body.ArticleContent,
		Status:  body.ArticleStatus,
	}
	if v := strings.TrimSpace(body.ArticleExcerpt); v != "" {
		in.Excerpt = &v
	}
	if body.ArticleCategoryID != "" {
		cid, perr := uuid.Parse(body.ArticleCategoryID)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
		}
		in.CategoryID = &cid
	}

	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		url, uerr := ctrl.Service.UploadImage(c.UserContext(), file, false)
		if uerr != nil {
			log.Println("[ERROR] upload article image:", uerr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload image")
		}
		in.ImageURL = &url
	}

	article, err := ctrl.Service.Create(c.UserContext(), in)
	if err != nil {
		log.Println("[ERROR] create article:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create article")
	}

	return helper.JsonCreated(c, "Article created", dto.ToArticleDTO(*article))
}

// 🔄 PUT: admin - partial update
func (ctrl *ArticleController) UpdateArticle(c *fiber.Ctx) error {
	var up service.ArticleUpdate

	if v := c.FormValue("title"); v != "" {
		up.Title = &v
	}
	if v := c.FormValue("content"); v != "" {
		up.Content = &v
	}
	if v := c.FormValue("excerpt"); v != "" {
		up.Excerpt = &v
	}
	if v := c.FormValue("status"); v != "" {
		if v != "draft" && v != "published" {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status")
		}
		up.Status = &v
	}
	if v := c.FormValue("category_id"); v != "" {
		cid, perr := uuid.Parse(v)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
		}
		up.CategoryID = &cid
	}

	if file, ferr := c.FormFile("image"); ferr == nil && file != nil {
		url, uerr := ctrl.Service.UploadImage(c.UserContext(), file, false)
		if uerr != nil {
			log.Println("[ERROR] upload article image:", uerr)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload image")
		}
		up.ImageURL = &url
	}

	article, err := ctrl.Service.Update(c.UserContext(), c.Params("id"), up)
	if err != nil {
		log.Println("[ERROR] update article:", err)
		return helper.JsonFromServiceError(c, err, "Failed to update article")
	}

	return helper.JsonUpdated(c, "Article updated", dto.ToArticleDTO(*article))
}

// ➕ POST: admin - editor content image upload, returns the URL only
func (ctrl *ArticleController) UploadContentImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Image file is required")
	}
	url, err := ctrl.Service.UploadImage(c.UserContext(), file, true)
	if err != nil {
		log.Println("[ERROR] upload content image:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to upload image")
	}
	return helper.JsonCreated(c, "Image uploaded", fiber.Map{"url": url})
}

// 🗑️ DELETE: admin
func (ctrl *ArticleController) DeleteArticle(c *fiber.Ctx) error {
	if err := ctrl.Service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helper.JsonFromServiceError(c, err, "Failed to delete article")
	}
	return helper.JsonDeleted(c, "Article deleted", nil)
}
