package dto

import (
	"time"

	"thaipk_backend/internals/features/home/articles/model"
)

// ============================
// Response DTO
// ============================

type ArticleDTO struct {
	ArticleID               string                  `json:"article_id"`
	ArticleTitle            string                  `json:"article_title"`
	ArticleSlug             string                  `json:"article_slug"`
	ArticleContent          string                  `json:"article_content"`
	ArticleExcerpt          *string                 `json:"article_excerpt,omitempty"`
	ArticleFeaturedImageURL *string                 `json:"article_featured_image_url,omitempty"`
	ArticleCategoryID       *string                 `json:"article_category_id,omitempty"`
	ArticleStatus           string                  `json:"article_status"`
	ArticlePublishedAt      *time.Time              `json:"article_published_at,omitempty"`
	ArticleCreatedAt        time.Time               `json:"article_created_at"`
	ArticleUpdatedAt        time.Time               `json:"article_updated_at"`
	Category                *ArticleCategoryPreview `json:"category,omitempty"`
}

type ArticleCategoryPreview struct {
	ArticleCategoryID   string `json:"article_category_id"`
	ArticleCategoryName string `json:"article_category_name"`
	ArticleCategorySlug string `json:"article_category_slug"`
}

// ============================
// Request DTO (multipart fields; featured image arrives as "image" file)
// ============================

type CreateArticleRequest struct {
	ArticleTitle      string `form:"title" validate:"required,min=3"`
	ArticleContent    string `form:"content" validate:"required"`
	ArticleExcerpt    string `form:"excerpt"`
	ArticleCategoryID string `form:"category_id" validate:"omitempty,uuid"`
	ArticleStatus     string `form:"status" validate:"omitempty,oneof=draft published"`
}

type UpdateArticleRequest struct {
	ArticleTitle      *string `form:"title" validate:"omitempty,min=3"`
	ArticleContent    *string `form:"content"`
	ArticleExcerpt    *string `form:"excerpt"`
	ArticleCategoryID *string `form:"category_id" validate:"omitempty,uuid"`
	ArticleStatus     *string `form:"status" validate:"omitempty,oneof=draft published"`
}

// ============================
// Converter
// ============================

func ToArticleDTO(m model.ArticleModel) ArticleDTO {
	out := ArticleDTO{
		ArticleID:               m.ArticleID.String(),
		ArticleTitle:            m.ArticleTitle,
		ArticleSlug:             m.ArticleSlug,
		ArticleContent:          m.ArticleContent,
		ArticleExcerpt:          m.ArticleExcerpt,
		ArticleFeaturedImageURL: m.ArticleFeaturedImageURL,
		ArticleStatus:           m.ArticleStatus,
		ArticlePublishedAt:      m.ArticlePublishedAt,
		ArticleCreatedAt:        m.ArticleCreatedAt,
		ArticleUpdatedAt:        m.ArticleUpdatedAt,
	}
	if m.ArticleCategoryID != nil {
		s := m.ArticleCategoryID.String()
		out.ArticleCategoryID = &s
	}
	if m.Category != nil {
		out.Category = &ArticleCategoryPreview{
			ArticleCategoryID:   m.Category.ArticleCategoryID.String(),
			ArticleCategoryName: m.Category.ArticleCategoryName,
			ArticleCategorySlug: m.Category.ArticleCategorySlug,
		}
	}
	return out
}

func ToArticleDTOList(ms []model.ArticleModel) []ArticleDTO {
	out := make([]ArticleDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToArticleDTO(m))
	}
	return out
}
