package dto

import (
	"time"

	"thaipk_backend/internals/features/home/articles/model"
)

type ArticleCategoryDTO struct {
	ArticleCategoryID          string    `json:"article_category_id"`
	ArticleCategoryName        string    `json:"article_category_name"`
	ArticleCategorySlug        string    `json:"article_category_slug"`
	ArticleCategoryDescription *string   `json:"article_category_description,omitempty"`
	ArticleCategoryCreatedAt   time.Time `json:"article_category_created_at"`
	ArticleCategoryUpdatedAt   time.Time `json:"article_category_updated_at"`
}

type CreateCategoryRequest struct {
	ArticleCategoryName        string `json:"name" validate:"required,min=2"`
	ArticleCategoryDescription string `json:"description"`
}

type UpdateCategoryRequest struct {
	ArticleCategoryName        *string `json:"name" validate:"omitempty,min=2"`
	ArticleCategoryDescription *string `json:"description"`
}

func ToArticleCategoryDTO(m model.ArticleCategoryModel) ArticleCategoryDTO {
	return ArticleCategoryDTO{
		ArticleCategoryID:          m.ArticleCategoryID.String(),
		ArticleCategoryName:        m.ArticleCategoryName,
		ArticleCategorySlug:        m.ArticleCategorySlug,
		ArticleCategoryDescription: m.ArticleCategoryDescription,
		ArticleCategoryCreatedAt:   m.ArticleCategoryCreatedAt,
		ArticleCategoryUpdatedAt:   m.ArticleCategoryUpdatedAt,
	}
}

func ToArticleCategoryDTOList(ms []model.ArticleCategoryModel) []ArticleCategoryDTO {
	out := make([]ArticleCategoryDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToArticleCategoryDTO(m))
	}
	return out
}
