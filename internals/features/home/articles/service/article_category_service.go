package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"thaipk_backend/internals/features/home/articles/model"
	helper "thaipk_backend/internals/helpers"
	"thaipk_backend/internals/helpers/errs"
)

type ArticleCategoryService struct {
	DB *gorm.DB
}

func NewArticleCategoryService(db *gorm.DB) *ArticleCategoryService {
	return &ArticleCategoryService{DB: db}
}

func (s *ArticleCategoryService) List(ctx context.Context) ([]model.ArticleCategoryModel, error) {
	var cats []model.ArticleCategoryModel
	if err := s.DB.WithContext(ctx).
		Order("article_category_name ASC").
		Find(&cats).Error; err != nil {
		return nil, errs.Backend("list categories", err)
	}
	return cats, nil
}

func (s *ArticleCategoryService) Get(ctx context.Context, id string) (*model.ArticleCategoryModel, error) {
	var cat model.ArticleCategoryModel
	if err := s.DB.WithContext(ctx).First(&cat, "article_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Backend("get category", err)
	}
	return &cat, nil
}

// Create derives the slug from the name, probing for a free one.
func (s *ArticleCategoryService) Create(ctx context.Context, name string, description *string) (*model.ArticleCategoryModel, error) {
	base := helper.Slugify(name, 100)
	slug, err := helper.EnsureUniqueSlug(s.DB.WithContext(ctx), base, "article_categories", "article_category_slug")
	if err != nil {
		return nil, errs.Backend("resolve category slug", err)
	}

	cat := model.ArticleCategoryModel{
		ArticleCategoryName:        name,
		ArticleCategorySlug:        slug,
		ArticleCategoryDescription: description,
	}
	if err := s.DB.WithContext(ctx).Create(&cat).Error; err != nil {
		return nil, errs.Backend("create category", err)
	}
	return &cat, nil
}

func (s *ArticleCategoryService) Update(ctx context.Context, id string, name *string, description *string) (*model.ArticleCategoryModel, error) {
	cat, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != nil && *name != "" {
		cat.ArticleCategoryName = *name
	}
	if description != nil {
		cat.ArticleCategoryDescription = description
	}

	if err := s.DB.WithContext(ctx).Save(cat).Error; err != nil {
		return nil, errs.Backend("update category", err)
	}
	return cat, nil
}

// Delete detaches the category from its articles first so they fall back to
// "uncategorized" instead of pointing at a dead id.
func (s *ArticleCategoryService) Delete(ctx context.Context, id string) error {
	if err := s.DB.WithContext(ctx).
		Model(&model.ArticleModel{}).
		Where("article_category_id = ?", id).
		Update("article_category_id", nil).Error; err != nil {
		return errs.Backend("detach category", err)
	}

	if err := s.DB.WithContext(ctx).
		Delete(&model.ArticleCategoryModel{}, "article_category_id = ?", id).Error; err != nil {
		return errs.Backend("delete category", err)
	}
	return nil
}
