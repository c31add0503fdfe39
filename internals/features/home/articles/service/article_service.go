package service

import (
	"context"
	"errors"
	"log"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"thaipk_backend/internals/features/home/articles/model"
	helper "thaipk_backend/internals/helpers"
	"thaipk_backend/internals/helpers/errs"
	"thaipk_backend/internals/helpers/images"
	"thaipk_backend/internals/helpers/storage"
)

type ArticleService struct {
	DB    *gorm.DB
	Store storage.ObjectStore
}

func NewArticleService(db *gorm.DB, store storage.ObjectStore) *ArticleService {
	return &ArticleService{DB: db, Store: store}
}

// ============================
// Reads
// ============================

func (s *ArticleService) List(ctx context.Context) ([]model.ArticleModel, error) {
	var articles []model.ArticleModel
	if err := s.DB.WithContext(ctx).
		Preload("Category").
		Order("article_created_at DESC").
		Find(&articles).Error; err != nil {
		return nil, errs.Backend("list articles", err)
	}
	return articles, nil
}

// ListPublished is the public feed: published only, newest first.
func (s *ArticleService) ListPublished(ctx context.Context) ([]model.ArticleModel, error) {
	var articles []model.ArticleModel
	if err := s.DB.WithContext(ctx).
		Preload("Category").
		Where("article_status = ?", model.ArticleStatusPublished).
		Order("article_published_at DESC").
		Find(&articles).Error; err != nil {
		return nil, errs.Backend("list published articles", err)
	}
	return articles, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*model.ArticleModel, error) {
	var article model.ArticleModel
	if err := s.DB.WithContext(ctx).
		Preload("Category").
		First(&article, "article_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Backend("get article", err)
	}
	return &article, nil
}

// GetBySlug serves the public article page; drafts stay invisible.
func (s *ArticleService) GetBySlug(ctx context.Context, slug string) (*model.ArticleModel, error) {
	var article model.ArticleModel
	if err := s.DB.WithContext(ctx).
		Preload("Category").
		Where("article_slug = ? AND article_status = ?", slug, model.ArticleStatusPublished).
		First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Backend("get article by slug", err)
	}
	return &article, nil
}

// ============================
// Upload
// ============================

// UploadImage stores a featured or in-content image. Content images use the
// smaller preset, marked by the admin editor via the content flag.
func (s *ArticleService) UploadImage(ctx context.Context, fh *multipart.FileHeader, content bool) (string, error) {
	preset := images.PresetArticle
	if content {
		preset = images.PresetArticleContent
	}
	data, err := images.TransformFile(fh, preset)
	if err != nil {
		return "", errs.Upload("transform article image", err)
	}
	url, err := s.Store.Upload(ctx, "article-"+preset.FileName(), preset.ContentType(), data)
	if err != nil {
		return "", errs.Upload("upload article image", err)
	}
	return url, nil
}

// ============================
// Writes
// ============================

type ArticleInput struct {
	Title      string
	Content    string
	Excerpt    *string
	CategoryID *uuid.UUID
	Status     string
	ImageURL   *string
}

// Create derives the slug from the title and probes for a free one. An
// article created directly as published gets its published_at stamped.
func (s *ArticleService) Create(ctx context.Context, in ArticleInput) (*model.ArticleModel, error) {
	status := in.Status
	if status == "" {
		status = model.ArticleStatusDraft
	}

	base := helper.Slugify(in.Title, 100)
	slug, err := helper.EnsureUniqueSlug(s.DB.WithContext(ctx), base, "articles", "article_slug")
	if err != nil {
		return nil, errs.Backend("resolve article slug", err)
	}

	article := model.ArticleModel{
		ArticleTitle:            in.Title,
		ArticleSlug:             slug,
		ArticleContent:          in.Content,
		ArticleExcerpt:          in.Excerpt,
		ArticleCategoryID:       in.CategoryID,
		ArticleStatus:           status,
		ArticleFeaturedImageURL: in.ImageURL,
	}
	if status == model.ArticleStatusPublished {
		now := time.Now()
		article.ArticlePublishedAt = &now
	}

	if err := s.DB.WithContext(ctx).Create(&article).Error; err != nil {
		return nil, errs.Backend("create article", err)
	}
	return &article, nil
}

type ArticleUpdate struct {
	Title      *string
	Content    *string
	Excerpt    *string
	CategoryID *uuid.UUID
	Status     *string
	ImageURL   *string
}

// Update applies only the supplied fields. published_at is stamped exactly on
// the draft→published transition and cleared on the way back; the slug is
// left alone so public URLs stay stable.
func (s *ArticleService) Update(ctx context.Context, id string, up ArticleUpdate) (*model.ArticleModel, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if up.Title != nil {
		article.ArticleTitle = *up.Title
	}
	if up.Content != nil {
		article.ArticleContent = *up.Content
	}
	if up.Excerpt != nil {
		article.ArticleExcerpt = up.Excerpt
	}
	if up.CategoryID != nil {
		article.ArticleCategoryID = up.CategoryID
	}
	if up.ImageURL != nil {
		if old := article.ArticleFeaturedImageURL; old != nil && *old != *up.ImageURL {
			if cerr := s.Store.DeleteByURL(ctx, *old); cerr != nil {
				log.Printf("[ERROR] article %s: old featured image not deleted: %v", id, cerr)
			}
		}
		article.ArticleFeaturedImageURL = up.ImageURL
	}
	if up.Status != nil && *up.Status != article.ArticleStatus {
		switch *up.Status {
		case model.ArticleStatusPublished:
			now := time.Now()
			article.ArticlePublishedAt = &now
		case model.ArticleStatusDraft:
			article.ArticlePublishedAt = nil
		}
		article.ArticleStatus = *up.Status
	}

	if err := s.DB.WithContext(ctx).Save(article).Error; err != nil {
		return nil, errs.Backend("update article", err)
	}
	return article, nil
}

// Delete removes the featured binary best-effort, then the row.
func (s *ArticleService) Delete(ctx context.Context, id string) error {
	article, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if article.ArticleFeaturedImageURL != nil {
		if cerr := s.Store.DeleteByURL(ctx, *article.ArticleFeaturedImageURL); cerr != nil {
			log.Printf("[ERROR] article %s: featured image not deleted: %v", id, cerr)
		}
	}

	if err := s.DB.WithContext(ctx).Delete(&model.ArticleModel{}, "article_id = ?", id).Error; err != nil {
		return errs.Backend("delete article", err)
	}
	return nil
}
