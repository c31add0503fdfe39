package service

import (
	"context"
	"errors"
	"log"
	"mime/multipart"

	"gorm.io/gorm"

	"thaipk_backend/internals/features/home/slides/model"
	"thaipk_backend/internals/helpers/errs"
	"thaipk_backend/internals/helpers/images"
	"thaipk_backend/internals/helpers/storage"
)

// Slide binaries live under their own prefix in the bucket.
const slideFolder = "slides"

type SlideService struct {
	DB    *gorm.DB
	Store storage.ObjectStore
}

func NewSlideService(db *gorm.DB, store storage.ObjectStore) *SlideService {
	return &SlideService{DB: db, Store: store}
}

// ListActive returns the public carousel: active slides in display order.
func (s *SlideService) ListActive(ctx context.Context) ([]model.SlideModel, error) {
	var slides []model.SlideModel
	if err := s.DB.WithContext(ctx).
		Where("slide_is_active = ?", true).
		Order("slide_display_order ASC").
		Find(&slides).Error; err != nil {
		return nil, errs.Backend("list active slides", err)
	}
	return slides, nil
}

// ListAll is the admin view: every slide, active or not.
func (s *SlideService) ListAll(ctx context.Context) ([]model.SlideModel, error) {
	var slides []model.SlideModel
	if err := s.DB.WithContext(ctx).
		Order("slide_display_order ASC").
		Find(&slides).Error; err != nil {
		return nil, errs.Backend("list slides", err)
	}
	return slides, nil
}

func (s *SlideService) Get(ctx context.Context, id string) (*model.SlideModel, error) {
	var slide model.SlideModel
	if err := s.DB.WithContext(ctx).First(&slide, "slide_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Backend("get slide", err)
	}
	return &slide, nil
}

// UploadImage runs the binary through the slide preset and stores it under
// the slides/ prefix.
func (s *SlideService) UploadImage(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	data, err := images.TransformFile(fh, images.PresetSlide)
	if err != nil {
		return "", errs.Upload("transform slide image", err)
	}
	path := slideFolder + "/" + images.PresetSlide.FileName()
	url, err := s.Store.Upload(ctx, path, images.PresetSlide.ContentType(), data)
	if err != nil {
		return "", errs.Upload("upload slide image", err)
	}
	return url, nil
}

func (s *SlideService) Create(ctx context.Context, slide *model.SlideModel) error {
	if err := s.DB.WithContext(ctx).Create(slide).Error; err != nil {
		return errs.Backend("create slide", err)
	}
	return nil
}

func (s *SlideService) Update(ctx context.Context, slide *model.SlideModel) error {
	if err := s.DB.WithContext(ctx).Save(slide).Error; err != nil {
		return errs.Backend("update slide", err)
	}
	return nil
}

// SetActive flips the public visibility of one slide.
func (s *SlideService) SetActive(ctx context.Context, id string, active bool) (*model.SlideModel, error) {
	slide, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	slide.SlideIsActive = active
	if err := s.DB.WithContext(ctx).Save(slide).Error; err != nil {
		return nil, errs.Backend("toggle slide", err)
	}
	return slide, nil
}

// Delete removes the stored binary first (best-effort) and then the row.
func (s *SlideService) Delete(ctx context.Context, id string) error {
	slide, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if slide.SlideImageURL != "" {
		if cerr := s.Store.DeleteByURL(ctx, slide.SlideImageURL); cerr != nil {
			log.Printf("[ERROR] slide %s: binary not deleted: %v", id, cerr)
		}
	}

	if err := s.DB.WithContext(ctx).Delete(&model.SlideModel{}, "slide_id = ?", id).Error; err != nil {
		return errs.Backend("delete slide", err)
	}
	return nil
}
