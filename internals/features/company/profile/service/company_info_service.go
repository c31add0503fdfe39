package service

import (
	"context"
	"errors"
	"log"
	"mime/multipart"

	"gorm.io/gorm"

	"thaipk_backend/internals/features/company/profile/model"
	"thaipk_backend/internals/helpers/errs"
	"thaipk_backend/internals/helpers/images"
	"thaipk_backend/internals/helpers/storage"
)

type CompanyInfoService struct {
	DB    *gorm.DB
	Store storage.ObjectStore
}

func NewCompanyInfoService(db *gorm.DB, store storage.ObjectStore) *CompanyInfoService {
	return &CompanyInfoService{DB: db, Store: store}
}

// Get returns the singleton row or ErrNotFound on first run.
func (s *CompanyInfoService) Get(ctx context.Context) (*model.CompanyInfoModel, error) {
	var info model.CompanyInfoModel
	if err := s.DB.WithContext(ctx).First(&info).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.Backend("get company info", err)
	}
	return &info, nil
}

// UploadLogo pushes a logo binary through the PNG preset (alpha preserved).
func (s *CompanyInfoService) UploadLogo(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	data, err := images.TransformFile(fh, images.PresetLogo)
	if err != nil {
		return "", errs.Upload("transform logo", err)
	}
	url, err := s.Store.Upload(ctx, "logo-"+images.PresetLogo.FileName(), images.PresetLogo.ContentType(), data)
	if err != nil {
		return "", errs.Upload("upload logo", err)
	}
	return url, nil
}

// SaveInput carries only what the form sent; nil leaves a field untouched on
// update. Logo URLs are set by the controller after upload.
type SaveInput struct {
	Name        string
	Phone       *string
	Email       *string
	Address     *string
	FacebookURL *string
	LineURL     *string
	Slogan      *string
	Description *string
	LogoURL     *string
	LogoURLDark *string
}

// Save is idempotent in effect: it probes for the singleton and either
// creates it or updates it in place. Two identical saves leave one row.
// Replaced logo binaries are removed best-effort.
func (s *CompanyInfoService) Save(ctx context.Context, in SaveInput) (*model.CompanyInfoModel, error) {
	existing, err := s.Get(ctx)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	if existing == nil {
		info := model.CompanyInfoModel{
			CompanyInfoName:        in.Name,
			CompanyInfoPhone:       in.Phone,
			CompanyInfoEmail:       in.Email,
			CompanyInfoAddress:     in.Address,
			CompanyInfoFacebookURL: in.FacebookURL,
			CompanyInfoLineURL:     in.LineURL,
			CompanyInfoSlogan:      in.Slogan,
			CompanyInfoDescription: in.Description,
			CompanyInfoLogoURL:     in.LogoURL,
			CompanyInfoLogoURLDark: in.LogoURLDark,
		}
		if err := s.DB.WithContext(ctx).Create(&info).Error; err != nil {
			return nil, errs.Backend("create company info", err)
		}
		return &info, nil
	}

	if in.Name != "" {
		existing.CompanyInfoName = in.Name
	}
	if in.Phone != nil {
		existing.CompanyInfoPhone = in.Phone
	}
	if in.Email != nil {
		existing.CompanyInfoEmail = in.Email
	}
	if in.Address != nil {
		existing.CompanyInfoAddress = in.Address
	}
	if in.FacebookURL != nil {
		existing.CompanyInfoFacebookURL = in.FacebookURL
	}
	if in.LineURL != nil {
		existing.CompanyInfoLineURL = in.LineURL
	}
	if in.Slogan != nil {
		existing.CompanyInfoSlogan = in.Slogan
	}
	if in.Description != nil {
		existing.CompanyInfoDescription = in.Description
	}
	if in.LogoURL != nil {
		s.dropOldLogo(ctx, existing.CompanyInfoLogoURL, in.LogoURL)
		existing.CompanyInfoLogoURL = in.LogoURL
	}
	if in.LogoURLDark != nil {
		s.dropOldLogo(ctx, existing.CompanyInfoLogoURLDark, in.LogoURLDark)
		existing.CompanyInfoLogoURLDark = in.LogoURLDark
	}

	if err := s.DB.WithContext(ctx).Save(existing).Error; err != nil {
		return nil, errs.Backend("update company info", err)
	}
	return existing, nil
}

func (s *CompanyInfoService) dropOldLogo(ctx context.Context, old, new *string) {
	if old == nil || *old == "" || (new != nil && *old == *new) {
		return
	}
	if err := s.Store.DeleteByURL(ctx, *old); err != nil {
		log.Printf("[ERROR] old logo not deleted: %s: %v", *old, err)
	}
}
