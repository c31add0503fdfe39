package dto

import (
	"time"

	"thaipk_backend/internals/features/company/profile/model"
)

type CompanyInfoDTO struct {
	CompanyInfoID          string    `json:"company_info_id"`
	CompanyInfoName        string    `json:"company_info_name"`
	CompanyInfoLogoURL     *string   `json:"company_info_logo_url,omitempty"`
	CompanyInfoLogoURLDark *string   `json:"company_info_logo_url_dark,omitempty"`
	CompanyInfoPhone       *string   `json:"company_info_phone,omitempty"`
	CompanyInfoEmail       *string   `json:"company_info_email,omitempty"`
	CompanyInfoAddress     *string   `json:"company_info_address,omitempty"`
	CompanyInfoFacebookURL *string   `json:"company_info_facebook_url,omitempty"`
	CompanyInfoLineURL     *string   `json:"company_info_line_url,omitempty"`
	CompanyInfoSlogan      *string   `json:"company_info_slogan,omitempty"`
	CompanyInfoDescription *string   `json:"company_info_description,omitempty"`
	CompanyInfoUpdatedAt   time.Time `json:"company_info_updated_at"`
}

// SaveCompanyInfoRequest: multipart fields; logos arrive as "logo" and
// "logo_dark" files.
type SaveCompanyInfoRequest struct {
	CompanyInfoName        string `form:"company_name" validate:"required,min=2"`
	CompanyInfoPhone       string `form:"phone"`
	CompanyInfoEmail       string `form:"email" validate:"omitempty,email"`
	CompanyInfoAddress     string `form:"address"`
	CompanyInfoFacebookURL string `form:"facebook_url" validate:"omitempty,url"`
	CompanyInfoLineURL     string `form:"line_url" validate:"omitempty,url"`
	CompanyInfoSlogan      string `form:"slogan"`
	CompanyInfoDescription string `form:"description"`
}

func ToCompanyInfoDTO(m model.CompanyInfoModel) CompanyInfoDTO {
	return CompanyInfoDTO{
		CompanyInfoID:          m.CompanyInfoID.String(),
		CompanyInfoName:        m.CompanyInfoName,
		CompanyInfoLogoURL:     m.CompanyInfoLogoURL,
		CompanyInfoLogoURLDark: m.CompanyInfoLogoURLDark,
		CompanyInfoPhone:       m.CompanyInfoPhone,
		CompanyInfoEmail:       m.CompanyInfoEmail,
		CompanyInfoAddress:     m.CompanyInfoAddress,
		CompanyInfoFacebookURL: m.CompanyInfoFacebookURL,
		CompanyInfoLineURL:     m.CompanyInfoLineURL,
		CompanyInfoSlogan:      m.CompanyInfoSlogan,
		CompanyInfoDescription: m.CompanyInfoDescription,
		CompanyInfoUpdatedAt:   m.CompanyInfoUpdatedAt,
	}
}
