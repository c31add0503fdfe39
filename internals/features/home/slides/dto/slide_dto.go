package dto

import (
	"time"

	"thaipk_backend/internals/features/home/slides/model"
)

// ============================
// Response DTO
// ============================

type SlideDTO struct {
	SlideID           string    `json:"slide_id"`
	SlideTitle        *string   `json:"slide_title,omitempty"`
	SlideImageURL     string    `json:"slide_image_url"`
	SlideLinkURL      *string   `json:"slide_link_url,omitempty"`
	SlideDisplayOrder int       `json:"slide_display_order"`
	SlideIsActive     bool      `json:"slide_is_active"`
	SlideCreatedAt    time.Time `json:"slide_created_at"`
	SlideUpdatedAt    time.Time `json:"slide_updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

// Multipart form fields; the binary arrives separately as the "image" file.
type CreateSlideRequest struct {
	SlideTitle        string `form:"title"`
	SlideLinkURL      string `form:"link_url" validate:"omitempty,url"`
	SlideDisplayOrder int    `form:"display_order" validate:"gte=0"`
	SlideIsActive     bool   `form:"is_active"`
}

type UpdateSlideRequest struct {
	SlideTitle        *string `form:"title"`
	SlideLinkURL      *string `form:"link_url" validate:"omitempty,url"`
	SlideDisplayOrder *int    `form:"display_order" validate:"omitempty,gte=0"`
	SlideIsActive     *bool   `form:"is_active"`
}

// ============================
// Converter
// ============================

func ToSlideDTO(m model.SlideModel) SlideDTO {
	return SlideDTO{
		SlideID:           m.SlideID.String(),
		SlideTitle:        m.SlideTitle,
		SlideImageURL:     m.SlideImageURL,
		SlideLinkURL:      m.SlideLinkURL,
		SlideDisplayOrder: m.SlideDisplayOrder,
		SlideIsActive:     m.SlideIsActive,
		SlideCreatedAt:    m.SlideCreatedAt,
		SlideUpdatedAt:    m.SlideUpdatedAt,
	}
}

func ToSlideDTOList(ms []model.SlideModel) []SlideDTO {
	out := make([]SlideDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToSlideDTO(m))
	}
	return out
}
