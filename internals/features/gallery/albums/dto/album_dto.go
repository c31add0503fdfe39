package dto

import (
	"time"

	"thaipk_backend/internals/features/gallery/albums/model"
)

// ============================
// Response DTO
// ============================

type AlbumDTO struct {
	AlbumID            string    `json:"album_id"`
	AlbumTitle         string    `json:"album_title"`
	AlbumDescription   *string   `json:"album_description,omitempty"`
	AlbumCoverImageURL string    `json:"album_cover_image_url"`
	AlbumCreatedAt     time.Time `json:"album_created_at"`
	AlbumUpdatedAt     time.Time `json:"album_updated_at"`
}

type AlbumImageDTO struct {
	AlbumImageID           string  `json:"album_image_id"`
	AlbumImageAlbumID      string  `json:"album_image_album_id"`
	AlbumImageURL          string  `json:"album_image_url"`
	AlbumImageCaption      *string `json:"album_image_caption,omitempty"`
	AlbumImageDisplayOrder int     `json:"album_image_display_order"`
}

// ============================
// Request DTO
// ============================

type CreateAlbumRequest struct {
	AlbumTitle       string `form:"title" validate:"required,min=2"`
	AlbumDescription string `form:"description"`
}

// ImageLayoutEntry is the tagged union the admin panel submits on edit: each
// position either reuses an existing stored URL or points at one of the new
// uploads by index.
type ImageLayoutEntry struct {
	Kind      string `json:"kind" validate:"required,oneof=existing new"`
	URL       string `json:"url,omitempty"`
	FileIndex int    `json:"file_index,omitempty"`
}

// ============================
// Converter
// ============================

func ToAlbumDTO(m model.AlbumModel) AlbumDTO {
	return AlbumDTO{
		AlbumID:            m.AlbumID.String(),
		AlbumTitle:         m.AlbumTitle,
		AlbumDescription:   m.AlbumDescription,
		AlbumCoverImageURL: m.AlbumCoverImageURL,
		AlbumCreatedAt:     m.AlbumCreatedAt,
		AlbumUpdatedAt:     m.AlbumUpdatedAt,
	}
}

func ToAlbumDTOList(ms []model.AlbumModel) []AlbumDTO {
	out := make([]AlbumDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAlbumDTO(m))
	}
	return out
}

func ToAlbumImageDTO(m model.AlbumImageModel) AlbumImageDTO {
	return AlbumImageDTO{
		AlbumImageID:           m.AlbumImageID.String(),
		AlbumImageAlbumID:      m.AlbumImageAlbumID.String(),
		AlbumImageURL:          m.AlbumImageURL,
		AlbumImageCaption:      m.AlbumImageCaption,
		AlbumImageDisplayOrder: m.AlbumImageDisplayOrder,
	}
}

func ToAlbumImageDTOList(ms []model.AlbumImageModel) []AlbumImageDTO {
	out := make([]AlbumImageDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAlbumImageDTO(m))
	}
	return out
}
