package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AlbumImageModel is one photo inside an album. display_order defines the
// render sequence; position 0 is mirrored into the album's cover URL.
type AlbumImageModel struct {
	AlbumImageID           uuid.UUID `gorm:"column:album_image_id;primaryKey;type:uuid" json:"album_image_id"`
	AlbumImageAlbumID      uuid.UUID `gorm:"column:album_image_album_id;type:uuid;not null;index" json:"album_image_album_id"`
	AlbumImageURL          string    `gorm:"column:album_image_url;type:text;not null" json:"album_image_url"`
	AlbumImageCaption      *string   `gorm:"column:album_image_caption;type:text" json:"album_image_caption"`
	AlbumImageDisplayOrder int       `gorm:"column:album_image_display_order;not null;default:0" json:"album_image_display_order"`
	AlbumImageCreatedAt    time.Time `gorm:"column:album_image_created_at;autoCreateTime" json:"album_image_created_at"`
}

func (AlbumImageModel) TableName() string {
	return "album_images"
}

func (m *AlbumImageModel) BeforeCreate(tx *gorm.DB) error {
	if m.AlbumImageID == uuid.Nil {
		m.AlbumImageID = uuid.New()
	}
	return nil
}
