package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlbumModel struct {
	AlbumID            uuid.UUID `gorm:"column:album_id;primaryKey;type:uuid" json:"album_id"`
	AlbumTitle         string    `gorm:"column:album_title;type:varchar(255);not null" json:"album_title"`
	AlbumDescription   *string   `gorm:"column:album_description;type:text" json:"album_description"`
	AlbumCoverImageURL string    `gorm:"column:album_cover_image_url;type:text;not null" json:"album_cover_image_url"`
	AlbumCreatedAt     time.Time `gorm:"column:album_created_at;autoCreateTime" json:"album_created_at"`
	AlbumUpdatedAt     time.Time `gorm:"column:album_updated_at;autoUpdateTime" json:"album_updated_at"`
}

func (AlbumModel) TableName() string {
	return "albums"
}

func (m *AlbumModel) BeforeCreate(tx *gorm.DB) error {
	if m.AlbumID == uuid.Nil {
		m.AlbumID = uuid.New()
	}
	return nil
}
