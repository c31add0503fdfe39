package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SlideModel struct {
	SlideID           uuid.UUID `gorm:"column:slide_id;primaryKey;type:uuid" json:"slide_id"`
	SlideTitle        *string   `gorm:"column:slide_title;type:varchar(255)" json:"slide_title"`
	SlideImageURL     string    `gorm:"column:slide_image_url;type:text;not null" json:"slide_image_url"`
	SlideLinkURL      *string   `gorm:"column:slide_link_url;type:text" json:"slide_link_url"`
	SlideDisplayOrder int       `gorm:"column:slide_display_order;not null;default:0" json:"slide_display_order"`
	SlideIsActive     bool      `gorm:"column:slide_is_active;not null;default:true" json:"slide_is_active"`
	SlideCreatedAt    time.Time `gorm:"column:slide_created_at;autoCreateTime" json:"slide_created_at"`
	SlideUpdatedAt    time.Time `gorm:"column:slide_updated_at;autoUpdateTime" json:"slide_updated_at"`
}

func (SlideModel) TableName() string {
	return "slides"
}

func (m *SlideModel) BeforeCreate(tx *gorm.DB) error {
	if m.SlideID == uuid.Nil {
		m.SlideID = uuid.New()
	}
	return nil
}
