package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

type ArticleModel struct {
	ArticleID               uuid.UUID  `gorm:"column:article_id;primaryKey;type:uuid" json:"article_id"`
	ArticleTitle            string     `gorm:"column:article_title;type:varchar(255);not null" json:"article_title"`
	ArticleSlug             string     `gorm:"column:article_slug;type:varchar(255);not null;index" json:"article_slug"`
	ArticleContent          string     `gorm:"column:article_content;type:text;not null" json:"article_content"`
	ArticleExcerpt          *string    `gorm:"column:article_excerpt;type:text" json:"article_excerpt"`
	ArticleFeaturedImageURL *string    `gorm:"column:article_featured_image_url;type:text" json:"article_featured_image_url"`
	ArticleCategoryID       *uuid.UUID `gorm:"column:article_category_id;type:uuid;index" json:"article_category_id"`
	ArticleStatus           string     `gorm:"column:article_status;type:varchar(20);not null;default:draft" json:"article_status"`
	ArticlePublishedAt      *time.Time `gorm:"column:article_published_at" json:"article_published_at"`
	ArticleCreatedAt        time.Time  `gorm:"column:article_created_at;autoCreateTime" json:"article_created_at"`
	ArticleUpdatedAt        time.Time  `gorm:"column:article_updated_at;autoUpdateTime" json:"article_updated_at"`

	Category *ArticleCategoryModel `gorm:"foreignKey:ArticleCategoryID;references:ArticleCategoryID" json:"category,omitempty"`
}

func (ArticleModel) TableName() string {
	return "articles"
}

func (m *ArticleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ArticleID == uuid.Nil {
		m.ArticleID = uuid.New()
	}
	return nil
}
