package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ArticleCategoryModel struct {
	ArticleCategoryID          uuid.UUID `gorm:"column:article_category_id;primaryKey;type:uuid" json:"article_category_id"`
	ArticleCategoryName        string    `gorm:"column:article_category_name;type:varchar(120);not null" json:"article_category_name"`
	ArticleCategorySlug        string    `gorm:"column:article_category_slug;type:varchar(120);not null;index" json:"article_category_slug"`
	ArticleCategoryDescription *string   `gorm:"column:article_category_description;type:text" json:"article_category_description"`
	ArticleCategoryCreatedAt   time.Time `gorm:"column:article_category_created_at;autoCreateTime" json:"article_category_created_at"`
	ArticleCategoryUpdatedAt   time.Time `gorm:"column:article_category_updated_at;autoUpdateTime" json:"article_category_updated_at"`
}

func (ArticleCategoryModel) TableName() string {
	return "article_categories"
}

func (m *ArticleCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ArticleCategoryID == uuid.Nil {
		m.ArticleCategoryID = uuid.New()
	}
	return nil
}
