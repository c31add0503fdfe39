package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyInfoModel is a singleton row: the service decides create-vs-update
// by probing for an existing record.
type CompanyInfoModel struct {
	CompanyInfoID          uuid.UUID `gorm:"column:company_info_id;primaryKey;type:uuid" json:"company_info_id"`
	CompanyInfoName        string    `gorm:"column:company_info_name;type:varchar(255);not null" json:"company_info_name"`
	CompanyInfoLogoURL     *string   `gorm:"column:company_info_logo_url;type:text" json:"company_info_logo_url"`
	CompanyInfoLogoURLDark *string   `gorm:"column:company_info_logo_url_dark;type:text" json:"company_info_logo_url_dark"`
	CompanyInfoPhone       *string   `gorm:"column:company_info_phone;type:varchar(50)" json:"company_info_phone"`
	CompanyInfoEmail       *string   `gorm:"column:company_info_email;type:varchar(255)" json:"company_info_email"`
	CompanyInfoAddress     *string   `gorm:"column:company_info_address;type:text" json:"company_info_address"`
	CompanyInfoFacebookURL *string   `gorm:"column:company_info_facebook_url;type:text" json:"company_info_facebook_url"`
	CompanyInfoLineURL     *string   `gorm:"column:company_info_line_url;type:text" json:"company_info_line_url"`
	CompanyInfoSlogan      *string   `gorm:"column:company_info_slogan;type:text" json:"company_info_slogan"`
	CompanyInfoDescription *string   `gorm:"column:company_info_description;type:text" json:"company_info_description"`
	CompanyInfoCreatedAt   time.Time `gorm:"column:company_info_created_at;autoCreateTime" json:"company_info_created_at"`
	CompanyInfoUpdatedAt   time.Time `gorm:"column:company_info_updated_at;autoUpdateTime" json:"company_info_updated_at"`
}

func (CompanyInfoModel) TableName() string {
	return "company_info"
}

func (m *CompanyInfoModel) BeforeCreate(tx *gorm.DB) error {
	if m.CompanyInfoID == uuid.Nil {
		m.CompanyInfoID = uuid.New()
	}
	return nil
}
