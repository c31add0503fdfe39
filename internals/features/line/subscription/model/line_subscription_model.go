package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LineSubscriptionModel is one chat that opted into contact notifications.
// LineSubscriptionUserID is the LINE userId (or groupId) push target.
type LineSubscriptionModel struct {
	LineSubscriptionID          uuid.UUID `gorm:"column:line_subscription_id;type:uuid;primaryKey" json:"line_subscription_id"`
	LineSubscriptionUserID      string    `gorm:"column:line_subscription_user_id;type:varchar(64);uniqueIndex;not null" json:"line_subscription_user_id"`
	LineSubscriptionDisplayName *string   `gorm:"column:line_subscription_display_name;type:varchar(128)" json:"line_subscription_display_name,omitempty"`
	LineSubscriptionCreatedAt   time.Time `gorm:"column:line_subscription_created_at;autoCreateTime" json:"line_subscription_created_at"`
}

func (LineSubscriptionModel) TableName() string {
	return "line_subscriptions"
}

func (m *LineSubscriptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.LineSubscriptionID == uuid.Nil {
		m.LineSubscriptionID = uuid.New()
	}
	return nil
}
