package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminSettings holds the admin's notification preferences.
// One row per admin user.
type AdminSettings struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	NotificationEmail          string
	NotificationPhone          string
	NotificationPhoneSecondary string

	SendEmail bool `gorm:"default:true"`
	SendSMS   bool `gorm:"default:false"`

	NotifyOnSelection        bool `gorm:"default:true"`
	NotifyOnMissingSelection bool `gorm:"default:true"`
	NotifyOnCustomDish       bool `gorm:"default:true"`
	DailySummary             bool `gorm:"default:false"`

	// Days before a user's delivery day at which the admin is alerted
	// about a missing selection.
	AutoReminderDaysBefore int `gorm:"default:2"` // 1..5

	gorm.Model
}

func (a *AdminSettings) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}
