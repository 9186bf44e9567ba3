package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NotificationTypeUserReminder     = "user_reminder"
	NotificationTypeAdminSelection   = "admin_selection_notification"
	NotificationTypeMissingSelection = "admin_missing_selection"
	NotificationTypeCustomDish       = "admin_custom_dish"

	NotificationMethodEmail = "email"
	NotificationMethodSMS   = "sms"
	NotificationMethodBoth  = "both"

	NotificationStatusSent   = "sent"
	NotificationStatusFailed = "failed"
)

// NotificationLog is the append-only audit trail of dispatch attempts.
// Rows are never updated or deleted.
type NotificationLog struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	NotificationType string     `gorm:"type:varchar(40);index;not null"`
	RecipientUserID  *uuid.UUID `gorm:"type:uuid;index"`
	// AboutUserID is the user the notification concerns. For user
	// reminders it equals RecipientUserID; for admin alerts it is the
	// client the alert is about. Used for the same-day dedup check.
	AboutUserID *uuid.UUID `gorm:"type:uuid;index"`
	RecipientEmail   string
	RecipientPhone   string
	Method           string `gorm:"type:varchar(10)"` // email, sms, both
	Subject          string
	Content          string `gorm:"type:text"`
	Status           string `gorm:"type:varchar(20)"` // sent, failed
	ErrorMessage     string `gorm:"type:text"`
	SentAt           time.Time

	gorm.Model
}

func (n *NotificationLog) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
