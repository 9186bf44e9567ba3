package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserReminder is one reminder slot for a user: fire DaysBefore days
// ahead of the delivery day, through the enabled channels.
// Defaults of 5/3/1 days are created at registration.
type UserReminder struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_user_days_before,priority:1"`

	DaysBefore int  `gorm:"not null;uniqueIndex:idx_user_days_before,priority:2"` // 1..5
	Enabled    bool `gorm:"default:true"`
	SendEmail  bool `gorm:"default:true"`
	SendSMS    bool `gorm:"default:false"`

	gorm.Model
}

func (r *UserReminder) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}

// DefaultReminders returns the reminder rows created for a new user.
func DefaultReminders(userID uuid.UUID) []UserReminder {
	return []UserReminder{
		{UserID: userID, DaysBefore: 5, Enabled: true, SendEmail: true},
		{UserID: userID, DaysBefore: 3, Enabled: true, SendEmail: true},
		{UserID: userID, DaysBefore: 1, Enabled: true, SendEmail: true},
	}
}
