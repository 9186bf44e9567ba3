package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const SelectionStatusPending = "pending"

// WeeklySelection records the dishes a client confirmed for one week.
// One row per user and Monday-anchored week start.
type WeeklySelection struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:idx_user_week,priority:1"`

	WeekStartDate    time.Time   `gorm:"type:date;not null;uniqueIndex:idx_user_week,priority:2"`
	DeliveryDay      string      `gorm:"type:varchar(20);not null"`
	DeliveryTimeSlot string      `gorm:"type:varchar(20);not null"`
	SelectedDishes   StringArray `gorm:"type:jsonb;not null"` // dish ids
	Status           string      `gorm:"type:varchar(20);default:'pending'"`

	gorm.Model
}

func (s *WeeklySelection) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
