package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"foxfood-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleClient = "client"
	RoleAdmin  = "admin"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"`
	Name     string    `gorm:"not null"`
	Phone    string

	Role string `gorm:"type:varchar(20);not null;default:'client'"` // 'client' or 'admin'

	// Delivery preferences, filled in through the settings form.
	DeliveryDay      string `gorm:"type:varchar(20)"` // French weekday name
	DeliveryTimeSlot string `gorm:"type:varchar(20)"`

	NotificationEmail    string
	NotificationPhone    string
	ReceiveNotifications bool `gorm:"default:true"`
	SettingsCompleted    bool `gorm:"default:false"`

	LastLogin *time.Time
	IsActive  bool `gorm:"default:true"`

	Reminders  []UserReminder    `gorm:"foreignKey:UserID"`
	Selections []WeeklySelection `gorm:"foreignKey:UserID"`

	gorm.Model
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	u.ID = uuid.New()
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// StringArray is a JSON-encoded string slice stored in a jsonb column
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(a)
}

func (a *StringArray) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, a)
}
