package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CustomDishStatusPending  = "pending"
	CustomDishStatusApproved = "approved"
	CustomDishStatusRejected = "rejected"
)

// CustomDishRequest is a client's request for a dish outside the catalog,
// reviewed by the admin.
type CustomDishRequest struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	DishName             string      `gorm:"not null"`
	Description          string      `gorm:"type:text;not null"`
	SuggestedIngredients StringArray `gorm:"type:jsonb;default:'[]'"`
	IsDetailed           bool        `gorm:"default:false"`
	Status               string      `gorm:"type:varchar(20);default:'pending'"` // pending, approved, rejected
	AdminNotes           string      `gorm:"type:text"`

	User User `gorm:"foreignKey:UserID"`

	gorm.Model
}

func (c *CustomDishRequest) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
