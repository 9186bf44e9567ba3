package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Dish struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"not null;uniqueIndex:idx_dish_name_category,priority:1"`
	Category    string    `gorm:"not null;uniqueIndex:idx_dish_name_category,priority:2"`
	Description string
	Ingredients StringArray `gorm:"type:jsonb;default:'[]'"`
	Active      bool        `gorm:"default:true"`

	gorm.Model
}

func (d *Dish) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}
