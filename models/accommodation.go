package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Accommodation struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name          string  `json:"name"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"price_per_night"`
	Tier          string  `gorm:"size:64;default:standard" json:"tier"` // free_with_course | standard | ...
	Description   string  `json:"description,omitempty"`
}

func (a *Accommodation) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Tier == "" {
		a.Tier = "standard"
	}
	return nil
}
