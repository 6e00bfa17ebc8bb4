package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Boat struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `json:"name"`
	Capacity *int   `json:"capacity,omitempty"`
	Location string `json:"location,omitempty"`
}

func (b *Boat) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
