package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Waiver is one-per-diver; POST upserts on diver_id.
type Waiver struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DiverID       string     `gorm:"column:diver_id;size:36;uniqueIndex" json:"diver_id"`
	DocumentURL   string     `gorm:"column:document_url" json:"document_url,omitempty"`
	SignatureData string     `gorm:"column:signature_data;type:text" json:"signature_data,omitempty"`
	Status        string     `gorm:"size:16;default:pending" json:"status"`
	SignedAt      *time.Time `gorm:"column:signed_at" json:"signed_at,omitempty"`
	Notes         string     `json:"notes,omitempty"`

	Diver Diver `gorm:"foreignKey:DiverID" json:"-"`
}

func (w *Waiver) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}
