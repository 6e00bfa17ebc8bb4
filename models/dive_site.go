package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type DiveSite struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name        string   `json:"name"`
	Location    string   `json:"location"`
	MaxDepth    *float64 `gorm:"column:max_depth" json:"max_depth,omitempty"`
	Difficulty  string   `gorm:"size:32" json:"difficulty,omitempty"`
	Description string   `json:"description,omitempty"`

	EmergencyContacts datatypes.JSON `gorm:"column:emergency_contacts" json:"emergency_contacts,omitempty"`
	NearestHospital   string         `gorm:"column:nearest_hospital" json:"nearest_hospital,omitempty"`
	DanInfo           string         `gorm:"column:dan_info" json:"dan_info,omitempty"`
}

func (s *DiveSite) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
