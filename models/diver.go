package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Diver struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name               string     `json:"name"`
	Email              string     `gorm:"uniqueIndex;size:191" json:"email"`
	Phone              string     `json:"phone"`
	CertificationLevel string     `gorm:"column:certification_level" json:"certification_level"`
	MedicalCleared     bool       `gorm:"column:medical_cleared;default:false" json:"medical_cleared"`
	OnboardingComplete bool       `gorm:"column:onboarding_completed;default:false" json:"onboarding_completed"`
	OnboardingDate     *time.Time `gorm:"column:onboarding_date" json:"onboarding_date,omitempty"`
	WaiverSigned       bool       `gorm:"column:waiver_signed;default:false" json:"waiver_signed"`
	WaiverSignedDate   *time.Time `gorm:"column:waiver_signed_date" json:"waiver_signed_date,omitempty"`
}

func (d *Diver) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
