package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DiverID string `gorm:"column:diver_id;size:36;index" json:"diver_id"`

	// CourseID and GroupID are mutually exclusive; BookingService rejects
	// writes carrying both.
	CourseID        *string `gorm:"column:course_id;size:36;index" json:"course_id,omitempty"`
	GroupID         *string `gorm:"column:group_id;size:36;index" json:"group_id,omitempty"`
	AccommodationID *string `gorm:"column:accommodation_id;size:36;index" json:"accommodation_id,omitempty"`

	CheckIn  *time.Time `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`

	TotalAmount float64 `gorm:"column:total_amount" json:"total_amount"`

	// Price snapshot taken at creation so a rendered invoice always sums to
	// TotalAmount even after the catalog prices change.
	CoursePrice       float64 `gorm:"column:course_price" json:"course_price"`
	AccommodationRate float64 `gorm:"column:accommodation_rate" json:"accommodation_rate"`
	Nights            int     `json:"nights"`

	InvoiceNumber string `gorm:"column:invoice_number;uniqueIndex;size:32" json:"invoice_number"`
	PaymentStatus string `gorm:"column:payment_status;size:16;default:unpaid" json:"payment_status"` // unpaid | paid
	Notes         string `json:"notes,omitempty"`

	Diver         Diver          `gorm:"foreignKey:DiverID" json:"-"`
	Course        *Course        `gorm:"foreignKey:CourseID" json:"-"`
	Group         *Group         `gorm:"foreignKey:GroupID" json:"-"`
	Accommodation *Accommodation `gorm:"foreignKey:AccommodationID" json:"-"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = "unpaid"
	}
	return nil
}
