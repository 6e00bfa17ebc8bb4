package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Equipment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name              string  `json:"name"`
	Category          string  `gorm:"size:64;index" json:"category"`
	Price             float64 `json:"price"`
	CanRent           bool    `gorm:"column:can_rent;default:false" json:"can_rent"`
	RentalPricePerDay float64 `gorm:"column:rental_price_per_day" json:"rental_price_per_day"`
	QuantityInStock   int     `gorm:"column:quantity_in_stock" json:"quantity_in_stock"`

	// Not stored: stock minus the sum of active assignment quantities,
	// filled in by RentalService on read.
	QuantityAvailable int `gorm:"-" json:"quantity_available"`
}

func (e *Equipment) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// RentalAssignment is an active equipment checkout. Returning the equipment
// deletes the row; there is no archived state.
type RentalAssignment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	EquipmentID string  `gorm:"column:equipment_id;size:36;index" json:"equipment_id"`
	BookingID   *string `gorm:"column:booking_id;size:36;index" json:"booking_id,omitempty"`
	Quantity    int     `gorm:"default:1" json:"quantity"`

	CheckIn  *time.Time `gorm:"column:check_in" json:"check_in,omitempty"`
	CheckOut *time.Time `gorm:"column:check_out" json:"check_out,omitempty"`
	Status   string     `gorm:"size:16;default:active" json:"status"`

	Equipment Equipment `gorm:"foreignKey:EquipmentID" json:"-"`
	Booking   *Booking  `gorm:"foreignKey:BookingID" json:"-"`
}

func (r *RentalAssignment) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Quantity == 0 {
		r.Quantity = 1
	}
	if r.Status == "" {
		r.Status = "active"
	}
	return nil
}
