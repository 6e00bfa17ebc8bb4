package services

import (
	"errors"
	"fmt"
	"time"

	"diveshop-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RentalService manages equipment checkouts. Availability is never stored: it
// is stock minus the sum of active assignment quantities, computed under a
// row lock on the equipment row so concurrent checkouts cannot lose updates.
type RentalService struct {
	DB *gorm.DB
}

func NewRentalService(db *gorm.DB) *RentalService {
	return &RentalService{DB: db}
}

func activeAssignedQuantity(tx *gorm.DB, equipmentID string) (int, error) {
	var assigned int64
	err := tx.Model(&models.RentalAssignment{}).
		Where("equipment_id = ? AND status = ?", equipmentID, "active").
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&assigned).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum active assignments: %w", err)
	}
	return int(assigned), nil
}

// checkoutEquipment creates one assignment inside tx after verifying derived
// availability, returning the created row. Shared by direct checkouts and
// booking creation so both paths enforce the same invariant.
func checkoutEquipment(tx *gorm.DB, equipmentID string, bookingID *string, quantity int, checkIn, checkOut *time.Time) (models.RentalAssignment, error) {
	var assignment models.RentalAssignment

	var eq models.Equipment
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&eq, "id = ?", equipmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return assignment, fmt.Errorf("validation: equipment %s not found", equipmentID)
		}
		return assignment, fmt.Errorf("db error checking equipment: %w", err)
	}

	if !eq.CanRent {
		return assignment, fmt.Errorf("validation: equipment %s is not rentable", eq.Name)
	}

	assigned, err := activeAssignedQuantity(tx, equipmentID)
	if err != nil {
		return assignment, err
	}
	available := eq.QuantityInStock - assigned
	if quantity > available {
		return assignment, fmt.Errorf("validation: only %d of %s available", available, eq.Name)
	}

	assignment = models.RentalAssignment{
		EquipmentID: equipmentID,
		BookingID:   bookingID,
		Quantity:    quantity,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Status:      "active",
	}
	if err := tx.Create(&assignment).Error; err != nil {
		return assignment, fmt.Errorf("failed to create rental assignment: %w", err)
	}
	return assignment, nil
}

type RentalInput struct {
	EquipmentID string  `json:"equipment_id"`
	BookingID   *string `json:"booking_id"`
	Quantity    int     `json:"quantity"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
}

func (s *RentalService) Checkout(input RentalInput) (models.RentalAssignment, error) {
	var out models.RentalAssignment

	if input.EquipmentID == "" {
		return out, errors.New("validation: equipment_id is required")
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	checkIn, err := ParseDate(input.CheckIn)
	if err != nil {
		return out, err
	}
	checkOut, err := ParseDate(input.CheckOut)
	if err != nil {
		return out, err
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		created, err := checkoutEquipment(tx, input.EquipmentID, input.BookingID, input.Quantity, checkIn, checkOut)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if txErr != nil {
		return models.RentalAssignment{}, txErr
	}

	// reload by the created row's ID so concurrent checkouts of the same
	// equipment never answer with a sibling's assignment
	if err := s.DB.Preload("Equipment").First(&out, "id = ?", out.ID).Error; err != nil {
		return out, fmt.Errorf("failed to reload rental assignment: %w", err)
	}
	return out, nil
}

// Return deletes the assignment row; the derived availability recovers with
// it. Returning twice is a 404, not a double decrement.
func (s *RentalService) Return(id string) error {
	res := s.DB.Where("id = ?", id).Delete(&models.RentalAssignment{})
	if res.Error != nil {
		return fmt.Errorf("failed to return rental: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.New("rental_not_found")
	}
	return nil
}

func (s *RentalService) ListActive() ([]models.RentalAssignment, error) {
	var list []models.RentalAssignment
	err := s.DB.Preload("Equipment").
		Where("status = ?", "active").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rentals: %w", err)
	}
	return list, nil
}

// ListEquipment returns the catalog ordered by category with the derived
// available quantity filled in.
func (s *RentalService) ListEquipment() ([]models.Equipment, error) {
	var list []models.Equipment
	if err := s.DB.Order("category ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve equipment: %w", err)
	}

	for i := range list {
		assigned, err := activeAssignedQuantity(s.DB, list[i].ID)
		if err != nil {
			return nil, err
		}
		list[i].QuantityAvailable = list[i].QuantityInStock - assigned
	}
	return list, nil
}
