package services

import (
	"testing"

	"diveshop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createEquipment(t *testing.T, db *gorm.DB, name string, stock int, canRent bool) models.Equipment {
	t.Helper()
	eq := models.Equipment{
		Name:              name,
		Category:          "bcd",
		CanRent:           canRent,
		RentalPricePerDay: 15,
		QuantityInStock:   stock,
	}
	require.NoError(t, db.Create(&eq).Error)
	return eq
}

func equipmentByID(t *testing.T, svc *RentalService, id string) models.Equipment {
	t.Helper()
	list, err := svc.ListEquipment()
	require.NoError(t, err)
	for _, eq := range list {
		if eq.ID == id {
			return eq
		}
	}
	t.Fatalf("equipment %s not listed", id)
	return models.Equipment{}
}

func TestCheckoutReducesDerivedAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	eq := createEquipment(t, db, "BCD Medium", 5, true)

	assert.Equal(t, 5, equipmentByID(t, svc, eq.ID).QuantityAvailable)

	rental, err := svc.Checkout(RentalInput{EquipmentID: eq.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "active", rental.Status)
	assert.Equal(t, 3, rental.Quantity)

	assert.Equal(t, 2, equipmentByID(t, svc, eq.ID).QuantityAvailable)

	// Return recovers the quantity; no stored counter is touched.
	require.NoError(t, svc.Return(rental.ID))
	assert.Equal(t, 5, equipmentByID(t, svc, eq.ID).QuantityAvailable)

	var reloaded models.Equipment
	require.NoError(t, db.First(&reloaded, "id = ?", eq.ID).Error)
	assert.Equal(t, 5, reloaded.QuantityInStock)
}

func TestCheckoutRejectsOverAvailability(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	eq := createEquipment(t, db, "Regulator", 2, true)

	_, err := svc.Checkout(RentalInput{EquipmentID: eq.ID, Quantity: 2})
	require.NoError(t, err)

	_, err = svc.Checkout(RentalInput{EquipmentID: eq.ID, Quantity: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only 0 of Regulator available")
}

func TestCheckoutRejectsNonRentable(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	eq := createEquipment(t, db, "Display Tank", 10, false)

	_, err := svc.Checkout(RentalInput{EquipmentID: eq.ID, Quantity: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not rentable")
}

func TestCheckoutDefaultsQuantityToOne(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	eq := createEquipment(t, db, "Fins", 4, true)

	rental, err := svc.Checkout(RentalInput{EquipmentID: eq.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, rental.Quantity)
	assert.Equal(t, 3, equipmentByID(t, svc, eq.ID).QuantityAvailable)
}

func TestCheckoutReturnsItsOwnAssignment(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	eq := createEquipment(t, db, "Torch", 5, true)

	first, err := svc.Checkout(RentalInput{EquipmentID: eq.ID, Quantity: 2})
	require.NoError(t, err)
	second, err := svc.Checkout(RentalInput{EquipmentID: eq.ID, Quantity: 3})
	require.NoError(t, err)

	// each response carries the row it created, not whichever sibling of the
	// same equipment was inserted last
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, first.Quantity)
	assert.Equal(t, 3, second.Quantity)

	var reloaded models.RentalAssignment
	require.NoError(t, db.First(&reloaded, "id = ?", first.ID).Error)
	assert.Equal(t, 2, reloaded.Quantity)
}

func TestReturnTwiceIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	eq := createEquipment(t, db, "Mask", 1, true)
	rental, err := svc.Checkout(RentalInput{EquipmentID: eq.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, svc.Return(rental.ID))
	err = svc.Return(rental.ID)
	require.Error(t, err)
	assert.Equal(t, "rental_not_found", err.Error())
}

func TestListActivePreloadsEquipment(t *testing.T) {
	db := newTestDB(t)
	svc := NewRentalService(db)

	eq := createEquipment(t, db, "Wetsuit 5mm", 3, true)
	_, err := svc.Checkout(RentalInput{EquipmentID: eq.ID, Quantity: 2, CheckIn: "2026-09-01", CheckOut: "2026-09-04"})
	require.NoError(t, err)

	list, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Wetsuit 5mm", list[0].Equipment.Name)
	require.NotNil(t, list[0].CheckIn)
}
