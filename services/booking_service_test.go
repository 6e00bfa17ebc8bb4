package services

import (
	"regexp"
	"testing"

	"diveshop-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var invoicePattern = regexp.MustCompile(`^INV-[0-9A-Z]+$`)

func TestCreateBookingWithCourse(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	diver := createDiver(t, db, "A", "a@x.com")
	course := createCourse(t, db, "OW", 300)

	booking, err := svc.CreateBooking(BookingInput{
		DiverID:  diver.ID,
		CourseID: &course.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, 300.0, booking.TotalAmount)
	assert.Equal(t, "unpaid", booking.PaymentStatus)
	assert.Regexp(t, invoicePattern, booking.InvoiceNumber)
	assert.NotEmpty(t, booking.ID)
	require.NotNil(t, booking.Course)
	assert.Equal(t, "OW", booking.Course.Name)
	assert.Equal(t, "A", booking.Diver.Name)
}

func TestCreateBookingWithAccommodation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	diver := createDiver(t, db, "A", "a@x.com")
	acc := createAccommodation(t, db, "Hut", 50)

	booking, err := svc.CreateBooking(BookingInput{
		DiverID:         diver.ID,
		AccommodationID: &acc.ID,
		CheckIn:         "2026-01-01",
		CheckOut:        "2026-01-04",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, 150.0, booking.TotalAmount)
	assert.Equal(t, 50.0, booking.AccommodationRate)
}

func TestCreateBookingCourseAndAccommodation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	diver := createDiver(t, db, "A", "a@x.com")
	course := createCourse(t, db, "AOW", 400)
	acc := createAccommodation(t, db, "Hut", 50)

	booking, err := svc.CreateBooking(BookingInput{
		DiverID:         diver.ID,
		CourseID:        &course.ID,
		AccommodationID: &acc.ID,
		CheckIn:         "2026-01-01",
		CheckOut:        "2026-01-04",
	})
	require.NoError(t, err)
	assert.Equal(t, 550.0, booking.TotalAmount)
	assert.Equal(t, 400.0, booking.CoursePrice)
}

func TestCreateBookingRejectsCourseAndGroup(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	diver := createDiver(t, db, "A", "a@x.com")
	course := createCourse(t, db, "OW", 300)
	group := models.Group{Name: "Reef trip"}
	require.NoError(t, db.Create(&group).Error)

	_, err := svc.CreateBooking(BookingInput{
		DiverID:  diver.ID,
		CourseID: &course.ID,
		GroupID:  &group.ID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestSetPaymentStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	diver := createDiver(t, db, "A", "a@x.com")
	course := createCourse(t, db, "OW", 300)
	booking, err := svc.CreateBooking(BookingInput{DiverID: diver.ID, CourseID: &course.ID})
	require.NoError(t, err)

	updated, err := svc.SetPaymentStatus(booking.ID, "paid")
	require.NoError(t, err)
	assert.Equal(t, "paid", updated.PaymentStatus)

	reloaded, err := svc.GetBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", reloaded.PaymentStatus)

	_, err = svc.SetPaymentStatus(booking.ID, "refunded")
	require.Error(t, err)

	_, err = svc.SetPaymentStatus("no-such-id", "paid")
	require.EqualError(t, err, "booking_not_found")
}

func TestUpdateBookingRecomputesTotal(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	diver := createDiver(t, db, "A", "a@x.com")
	course := createCourse(t, db, "OW", 300)
	acc := createAccommodation(t, db, "Hut", 50)

	booking, err := svc.CreateBooking(BookingInput{DiverID: diver.ID, CourseID: &course.ID})
	require.NoError(t, err)
	assert.Equal(t, 300.0, booking.TotalAmount)

	updated, err := svc.UpdateBooking(booking.ID, BookingInput{
		DiverID:         diver.ID,
		AccommodationID: &acc.ID,
		CheckIn:         "2026-02-01",
		CheckOut:        "2026-02-03",
	})
	require.NoError(t, err)
	assert.Nil(t, updated.CourseID)
	assert.Equal(t, 100.0, updated.TotalAmount)
	assert.Equal(t, 2, updated.Nights)
	// the invoice number survives edits
	assert.Equal(t, booking.InvoiceNumber, updated.InvoiceNumber)
}

func TestListBookingsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	diver := createDiver(t, db, "A", "a@x.com")
	course := createCourse(t, db, "OW", 300)

	first, err := svc.CreateBooking(BookingInput{DiverID: diver.ID, CourseID: &course.ID})
	require.NoError(t, err)
	second, err := svc.CreateBooking(BookingInput{DiverID: diver.ID})
	require.NoError(t, err)

	// force distinct created_at ordering
	require.NoError(t, db.Exec(
		"UPDATE bookings SET created_at = datetime(created_at, '-1 hour') WHERE id = ?", first.ID).Error)

	list, err := svc.ListBookings()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestStatsLast30Days(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	diver := createDiver(t, db, "A", "a@x.com")
	course := createCourse(t, db, "OW", 300)

	paid, err := svc.CreateBooking(BookingInput{DiverID: diver.ID, CourseID: &course.ID})
	require.NoError(t, err)
	_, err = svc.SetPaymentStatus(paid.ID, "paid")
	require.NoError(t, err)

	unpaid, err := svc.CreateBooking(BookingInput{DiverID: diver.ID, CourseID: &course.ID})
	require.NoError(t, err)

	old, err := svc.CreateBooking(BookingInput{DiverID: diver.ID, CourseID: &course.ID})
	require.NoError(t, err)
	require.NoError(t, db.Exec(
		"UPDATE bookings SET created_at = datetime(created_at, '-60 days') WHERE id = ?", old.ID).Error)

	stats, err := svc.StatsLast30Days()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.BookingCount)
	assert.Equal(t, 300.0, stats.TotalRevenue)
	assert.Equal(t, 600.0, stats.TotalAmount)
	_ = unpaid
}

func TestCreateBookingWithEquipmentIsAtomic(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	diver := createDiver(t, db, "A", "a@x.com")
	eq := models.Equipment{Name: "BCD", Category: "bcd", CanRent: true, QuantityInStock: 1}
	require.NoError(t, db.Create(&eq).Error)

	_, err := svc.CreateBooking(BookingInput{
		DiverID:   diver.ID,
		Equipment: []EquipmentSelection{{EquipmentID: eq.ID, Quantity: 2}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available")

	// the failed assignment rolled the booking back too
	var bookingCount int64
	require.NoError(t, db.Model(&models.Booking{}).Count(&bookingCount).Error)
	assert.Equal(t, int64(0), bookingCount)

	booking, err := svc.CreateBooking(BookingInput{
		DiverID:   diver.ID,
		Equipment: []EquipmentSelection{{EquipmentID: eq.ID, Quantity: 1}},
	})
	require.NoError(t, err)

	var assignments []models.RentalAssignment
	require.NoError(t, db.Where("booking_id = ?", booking.ID).Find(&assignments).Error)
	require.Len(t, assignments, 1)
	assert.Equal(t, "active", assignments[0].Status)
}

func TestCreateBookingValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	_, err := svc.CreateBooking(BookingInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diver_id is required")

	_, err = svc.CreateBooking(BookingInput{DiverID: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "diver not found")
}

func TestInvoiceDataForUsesSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	diver := createDiver(t, db, "A", "a@x.com")
	course := createCourse(t, db, "OW", 300)
	acc := createAccommodation(t, db, "Hut", 50)

	booking, err := svc.CreateBooking(BookingInput{
		DiverID:         diver.ID,
		CourseID:        &course.ID,
		AccommodationID: &acc.ID,
		CheckIn:         "2026-01-01",
		CheckOut:        "2026-01-04",
	})
	require.NoError(t, err)

	// a later catalog price change must not leak into the invoice
	require.NoError(t, db.Model(&models.Course{}).Where("id = ?", course.ID).Update("price", 999).Error)
	require.NoError(t, db.Model(&models.Accommodation{}).Where("id = ?", acc.ID).Update("price_per_night", 999).Error)

	reloaded, err := svc.GetBooking(booking.ID)
	require.NoError(t, err)
	data := svc.InvoiceDataFor(reloaded)

	assert.Equal(t, 300.0, data.CoursePrice)
	assert.Equal(t, 50.0, data.AccommodationRate)
	assert.Equal(t, 150.0, data.AccommodationPrice)
	assert.Equal(t, 450.0, data.TotalAmount)
	assert.Equal(t, "A", data.Diver)
	assert.Equal(t, "2026-01-01", data.CheckIn)
	assert.Equal(t, "2026-01-04", data.CheckOut)
}
