package services

import (
	"errors"
	"fmt"
	"time"

	"diveshop-backend/models"
	"diveshop-backend/utils"

	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB for the booking/pricing/invoice flow.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type EquipmentSelection struct {
	EquipmentID string `json:"equipment_id"`
	Quantity    int    `json:"quantity"`
}

type BookingInput struct {
	DiverID         string  `json:"diver_id"`
	CourseID        *string `json:"course_id"`
	GroupID         *string `json:"group_id"`
	AccommodationID *string `json:"accommodation_id"`
	CheckIn         string  `json:"check_in"`
	CheckOut        string  `json:"check_out"`
	PaymentStatus   string  `json:"payment_status"`
	Notes           string  `json:"notes"`

	Equipment []EquipmentSelection `json:"equipment"`
}

// ParseDate accepts the date-only form the UI sends, with RFC3339 fallback.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("validation: invalid date %q", s)
}

// resolvePricing loads the referenced course/accommodation and derives the
// total and the snapshot fields for the booking row.
func (s *BookingService) resolvePricing(b *models.Booking, input BookingInput) error {
	hasCourse := false
	coursePrice := 0.0
	if input.CourseID != nil && *input.CourseID != "" {
		var course models.Course
		if err := s.DB.First(&course, "id = ?", *input.CourseID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("validation: course %s not found", *input.CourseID)
			}
			return fmt.Errorf("db error checking course: %w", err)
		}
		hasCourse = true
		coursePrice = course.Price
		b.CourseID = input.CourseID
	}

	if input.GroupID != nil && *input.GroupID != "" {
		var group models.Group
		if err := s.DB.First(&group, "id = ?", *input.GroupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("validation: group %s not found", *input.GroupID)
			}
			return fmt.Errorf("db error checking group: %w", err)
		}
		b.GroupID = input.GroupID
	}

	hasAccommodation := false
	nightlyRate := 0.0
	if input.AccommodationID != nil && *input.AccommodationID != "" {
		var acc models.Accommodation
		if err := s.DB.First(&acc, "id = ?", *input.AccommodationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("validation: accommodation %s not found", *input.AccommodationID)
			}
			return fmt.Errorf("db error checking accommodation: %w", err)
		}
		hasAccommodation = true
		nightlyRate = acc.PricePerNight
		b.AccommodationID = input.AccommodationID
	}

	total, nights := ComputeBookingTotal(coursePrice, hasCourse, nightlyRate, hasAccommodation, b.CheckIn, b.CheckOut)
	b.TotalAmount = total
	b.Nights = nights
	b.CoursePrice = coursePrice
	b.AccommodationRate = nightlyRate
	return nil
}

// CreateBooking prices the booking server-side, snapshots unit prices,
// generates the invoice number, and creates any equipment assignments in the
// same transaction: a booking and its assignments exist atomically or not at
// all.
func (s *BookingService) CreateBooking(input BookingInput) (models.Booking, error) {
	var booking models.Booking

	if input.DiverID == "" {
		return booking, errors.New("validation: diver_id is required")
	}
	if input.CourseID != nil && *input.CourseID != "" && input.GroupID != nil && *input.GroupID != "" {
		return booking, errors.New("validation: course_id and group_id are mutually exclusive")
	}

	var diver models.Diver
	if err := s.DB.First(&diver, "id = ?", input.DiverID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, errors.New("validation: diver not found")
		}
		return booking, fmt.Errorf("db error checking diver: %w", err)
	}

	checkIn, err := ParseDate(input.CheckIn)
	if err != nil {
		return booking, err
	}
	checkOut, err := ParseDate(input.CheckOut)
	if err != nil {
		return booking, err
	}

	booking = models.Booking{
		DiverID:       input.DiverID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Notes:         input.Notes,
		PaymentStatus: "unpaid",
		InvoiceNumber: utils.NextInvoiceNumber(),
	}

	if err := s.resolvePricing(&booking, input); err != nil {
		return booking, err
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		for _, sel := range input.Equipment {
			if sel.Quantity <= 0 {
				sel.Quantity = 1
			}
			if _, err := checkoutEquipment(tx, sel.EquipmentID, &booking.ID, sel.Quantity, booking.CheckIn, booking.CheckOut); err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		return models.Booking{}, txErr
	}

	return s.GetBooking(booking.ID)
}

// UpdateBooking replaces the booking's fields and re-derives the total and
// the price snapshot from the current catalog.
func (s *BookingService) UpdateBooking(id string, input BookingInput) (models.Booking, error) {
	var booking models.Booking

	if input.DiverID == "" {
		return booking, errors.New("validation: diver_id is required")
	}
	if input.CourseID != nil && *input.CourseID != "" && input.GroupID != nil && *input.GroupID != "" {
		return booking, errors.New("validation: course_id and group_id are mutually exclusive")
	}

	if err := s.DB.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, errors.New("booking_not_found")
		}
		return booking, fmt.Errorf("failed to find booking: %w", err)
	}

	checkIn, err := ParseDate(input.CheckIn)
	if err != nil {
		return booking, err
	}
	checkOut, err := ParseDate(input.CheckOut)
	if err != nil {
		return booking, err
	}

	booking.DiverID = input.DiverID
	booking.CourseID = nil
	booking.GroupID = nil
	booking.AccommodationID = nil
	booking.CheckIn = checkIn
	booking.CheckOut = checkOut
	booking.Notes = input.Notes
	if input.PaymentStatus != "" {
		booking.PaymentStatus = input.PaymentStatus
	}

	if err := s.resolvePricing(&booking, input); err != nil {
		return booking, err
	}

	if err := s.DB.Model(&models.Booking{}).Where("id = ?", id).
		Select("diver_id", "course_id", "group_id", "accommodation_id", "check_in", "check_out",
			"total_amount", "course_price", "accommodation_rate", "nights", "payment_status", "notes").
		Updates(map[string]interface{}{
			"diver_id":           booking.DiverID,
			"course_id":          booking.CourseID,
			"group_id":           booking.GroupID,
			"accommodation_id":   booking.AccommodationID,
			"check_in":           booking.CheckIn,
			"check_out":          booking.CheckOut,
			"total_amount":       booking.TotalAmount,
			"course_price":       booking.CoursePrice,
			"accommodation_rate": booking.AccommodationRate,
			"nights":             booking.Nights,
			"payment_status":     booking.PaymentStatus,
			"notes":              booking.Notes,
		}).Error; err != nil {
		return booking, fmt.Errorf("failed to update booking: %w", err)
	}

	return s.GetBooking(id)
}

// SetPaymentStatus is the unpaid/paid toggle behind PATCH.
func (s *BookingService) SetPaymentStatus(id, status string) (models.Booking, error) {
	if status != "paid" && status != "unpaid" {
		return models.Booking{}, fmt.Errorf("validation: invalid payment_status %q", status)
	}

	res := s.DB.Model(&models.Booking{}).Where("id = ?", id).Update("payment_status", status)
	if res.Error != nil {
		return models.Booking{}, fmt.Errorf("failed to update payment status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Booking{}, errors.New("booking_not_found")
	}
	return s.GetBooking(id)
}

func (s *BookingService) GetBooking(id string) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Diver").
		Preload("Course").
		Preload("Group").
		Preload("Accommodation").
		First(&booking, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return booking, errors.New("booking_not_found")
		}
		return booking, fmt.Errorf("failed to retrieve booking: %w", err)
	}
	return booking, nil
}

// ListBookings returns bookings with diver/course/accommodation summaries,
// newest first.
func (s *BookingService) ListBookings() ([]models.Booking, error) {
	var list []models.Booking
	err := s.DB.
		Preload("Diver").
		Preload("Course").
		Preload("Group").
		Preload("Accommodation").
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) DeleteBooking(id string) error {
	if err := s.DB.Where("id = ?", id).Delete(&models.Booking{}).Error; err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	return nil
}

type BookingStats struct {
	BookingCount int64   `json:"booking_count"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalAmount  float64 `json:"total_amount"`
}

// StatsLast30Days aggregates count, paid revenue, and total amount over
// bookings created in the trailing 30 days.
func (s *BookingService) StatsLast30Days() (BookingStats, error) {
	var stats BookingStats
	cutoff := time.Now().Add(-30 * 24 * time.Hour)

	err := s.DB.Raw(`
		SELECT
			COUNT(*) AS booking_count,
			COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN total_amount ELSE 0 END), 0) AS total_revenue,
			COALESCE(SUM(total_amount), 0) AS total_amount
		FROM bookings
		WHERE created_at >= ?
	`, cutoff).Scan(&stats).Error
	if err != nil {
		return stats, fmt.Errorf("failed to compute booking stats: %w", err)
	}
	return stats, nil
}

// InvoiceDataFor builds the renderer's denormalized view from a loaded
// booking. Line items price from the snapshot columns; the total is the
// stored total, never re-summed.
func (s *BookingService) InvoiceDataFor(booking models.Booking) utils.InvoiceData {
	data := utils.InvoiceData{
		InvoiceNumber: booking.InvoiceNumber,
		DateCreated:   booking.CreatedAt.Format("2006-01-02"),
		Diver:         booking.Diver.Name,
		TotalAmount:   booking.TotalAmount,
		PaymentStatus: booking.PaymentStatus,
		Notes:         booking.Notes,
		Nights:        booking.Nights,
	}
	if booking.Course != nil {
		data.Course = booking.Course.Name
		data.CoursePrice = booking.CoursePrice
	}
	if booking.Accommodation != nil {
		data.Accommodation = booking.Accommodation.Name
		data.AccommodationRate = booking.AccommodationRate
		data.AccommodationPrice = booking.AccommodationRate * float64(booking.Nights)
	}
	if booking.CheckIn != nil {
		data.CheckIn = booking.CheckIn.Format("2006-01-02")
	}
	if booking.CheckOut != nil {
		data.CheckOut = booking.CheckOut.Format("2006-01-02")
	}
	return data
}
