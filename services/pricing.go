package services

import (
	"math"
	"time"
)

// NightsBetween returns the chargeable night count for a stay: the ceiling of
// the date difference, clamped to a minimum of one night. Zero or negative
// spans never price as free. Returns 0 when either date is missing.
func NightsBetween(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}
	days := checkOut.Sub(*checkIn).Hours() / 24
	n := int(math.Ceil(days))
	if n < 1 {
		n = 1
	}
	return n
}

// ComputeBookingTotal derives a booking total from the selected course price
// and the accommodation rate over the stay. Pure and deterministic: the same
// inputs produce the same total before or after the booking is persisted.
// An accommodation with a missing check-in or check-out contributes nothing.
func ComputeBookingTotal(coursePrice float64, hasCourse bool, nightlyRate float64, hasAccommodation bool, checkIn, checkOut *time.Time) (total float64, nights int) {
	if hasCourse {
		total += coursePrice
	}
	if hasAccommodation {
		nights = NightsBetween(checkIn, checkOut)
		total += nightlyRate * float64(nights)
	}
	return total, nights
}
