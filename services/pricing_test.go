package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNightsBetween(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"three nights", "2026-01-01", "2026-01-04", 3},
		{"one night", "2026-01-01", "2026-01-02", 1},
		{"same day clamps to one", "2026-01-01", "2026-01-01", 1},
		{"inverted span clamps to one", "2026-01-05", "2026-01-01", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NightsBetween(datePtr(t, tt.checkIn), datePtr(t, tt.checkOut))
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("missing dates", func(t *testing.T) {
		assert.Equal(t, 0, NightsBetween(nil, datePtr(t, "2026-01-04")))
		assert.Equal(t, 0, NightsBetween(datePtr(t, "2026-01-01"), nil))
		assert.Equal(t, 0, NightsBetween(nil, nil))
	})
}

func TestComputeBookingTotal(t *testing.T) {
	ci := datePtr(t, "2026-01-01")
	co := datePtr(t, "2026-01-04")

	t.Run("course only", func(t *testing.T) {
		total, nights := ComputeBookingTotal(300, true, 0, false, nil, nil)
		assert.Equal(t, 300.0, total)
		assert.Equal(t, 0, nights)
	})

	t.Run("accommodation only", func(t *testing.T) {
		total, nights := ComputeBookingTotal(0, false, 50, true, ci, co)
		assert.Equal(t, 150.0, total)
		assert.Equal(t, 3, nights)
	})

	t.Run("course plus accommodation", func(t *testing.T) {
		total, nights := ComputeBookingTotal(300, true, 50, true, ci, co)
		assert.Equal(t, 450.0, total)
		assert.Equal(t, 3, nights)
	})

	t.Run("accommodation with one missing date contributes nothing", func(t *testing.T) {
		total, nights := ComputeBookingTotal(300, true, 50, true, ci, nil)
		assert.Equal(t, 300.0, total)
		assert.Equal(t, 0, nights)

		total, nights = ComputeBookingTotal(0, false, 50, true, nil, co)
		assert.Equal(t, 0.0, total)
		assert.Equal(t, 0, nights)
	})

	t.Run("zero-night stay never prices free", func(t *testing.T) {
		total, nights := ComputeBookingTotal(0, false, 80, true, ci, ci)
		assert.Equal(t, 80.0, total)
		assert.Equal(t, 1, nights)
	})

	t.Run("free course is honored verbatim", func(t *testing.T) {
		total, _ := ComputeBookingTotal(0, true, 0, false, nil, nil)
		assert.Equal(t, 0.0, total)
	})
}
