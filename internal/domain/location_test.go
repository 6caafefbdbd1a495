package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingCapacity(t *testing.T) {
	tests := []struct {
		name       string
		totalSlots int
		share      float64
		want       int
	}{
		{"reference policy 10 slots", 10, 0.70, 7},
		{"rounds down", 15, 0.70, 10},
		{"single slot rounds to zero", 1, 0.70, 0},
		{"full share", 10, 1.0, 10},
		{"zero slots", 0, 0.70, 0},
		{"negative slots", -5, 0.70, 0},
		{"zero share", 10, 0, 0},
		{"negative share", 10, -0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BookingCapacity(tt.totalSlots, tt.share))
		})
	}
}

func TestLocationHasFreeSlot(t *testing.T) {
	assert.True(t, (&Location{TotalSlots: 10, AvailableSlots: 1}).HasFreeSlot())
	assert.False(t, (&Location{TotalSlots: 10, AvailableSlots: 0}).HasFreeSlot())
}
