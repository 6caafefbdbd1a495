package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already canonical", "A123BC", "A123BC"},
		{"lowercase", "a123bc", "A123BC"},
		{"surrounding spaces", "  A123BC  ", "A123BC"},
		{"inner spaces", "a 123 bc", "A123BC"},
		{"mixed", "  x 777 xx 77  ", "X777XX77"},
		{"cyrillic", "а 777 аа 77", "А777АА77"},
		{"only spaces", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePlate(tt.input))
		})
	}
}

func TestIsValidPlate(t *testing.T) {
	assert.True(t, IsValidPlate("A123BC"))
	assert.True(t, IsValidPlate("AB"))
	assert.False(t, IsValidPlate("A"))
	assert.False(t, IsValidPlate(""))
	assert.False(t, IsValidPlate(strings.Repeat("X", MaxLicensePlateLength+1)))
	assert.True(t, IsValidPlate(strings.Repeat("X", MaxLicensePlateLength)))
}

func TestVehicleSessionPredicates(t *testing.T) {
	exit := ts(14, 0)
	bookingID := int64(42)

	t.Run("open drive-up session", func(t *testing.T) {
		s := &VehicleSession{LicensePlate: "A123BC", EntryTime: ts(10, 0)}
		assert.True(t, s.IsOpen())
		assert.True(t, s.IsDriveUp())
	})

	t.Run("closed booked session", func(t *testing.T) {
		s := &VehicleSession{
			BookingID:    &bookingID,
			LicensePlate: "A123BC",
			EntryTime:    ts(10, 0),
			ExitTime:     &exit,
		}
		assert.False(t, s.IsOpen())
		assert.False(t, s.IsDriveUp())
	})
}
