package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusPredicates(t *testing.T) {
	tests := []struct {
		status      BookingStatus
		isActive    bool
		isTerminal  bool
		canCheckIn  bool
		canComplete bool
	}{
		{StatusConfirmed, true, false, true, false},
		{StatusCheckedIn, true, false, false, true},
		{StatusCompleted, false, true, false, false},
		{StatusCancelled, false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.isActive, b.IsActive())
			assert.Equal(t, tt.isTerminal, b.IsTerminal())
			assert.Equal(t, tt.canCheckIn, b.CanCheckIn())
			assert.Equal(t, tt.canComplete, b.CanComplete())
		})
	}
}

func TestCanBeCancelledByUser(t *testing.T) {
	now := ts(10, 0)
	notice := time.Hour

	t.Run("confirmed and before notice", func(t *testing.T) {
		b := &Booking{Status: StatusConfirmed, StartTime: ts(12, 0)}
		assert.True(t, b.CanBeCancelledByUser(now, notice))
	})

	t.Run("starts exactly at notice boundary", func(t *testing.T) {
		b := &Booking{Status: StatusConfirmed, StartTime: ts(11, 0)}
		assert.False(t, b.CanBeCancelledByUser(now, notice))
	})

	t.Run("starts within notice", func(t *testing.T) {
		b := &Booking{Status: StatusConfirmed, StartTime: ts(10, 30)}
		assert.False(t, b.CanBeCancelledByUser(now, notice))
	})

	t.Run("already checked in", func(t *testing.T) {
		b := &Booking{Status: StatusCheckedIn, StartTime: ts(12, 0)}
		assert.False(t, b.CanBeCancelledByUser(now, notice))
	})
}
