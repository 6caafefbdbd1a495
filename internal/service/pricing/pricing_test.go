package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.UTC)
}

func TestCost(t *testing.T) {
	tests := []struct {
		name       string
		entry      time.Time
		exit       time.Time
		hourlyRate float64
		want       float64
	}{
		{"ten minutes clamps to quarter hour", at(9, 0), at(9, 10), 50, 12.50},
		{"exactly fifteen minutes", at(9, 0), at(9, 15), 50, 12.50},
		{"one hour", at(9, 0), at(10, 0), 50, 50},
		{"ninety minutes", at(9, 0), at(10, 30), 40, 60},
		// 70 минут * 13/час = 15.1666... -> вверх до цента 15.17
		{"rounds up to the next cent", at(9, 0), at(10, 10), 13, 15.17},
		{"zero rate", at(9, 0), at(12, 0), 0, 0},
		{"negative rate", at(9, 0), at(12, 0), -10, 0},
		{"exit equals entry", at(9, 0), at(9, 0), 50, 0},
		{"exit before entry", at(10, 0), at(9, 0), 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cost(tt.entry, tt.exit, tt.hourlyRate), 1e-9)
		})
	}
}
