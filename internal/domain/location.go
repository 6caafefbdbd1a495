package domain

import (
	"math"
	"time"
)

// Location represents a parking location
//
// Физических пулов вместимости два, и их нельзя путать:
//   - AvailableSlots - реально свободные места; меняются только при
//     физическом заезде/выезде автомобиля (check-in/checkout)
//   - емкость бронирования - мягкий лимит на число пересекающихся активных
//     броней, вычисляется от TotalSlots через BookingCapacity
//
// Создание или отмена брони сами по себе AvailableSlots не трогают.
type Location struct {
	ID             int64
	Name           string
	Address        string
	TotalSlots     int
	AvailableSlots int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasFreeSlot returns true if at least one physical slot is free
func (l *Location) HasFreeSlot() bool {
	return l.AvailableSlots > 0
}

// BookingCapacity возвращает лимит пересекающихся активных броней
// для локации: floor(totalSlots * share)
//
// share - доля физической вместимости, отводимая под брони (0 < share <= 1),
// по умолчанию DefaultBookingCapacityShare
func BookingCapacity(totalSlots int, share float64) int {
	if totalSlots <= 0 || share <= 0 {
		return 0
	}
	return int(math.Floor(float64(totalSlots) * share))
}
