package domain

import (
	"strings"
	"time"
)

// VehicleSession represents one continuous physical occupancy of a slot
//
// Создается при физическом заезде (drive-up либо заезд по брони),
// закрывается при выезде. BookingID == nil означает чистый drive-up.
// Инвариант: не более одной открытой сессии (ExitTime == nil) на пару
// (LicensePlate, LocationID); проверяется при заезде и подстрахован
// частичным уникальным индексом в БД.
type VehicleSession struct {
	ID           int64
	LocationID   int64
	BookingID    *int64
	LicensePlate string
	EntryTime    time.Time
	ExitTime     *time.Time
	Cost         *float64

	CheckInEmployeeID  int64
	CheckOutEmployeeID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOpen returns true if the vehicle is still parked
func (s *VehicleSession) IsOpen() bool {
	return s.ExitTime == nil
}

// IsDriveUp returns true if the session has no linked booking
func (s *VehicleSession) IsDriveUp() bool {
	return s.BookingID == nil
}

// NormalizePlate приводит госномер к каноническому виду:
// обрезает пробелы по краям, убирает внутренние пробелы, поднимает регистр
// Все сравнения и записи номеров проходят через эту функцию
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), " ", ""))
}

// IsValidPlate проверяет нормализованный номер на разумные границы
func IsValidPlate(plate string) bool {
	return len(plate) >= MinLicensePlateLength && len(plate) <= MaxLicensePlateLength
}
