package create_booking

import "time"

// Request модель запроса на создание брони
// UserID уже проверен внешним слоем авторизации
type Request struct {
	UserID       int64
	LocationID   int64
	StartTime    time.Time
	EndTime      time.Time
	LicensePlate *string
}

// Response модель ответа с созданной бронью
type Response struct {
	BookingID    int64
	UserID       int64
	LocationID   int64
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	LicensePlate *string
	CreatedAt    time.Time
}
