package domain

import "time"

// Admission policy defaults
const (
	// DefaultBookingCapacityShare доля физической вместимости, отводимая
	// под пересекающиеся активные брони (мягкий лимит пула бронирования)
	DefaultBookingCapacityShare = 0.70

	// DefaultCancellationNotice минимальный срок до начала окна,
	// при котором пользователь еще может отменить бронь самостоятельно
	DefaultCancellationNotice = time.Hour
)

// Pricing constants
const (
	// MinBillableDuration минимальная тарифицируемая длительность стоянки
	MinBillableDuration = 15 * time.Minute
)

// Validation constants
const (
	MinLicensePlateLength = 2
	MaxLicensePlateLength = 16

	MaxCancellationReasonLength = 500
)
