// Package pricing чистая функция расчета стоимости стоянки
//
// Ставка передается параметром: источник тарифа (таблица настроек)
// инжектится на уровне use case, сам расчет от него не зависит.
package pricing

import (
	"math"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Cost считает стоимость стоянки по интервалу [entry, exit] и почасовой ставке
//
// Правила:
//   - exit <= entry или неположительная ставка -> 0
//   - минимальная тарифицируемая длительность - 15 минут (0.25 часа)
//   - итог округляется ВВЕРХ до цента: недосписания из-за плавающей
//     арифметики исключены
func Cost(entry, exit time.Time, hourlyRate float64) float64 {
	if hourlyRate <= 0 {
		return 0
	}
	if !exit.After(entry) {
		return 0
	}

	hours := exit.Sub(entry).Hours()
	if minHours := domain.MinBillableDuration.Hours(); hours < minHours {
		hours = minHours
	}

	return math.Ceil(hours*hourlyRate*100) / 100
}
