package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidWindow возвращается для окна с end <= start или нулевыми границами
	ErrInvalidWindow = errors.New("domain: invalid time window")
)

// TimeWindow полуоткрытый временной интервал [Start, End)
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow валидирует и создает временное окно
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() {
		return TimeWindow{}, ErrInvalidWindow
	}
	if !end.After(start) {
		return TimeWindow{}, ErrInvalidWindow
	}
	return TimeWindow{Start: start, End: end}, nil
}

// Overlaps проверяет реальное пересечение двух полуоткрытых интервалов:
// a.start < b.end && a.end > b.start
// Граничащие интервалы (конец одного равен началу другого) НЕ пересекаются
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && w.End.After(other.Start)
}

// Contains проверяет попадание момента t в интервал [Start, End)
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration возвращает длительность окна
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}
