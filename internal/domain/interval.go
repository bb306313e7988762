package domain

import "time"

// Interval полуинтервал времени [Start, End)
// Единственная реализация проверки пересечения интервалов в сервисе:
// её используют и проверка окон недоступности мастера, и проверка
// конфликтов с существующими записями
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал от start длительностью durationMinutes минут
func NewInterval(start time.Time, durationMinutes int) Interval {
	return Interval{
		Start: start,
		End:   start.Add(time.Duration(durationMinutes) * time.Minute),
	}
}

// Overlaps returns true if the two half-open intervals overlap
// Используются строгие неравенства: записи "впритык" (одна заканчивается
// ровно там, где начинается другая) конфликтом не считаются.
// Интервал нулевой длины (End == Start) не пересекается ни с чем
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// IsZero returns true if the interval has no duration
func (i Interval) IsZero() bool {
	return !i.End.After(i.Start)
}
