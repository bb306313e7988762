package get_available_slots

import (
	"time"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	"github.com/avoropay/Agenda-SchedulingService/internal/integrations/catalogservice"
	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день
// Слоты идут от открытия магазина с шагом, равным длительности услуги.
// Для сегодняшней даты уже прошедшие слоты отбрасываются
func generateTimeSlots(
	workingHours catalogservice.DaySchedule,
	slotDuration int,
	requestDate time.Time,
	now time.Time,
) ([]types.TimeString, error) {
	// Дата в прошлом - слотов нет
	if isDateInPast(requestDate, now) {
		return []types.TimeString{}, nil
	}

	// Магазин закрыт в этот день
	if !workingHours.IsOpen || workingHours.OpenTime == nil || workingHours.CloseTime == nil {
		return []types.TimeString{}, nil
	}

	openTime, err := types.NewTimeStringFromString(*workingHours.OpenTime)
	if err != nil {
		return nil, err
	}

	closeTime, err := types.NewTimeStringFromString(*workingHours.CloseTime)
	if err != nil {
		return nil, err
	}

	// Генерируем все слоты от открытия до закрытия
	allSlots := make([]types.TimeString, 0)
	currentSlot := openTime

	for currentSlot.IsBefore(closeTime) {
		// Слот должен целиком уложиться до закрытия
		slotEnd, err := currentSlot.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		allSlots = append(allSlots, currentSlot)
		currentSlot, err = currentSlot.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
	}

	// На будущую дату доступны все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Сегодня - отбрасываем слоты, которые уже начались
	currentTime := types.NewTimeString(now)
	availableSlots := make([]types.TimeString, 0)
	for _, slot := range allSlots {
		if !slot.IsBefore(currentTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// filterAvailableSlots оставляет только слоты, свободные у мастера:
// не попадающие в окна недоступности и не пересекающиеся с активными записями.
// У одного мастера одновременно может идти только одна запись
func filterAvailableSlots(
	slots []types.TimeString,
	slotDuration int,
	date time.Time,
	windows []catalogservice.UnavailabilityWindow,
	appointments []*domain.Appointment,
) []Slot {
	// Заранее парсим окна недоступности, некорректные пропускаем
	blocked := make([]domain.Interval, 0, len(windows))
	for _, window := range windows {
		start, err := parseWindowTimestamp(window.Start)
		if err != nil {
			continue
		}
		end, err := parseWindowTimestamp(window.End)
		if err != nil {
			continue
		}
		blocked = append(blocked, domain.Interval{Start: start, End: end})
	}

	result := make([]Slot, 0, len(slots))

	for _, slotStart := range slots {
		interval := domain.NewInterval(slotStart.OnDate(date), slotDuration)

		if overlapsAny(interval, blocked) {
			continue
		}

		if hasScheduleConflict(interval, appointments) {
			continue
		}

		result = append(result, Slot{
			StartTime:       slotStart,
			DurationMinutes: slotDuration,
		})
	}

	return result
}

// overlapsAny проверяет пересечение интервала с одним из списка
func overlapsAny(interval domain.Interval, others []domain.Interval) bool {
	for _, other := range others {
		if interval.Overlaps(other) {
			return true
		}
	}
	return false
}

// hasScheduleConflict проверяет, пересекается ли слот с одной из записей
func hasScheduleConflict(interval domain.Interval, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if interval.Overlaps(appt.Interval()) {
			return true
		}
	}
	return false
}

// parseWindowTimestamp парсит границу окна недоступности
// Принимает RFC3339 и "YYYY-MM-DDTHH:MM" без зоны (старый формат панели)
func parseWindowTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", s)
}

// getWorkingHoursForDay возвращает расписание работы магазина на указанный день недели
func getWorkingHoursForDay(store *catalogservice.Store, date time.Time) catalogservice.DaySchedule {
	switch date.Weekday() {
	case time.Monday:
		return store.WorkingHours.Monday
	case time.Tuesday:
		return store.WorkingHours.Tuesday
	case time.Wednesday:
		return store.WorkingHours.Wednesday
	case time.Thursday:
		return store.WorkingHours.Thursday
	case time.Friday:
		return store.WorkingHours.Friday
	case time.Saturday:
		return store.WorkingHours.Saturday
	case time.Sunday:
		return store.WorkingHours.Sunday
	default:
		return catalogservice.DaySchedule{IsOpen: false}
	}
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
