package create_appointment

import (
	"fmt"
	"time"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	"github.com/avoropay/Agenda-SchedulingService/internal/integrations/catalogservice"
	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.StoreID <= 0 {
		return fmt.Errorf("%w: storeID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// resolveServiceDuration возвращает длительность услуги в минутах
// Если длительность не задана или некорректна, применяется дефолт в 60 минут -
// это осознанная политика платформы, а не обработка ошибки
func resolveServiceDuration(service *catalogservice.Service) int {
	if service.DurationMinutes <= 0 {
		return domain.DefaultServiceDurationMinutes
	}
	return service.DurationMinutes
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date time.Time, now time.Time) error {
	if isDateInPast(date, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateWithinWorkingHours проверяет, что слот укладывается в рабочие часы магазина
func validateWithinWorkingHours(interval domain.Interval, workingHours catalogservice.DaySchedule, date time.Time) error {
	if !workingHours.IsOpen || workingHours.OpenTime == nil || workingHours.CloseTime == nil {
		return ErrStoreClosed
	}

	openTime, err := types.NewTimeStringFromString(*workingHours.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: invalid store open time: %v", ErrInternal, err)
	}

	closeTime, err := types.NewTimeStringFromString(*workingHours.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: invalid store close time: %v", ErrInternal, err)
	}

	if interval.Start.Before(openTime.OnDate(date)) || interval.End.After(closeTime.OnDate(date)) {
		return ErrOutsideWorkingHours
	}

	return nil
}

// findBlockingWindow возвращает первое окно недоступности мастера,
// пересекающееся со слотом, или nil, если таких нет
//
// Границы окон приходят строками из панели управления и могут быть
// некорректными. Некорректное окно считается непересекающимся: падать
// при бронировании из-за кривых данных администратора нельзя
func findBlockingWindow(interval domain.Interval, windows []catalogservice.UnavailabilityWindow) *catalogservice.UnavailabilityWindow {
	for i, window := range windows {
		windowStart, err := parseWindowTimestamp(window.Start)
		if err != nil {
			continue
		}
		windowEnd, err := parseWindowTimestamp(window.End)
		if err != nil {
			continue
		}

		if interval.Overlaps(domain.Interval{Start: windowStart, End: windowEnd}) {
			return &windows[i]
		}
	}
	return nil
}

// parseWindowTimestamp парсит границу окна недоступности
// Принимает RFC3339 и "YYYY-MM-DDTHH:MM" без зоны (старый формат панели)
func parseWindowTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", s)
}

// hasScheduleConflict проверяет, пересекается ли слот с одной из записей
// Проверка учитывает длительность каждой записи: две записи разной длины,
// частично накладывающиеся друг на друга, тоже конфликтуют.
// Отмененные записи в выборку не попадают, но на всякий случай отфильтровываются и здесь
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

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
