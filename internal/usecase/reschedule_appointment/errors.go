package reschedule_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("store not found")

	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrProfessionalUnavailable возвращается, когда новый слот попадает
	// в окно недоступности мастера
	ErrProfessionalUnavailable = errors.New("professional is unavailable during this period")

	// ErrSlotTaken возвращается, когда новый слот уже занят другой записью
	ErrSlotTaken = errors.New("time slot is already booked")

	// ErrStoreClosed возвращается, когда магазин закрыт в этот день
	ErrStoreClosed = errors.New("store is closed on this day")

	// ErrOutsideWorkingHours возвращается, когда слот выходит за рабочие часы
	ErrOutsideWorkingHours = errors.New("slot is outside store working hours")

	// ErrCannotReschedule возвращается, когда запись нельзя перенести (отменена)
	ErrCannotReschedule = errors.New("appointment cannot be rescheduled")

	// ErrAccessDenied возвращается, когда у пользователя нет прав на перенос
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidDate возвращается при попытке переноса на прошедшую дату
	ErrInvalidDate = errors.New("date must not be in the past")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("internal error")
)
