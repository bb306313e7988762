package create_appointment

import "errors"

var (
	// ErrStoreNotFound возвращается, когда магазин не найден
	ErrStoreNotFound = errors.New("create_appointment: store not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrProfessionalUnavailable возвращается, когда слот попадает в окно
	// недоступности мастера (отпуск, больничный)
	// Причина отказа намеренно отличается от ErrSlotTaken: клиенту важно видеть,
	// что мастер недоступен в принципе, а не что слот занят другой записью
	ErrProfessionalUnavailable = errors.New("create_appointment: professional is unavailable during this period")

	// ErrSlotTaken возвращается, когда слот пересекается с другой активной записью
	ErrSlotTaken = errors.New("create_appointment: time slot is already booked")

	// ErrStoreClosed возвращается, когда магазин закрыт в указанную дату
	ErrStoreClosed = errors.New("create_appointment: store is closed on this date")

	// ErrOutsideWorkingHours возвращается, когда слот выходит за рабочие часы магазина
	ErrOutsideWorkingHours = errors.New("create_appointment: slot is outside store working hours")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_appointment: invalid appointment date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
