package domain

// Default values
const (
	// DefaultServiceDurationMinutes длительность услуги по умолчанию
	// Применяется, когда у услуги не задана (или задана некорректно) длительность
	DefaultServiceDurationMinutes = 60
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxNotesLength            = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов записей, не занимающих слот
// Используется для фильтрации при проверке конфликтов
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов записей, занимающих слот
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}
