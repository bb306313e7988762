package domain

import (
	"time"

	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
// Значения статусов совпадают с клиентским приложением платформы
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pendente"
	StatusConfirmed AppointmentStatus = "confirmado"
	StatusCancelled AppointmentStatus = "cancelado"
)

// Appointment represents a client appointment with a professional at a store
type Appointment struct {
	ID             int64
	StoreID        int64
	ProfessionalID int64
	ServiceID      int64
	ClientID       int64
	Date           time.Time // Дата записи (без времени)
	StartTime      types.TimeString
	DurationMinutes int
	Status         AppointmentStatus

	// Denormalized data for history
	ClientName       string
	ProfessionalName string
	ServiceName      string
	ServicePrice     float64
	Notes            *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its slot
// Отмененная запись освобождает слот и не участвует в проверках конфликтов
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// CanBeRescheduled returns true if the appointment date/time can be changed
func (a *Appointment) CanBeRescheduled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Interval returns the time interval occupied by the appointment
func (a *Appointment) Interval() Interval {
	return NewInterval(a.StartTime.OnDate(a.Date), a.DurationMinutes)
}

// StoreAppointmentsFilter фильтр для получения записей магазина
type StoreAppointmentsFilter struct {
	StoreID         int64              // Обязательный параметр
	ProfessionalID  *int64             // Фильтр по мастеру (опционально)
	StartDate       *time.Time         // Начало периода (опционально)
	EndDate         *time.Time         // Конец периода (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные записи
}
