package reschedule_appointment

import (
	"time"

	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// Request модель запроса на перенос записи
type Request struct {
	AppointmentID int64            // ID переносимой записи
	UserID        int64            // ID пользователя, запросившего перенос
	Date          time.Time        // Новая дата записи
	StartTime     types.TimeString // Новое время начала
}

// Response модель ответа с перенесённой записью
type Response struct {
	ID              int64            // ID записи
	ClientID        int64            // ID клиента
	StoreID         int64            // ID магазина
	ProfessionalID  int64            // ID мастера
	ServiceID       int64            // ID услуги
	Date            time.Time        // Новая дата записи
	StartTime       types.TimeString // Новое время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	// Денормализованные данные
	ClientName       string  // Имя клиента
	ProfessionalName string  // Имя мастера
	ServiceName      string  // Название услуги
	ServicePrice     float64 // Цена услуги
	Notes            *string // Заметки
}
