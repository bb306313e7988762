package create_appointment

import (
	"time"

	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID         int64            // ID клиента
	ClientName       string           // Имя клиента (денормализуется в запись)
	StoreID          int64            // ID магазина
	ProfessionalID   int64            // ID мастера
	ProfessionalName string           // Имя мастера (опционально, иначе берется из каталога)
	ServiceID        int64            // ID услуги
	Date             time.Time        // Дата записи (без времени)
	StartTime        types.TimeString // Время начала (например, "10:00")
	Notes            *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	ClientID        int64            // ID клиента
	StoreID         int64            // ID магазина
	ProfessionalID  int64            // ID мастера
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	// Денормализованные данные
	ClientName       string  // Имя клиента
	ProfessionalName string  // Имя мастера
	ServiceName      string  // Название услуги
	ServicePrice     float64 // Цена услуги
	Notes            *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
