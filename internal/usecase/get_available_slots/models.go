package get_available_slots

import (
	"time"

	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID         int64     // ID пользователя (для логирования, не влияет на результат)
	StoreID        int64     // ID магазина
	ProfessionalID int64     // ID мастера
	ServiceID      int64     // ID услуги
	Date           time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date           time.Time // Дата, на которую запрашивались слоты
	StoreID        int64     // ID магазина
	ProfessionalID int64     // ID мастера
	ServiceID      int64     // ID услуги
	Slots          []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	DurationMinutes int              // Длительность слота в минутах
}
