package catalogservice

// Store модель магазина из CatalogService
type Store struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	ManagerIDs   []int64      `json:"manager_ids"`
	WorkingHours WeekSchedule `json:"working_hours"`
}

// WeekSchedule расписание работы магазина по дням недели
type WeekSchedule struct {
	Monday    DaySchedule `json:"monday"`
	Tuesday   DaySchedule `json:"tuesday"`
	Wednesday DaySchedule `json:"wednesday"`
	Thursday  DaySchedule `json:"thursday"`
	Friday    DaySchedule `json:"friday"`
	Saturday  DaySchedule `json:"saturday"`
	Sunday    DaySchedule `json:"sunday"`
}

// DaySchedule расписание работы магазина на один день недели
type DaySchedule struct {
	IsOpen    bool    `json:"is_open"`
	OpenTime  *string `json:"open_time,omitempty"`  // "09:00"
	CloseTime *string `json:"close_time,omitempty"` // "19:00"
}

// Service модель услуги из CatalogService
type Service struct {
	ID              int64    `json:"id"`
	StoreID         int64    `json:"store_id"`
	Name            string   `json:"name"`
	DurationMinutes int      `json:"duration_minutes"` // 0 = не задана, применяется дефолт
	Price           *float64 `json:"price,omitempty"`
}

// Professional модель мастера из CatalogService
type Professional struct {
	ID                    int64                  `json:"id"`
	StoreID               int64                  `json:"store_id"`
	Name                  string                 `json:"name"`
	UnavailabilityWindows []UnavailabilityWindow `json:"unavailability_windows"`
}

// UnavailabilityWindow окно недоступности мастера (отпуск, больничный и т.п.)
// Границы приходят строками как есть из панели управления магазина:
// значения могут быть некорректными, окна - пересекаться и дублироваться
type UnavailabilityWindow struct {
	Start string `json:"start"` // RFC3339, например "2025-12-01T09:00:00Z"
	End   string `json:"end"`
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
