package get_available_slots

import (
	"time"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	getAvailableSlots "github.com/avoropay/Agenda-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string          `json:"date"`
	StoreID        int64           `json:"storeId"`
	ProfessionalID int64           `json:"professionalId"`
	ServiceID      int64           `json:"serviceId"`
	Slots          []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
		}
	}

	return &AvailableSlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		StoreID:        resp.StoreID,
		ProfessionalID: resp.ProfessionalID,
		ServiceID:      resp.ServiceID,
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из path и query параметров
func ToUseCaseRequest(storeID, professionalID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StoreID:        storeID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           date,
	}, nil
}
