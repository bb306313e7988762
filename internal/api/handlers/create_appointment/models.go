package create_appointment

import (
	"time"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	createAppointment "github.com/avoropay/Agenda-SchedulingService/internal/usecase/create_appointment"
	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	StoreID          int64   `json:"storeId"`
	ProfessionalID   int64   `json:"professionalId"`
	ServiceID        int64   `json:"serviceId"`
	Date             string  `json:"date"`      // "2026-03-15"
	StartTime        string  `json:"startTime"` // "10:00"
	ClientName       string  `json:"clientName"`
	ProfessionalName string  `json:"professionalName,omitempty"`
	Notes            *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID               int64   `json:"id"`
	ClientID         int64   `json:"clientId"`
	StoreID          int64   `json:"storeId"`
	ProfessionalID   int64   `json:"professionalId"`
	ServiceID        int64   `json:"serviceId"`
	Date             string  `json:"date"`
	StartTime        string  `json:"startTime"`
	DurationMinutes  int     `json:"durationMinutes"`
	Status           string  `json:"status"`
	ClientName       string  `json:"clientName"`
	ProfessionalName string  `json:"professionalName"`
	ServiceName      string  `json:"serviceName"`
	ServicePrice     float64 `json:"servicePrice"`
	Notes            *string `json:"notes,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// clientID приходит из контекста аутентификации, а не из тела
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:         clientID,
		ClientName:       r.ClientName,
		StoreID:          r.StoreID,
		ProfessionalID:   r.ProfessionalID,
		ProfessionalName: r.ProfessionalName,
		ServiceID:        r.ServiceID,
		Date:             date,
		StartTime:        startTime,
		Notes:            r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               resp.ID,
		ClientID:         resp.ClientID,
		StoreID:          resp.StoreID,
		ProfessionalID:   resp.ProfessionalID,
		ServiceID:        resp.ServiceID,
		Date:             resp.Date.Format(domain.DateFormat),
		StartTime:        resp.StartTime.String(),
		DurationMinutes:  resp.DurationMinutes,
		Status:           resp.Status,
		ClientName:       resp.ClientName,
		ProfessionalName: resp.ProfessionalName,
		ServiceName:      resp.ServiceName,
		ServicePrice:     resp.ServicePrice,
		Notes:            resp.Notes,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
