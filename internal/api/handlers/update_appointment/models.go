package update_appointment

import (
	"time"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	rescheduleAppointment "github.com/avoropay/Agenda-SchedulingService/internal/usecase/reschedule_appointment"
	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// UpdateAppointmentRequest HTTP request model
// Запрос либо переносит запись (date + startTime), либо меняет статус (status).
// Комбинировать эти операции в одном запросе нельзя
type UpdateAppointmentRequest struct {
	Date      *string `json:"date,omitempty"`      // "2026-03-15"
	StartTime *string `json:"startTime,omitempty"` // "10:00"
	Status    *string `json:"status,omitempty"`
}

// IsReschedule возвращает true, если запрос содержит новую дату или время
func (r *UpdateAppointmentRequest) IsReschedule() bool {
	return r.Date != nil || r.StartTime != nil
}

// IsStatusUpdate возвращает true, если запрос содержит новый статус
func (r *UpdateAppointmentRequest) IsStatusUpdate() bool {
	return r.Status != nil
}

// AppointmentResponse HTTP response model для перенесённой записи
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
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case переноса
// Для переноса обязательны обе части: и дата, и время
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID, userID int64) (*rescheduleAppointment.Request, error) {
	if r.Date == nil || r.StartTime == nil {
		return nil, errMissingDateOrTime
	}

	date, err := time.Parse(domain.DateFormat, *r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(*r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleAppointment.Request{
		AppointmentID: appointmentID,
		UserID:        userID,
		Date:          date,
		StartTime:     startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleAppointment.Response) *AppointmentResponse {
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
	}
}
