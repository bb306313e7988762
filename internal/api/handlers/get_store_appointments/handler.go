package get_store_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avoropay/Agenda-SchedulingService/internal/api/handlers"
	"github.com/avoropay/Agenda-SchedulingService/internal/api/middleware"
	"github.com/avoropay/Agenda-SchedulingService/internal/service/appointments"
)

const (
	msgInvalidStoreID = "некорректный ID магазина"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgInvalidParams  = "некорректные параметры запроса"
	msgStoreNotFound  = "магазин не найден"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/appointments
// Query params: professionalId, status, date, startDate, endDate, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем storeId из URL
	vars := mux.Vars(r)
	storeIDStr := vars["storeId"]

	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/appointments - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /stores/{id}/appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем опциональные query параметры
	query := r.URL.Query()
	professionalIDStr := query.Get("professionalId")
	statusStr := query.Get("status")
	dateStr := query.Get("date")
	startDateStr := query.Get("startDate")
	endDateStr := query.Get("endDate")
	includeInactiveStr := query.Get("includeInactive")

	// Формируем запрос к сервису
	serviceReq, err := ToServiceRequest(storeID, userID, professionalIDStr, statusStr, dateStr, startDateStr, endDateStr, includeInactiveStr)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/appointments - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем записи магазина (сервис сам проверит права менеджера)
	result, err := h.service.GetStoreAppointments(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /stores/{id}/appointments - Access denied: store_id=%d, user_id=%d",
				storeID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/appointments - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /stores/{id}/appointments - Invalid filter: store_id=%d, error=%v", storeID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /stores/{id}/appointments - Failed to get appointments: store_id=%d, error=%v",
				storeID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stores/{id}/appointments - Appointments retrieved successfully: store_id=%d, count=%d",
		storeID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result.Appointments)
}
