package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avoropay/Agenda-SchedulingService/internal/api/handlers"
	getAvailableSlots "github.com/avoropay/Agenda-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStoreID        = "некорректный ID магазина"
	msgInvalidProfessionalID = "некорректный ID мастера"
	msgInvalidServiceID      = "некорректный ID услуги"
	msgMissingServiceID      = "ID услуги обязателен"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDateValue      = "некорректная дата"
	msgStoreNotFound         = "магазин не найден"
	msgProfessionalNotFound  = "мастер не найден"
	msgServiceNotFound       = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stores/{storeId}/professionals/{professionalId}/available-slots
// Query params: serviceId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем storeId из URL
	storeIDStr := vars["storeId"]
	storeID, err := strconv.ParseInt(storeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/professionals/{id}/available-slots - Invalid store ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStoreID)
		return
	}

	// Извлекаем professionalId из URL
	professionalIDStr := vars["professionalId"]
	professionalID, err := strconv.ParseInt(professionalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/professionals/{id}/available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	// Извлекаем serviceId из query параметров
	serviceIDStr := r.URL.Query().Get("serviceId")
	if serviceIDStr == "" {
		h.logger.Warn("GET /stores/{id}/professionals/{id}/available-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/professionals/{id}/available-slots - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stores/{id}/professionals/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(storeID, professionalID, serviceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /stores/{id}/professionals/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, getAvailableSlots.ErrStoreNotFound):
			h.logger.Warn("GET /stores/{id}/professionals/{id}/available-slots - Store not found: store_id=%d", storeID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /stores/{id}/professionals/{id}/available-slots - Professional not found: store_id=%d, professional_id=%d",
				storeID, professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /stores/{id}/professionals/{id}/available-slots - Service not found: store_id=%d, service_id=%d",
				storeID, serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /stores/{id}/professionals/{id}/available-slots - Invalid date: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDateValue)

		default:
			h.logger.Error("GET /stores/{id}/professionals/{id}/available-slots - Failed to get slots: store_id=%d, professional_id=%d, service_id=%d, error=%v",
				storeID, professionalID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("GET /stores/{id}/professionals/{id}/available-slots - Slots retrieved successfully: store_id=%d, professional_id=%d, service_id=%d, slots_count=%d",
		storeID, professionalID, serviceID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
