package create_appointment

import (
	"errors"
	"net/http"

	"github.com/avoropay/Agenda-SchedulingService/internal/api/handlers"
	"github.com/avoropay/Agenda-SchedulingService/internal/api/middleware"
	createAppointment "github.com/avoropay/Agenda-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody       = "некорректное тело запроса"
	msgInvalidDateOrTime        = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID            = "отсутствует ID пользователя"
	msgSlotTaken                = "выбранный временной слот уже занят"
	msgStoreNotFound            = "магазин не найден"
	msgServiceNotFound          = "услуга не найдена"
	msgProfessionalNotFound     = "мастер не найден"
	msgProfessionalUnavailable  = "мастер недоступен в выбранное время"
	msgStoreClosed              = "магазин закрыт в выбранную дату"
	msgOutsideWorkingHours      = "время выходит за рабочие часы магазина"
	msgInvalidAppointmentDate   = "некорректная дата записи"
	msgInvalidInput             = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: client_id=%d, professional_id=%d", clientID, req.ProfessionalID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrStoreNotFound):
			h.logger.Warn("POST /appointments - Store not found: store_id=%d", req.StoreID)
			handlers.RespondNotFound(w, msgStoreNotFound)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: store_id=%d, service_id=%d", req.StoreID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalNotFound):
			h.logger.Warn("POST /appointments - Professional not found: store_id=%d, professional_id=%d", req.StoreID, req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, createAppointment.ErrProfessionalUnavailable):
			h.logger.Warn("POST /appointments - Professional unavailable: professional_id=%d, date=%s, time=%s",
				req.ProfessionalID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgProfessionalUnavailable)

		case errors.Is(err, createAppointment.ErrStoreClosed):
			h.logger.Warn("POST /appointments - Store closed: store_id=%d, date=%s", req.StoreID, req.Date)
			handlers.RespondBadRequest(w, msgStoreClosed)

		case errors.Is(err, createAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("POST /appointments - Outside working hours: store_id=%d, date=%s, time=%s",
				req.StoreID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: client_id=%d, date=%s", clientID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidAppointmentDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: client_id=%d, store_id=%d, error=%v",
				clientID, req.StoreID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, client_id=%d, store_id=%d",
		result.ID, clientID, req.StoreID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
