package update_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/avoropay/Agenda-SchedulingService/internal/api/handlers"
	"github.com/avoropay/Agenda-SchedulingService/internal/api/middleware"
	"github.com/avoropay/Agenda-SchedulingService/internal/service/appointments"
	"github.com/avoropay/Agenda-SchedulingService/internal/service/appointments/models"
	rescheduleAppointment "github.com/avoropay/Agenda-SchedulingService/internal/usecase/reschedule_appointment"
)

var errMissingDateOrTime = errors.New("both date and startTime are required for reschedule")

const (
	msgInvalidAppointmentID    = "некорректный ID записи"
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgMissingUserID           = "отсутствует ID пользователя"
	msgNothingToUpdate         = "не указано, что обновлять"
	msgCombinedUpdate          = "нельзя совместить перенос и смену статуса в одном запросе"
	msgInvalidDateOrTime       = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound                = "запись не найдена"
	msgForbidden               = "доступ запрещен"
	msgSlotTaken               = "выбранный временной слот уже занят"
	msgProfessionalUnavailable = "мастер недоступен в выбранное время"
	msgStoreClosed             = "магазин закрыт в выбранную дату"
	msgOutsideWorkingHours     = "время выходит за рабочие часы магазина"
	msgCannotReschedule        = "запись не может быть перенесена"
	msgInvalidDate             = "некорректная дата записи"
	msgInvalidStatus           = "некорректный статус"
	msgInvalidTransition       = "недопустимый переход статуса"
)

type Handler struct {
	rescheduleUseCase RescheduleAppointmentUseCase
	service           AppointmentService
	logger            Logger
}

func NewHandler(rescheduleUseCase RescheduleAppointmentUseCase, service AppointmentService, logger Logger) *Handler {
	return &Handler{
		rescheduleUseCase: rescheduleUseCase,
		service:           service,
		logger:            logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}
// Тело с date/startTime переносит запись, тело со status меняет статус
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем appointmentId из URL
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /appointments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Определяем тип операции
	switch {
	case req.IsReschedule() && req.IsStatusUpdate():
		h.logger.Warn("PATCH /appointments/{id} - Combined update rejected: appointment_id=%d", appointmentID)
		handlers.RespondBadRequest(w, msgCombinedUpdate)

	case req.IsReschedule():
		h.handleReschedule(w, r, appointmentID, userID, &req)

	case req.IsStatusUpdate():
		h.handleStatusUpdate(w, r, appointmentID, userID, &req)

	default:
		h.logger.Warn("PATCH /appointments/{id} - Empty update: appointment_id=%d", appointmentID)
		handlers.RespondBadRequest(w, msgNothingToUpdate)
	}
}

// handleReschedule переносит запись на новую дату или время
func (h *Handler) handleReschedule(w http.ResponseWriter, r *http.Request, appointmentID, userID int64, req *UpdateAppointmentRequest) {
	useCaseReq, err := req.ToUseCaseRequest(appointmentID, userID)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Failed to parse reschedule request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.rescheduleUseCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id} - Access denied: appointment_id=%d, user_id=%d", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleAppointment.ErrSlotTaken):
			h.logger.Warn("PATCH /appointments/{id} - Slot taken: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, rescheduleAppointment.ErrProfessionalUnavailable):
			h.logger.Warn("PATCH /appointments/{id} - Professional unavailable: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgProfessionalUnavailable)

		case errors.Is(err, rescheduleAppointment.ErrStoreClosed):
			h.logger.Warn("PATCH /appointments/{id} - Store closed: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgStoreClosed)

		case errors.Is(err, rescheduleAppointment.ErrOutsideWorkingHours):
			h.logger.Warn("PATCH /appointments/{id} - Outside working hours: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgOutsideWorkingHours)

		case errors.Is(err, rescheduleAppointment.ErrCannotReschedule):
			h.logger.Warn("PATCH /appointments/{id} - Cannot reschedule: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgCannotReschedule)

		case errors.Is(err, rescheduleAppointment.ErrInvalidDate):
			h.logger.Warn("PATCH /appointments/{id} - Invalid date: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid input: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to reschedule: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment rescheduled successfully: appointment_id=%d, user_id=%d",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// handleStatusUpdate меняет статус записи
func (h *Handler) handleStatusUpdate(w http.ResponseWriter, r *http.Request, appointmentID, userID int64, req *UpdateAppointmentRequest) {
	serviceReq := &models.UpdateStatusRequest{
		UserID: userID,
		Status: *req.Status,
	}

	err := h.service.UpdateStatus(r.Context(), appointmentID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id} - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id} - Access denied: appointment_id=%d, user_id=%d", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{id} - Invalid transition: appointment_id=%d, status=%s",
				appointmentID, *req.Status)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id} - Invalid status: appointment_id=%d, status=%s",
				appointmentID, *req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /appointments/{id} - Failed to update status: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Status updated successfully: appointment_id=%d, status=%s, user_id=%d",
		appointmentID, *req.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
