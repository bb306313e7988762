package reschedule_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	apptRepo "github.com/avoropay/Agenda-SchedulingService/internal/infra/storage/appointment"
	catalogClient "github.com/avoropay/Agenda-SchedulingService/internal/integrations/catalogservice"
)

// UseCase use case для переноса записи на другую дату или время
type UseCase struct {
	apptRepo      AppointmentRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:      apptRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case переноса записи
//
// Перенос проходит полный цикл валидации нового слота, как при создании:
// рабочие часы, окна недоступности мастера, конфликты с другими записями.
// Из проверки конфликтов исключается сама переносимая запись, иначе она
// блокировала бы перенос в пересекающийся со старым временем слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleAppointment: appointment=%d, user=%d, date=%s, time=%s",
		req.AppointmentID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем запись
	appt, err := uc.apptRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("RescheduleAppointment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	// 4. Проверяем, можно ли перенести запись
	if !appt.CanBeRescheduled() {
		uc.logger.Warn("RescheduleAppointment: appointment id=%d cannot be rescheduled, status=%s",
			req.AppointmentID, appt.Status)
		return nil, ErrCannotReschedule
	}

	// 5. Получаем магазин (рабочие часы + список менеджеров)
	store, err := uc.catalogClient.GetStore(ctx, appt.StoreID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrStoreNotFound) {
			uc.logger.Warn("RescheduleAppointment: store id=%d not found", appt.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get store id=%d: %v", appt.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	// 6. Проверяем права доступа: владелец записи или менеджер магазина
	if appt.ClientID != req.UserID && !isManager(store, req.UserID) {
		uc.logger.Warn("RescheduleAppointment: access denied for user=%d to appointment id=%d",
			req.UserID, req.AppointmentID)
		return nil, ErrAccessDenied
	}

	// 7. Получаем мастера вместе с окнами недоступности
	professional, err := uc.catalogClient.GetProfessional(ctx, appt.StoreID, appt.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			uc.logger.Warn("RescheduleAppointment: professional id=%d not found", appt.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("RescheduleAppointment: failed to get professional id=%d: %v", appt.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 8. Вычисляем новый интервал, длительность берется из записи
	interval := domain.NewInterval(req.StartTime.OnDate(req.Date), appt.DurationMinutes)

	// 9. Валидация новой даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("RescheduleAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 10. Проверяем рабочие часы магазина
	workingHours := getWorkingHoursForDay(store, req.Date)
	if err := validateWithinWorkingHours(interval, workingHours, req.Date); err != nil {
		uc.logger.Warn("RescheduleAppointment: working hours validation failed for store=%d on %s: %v",
			appt.StoreID, req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	// 11. Проверяем окна недоступности мастера
	if window := findBlockingWindow(interval, professional.UnavailabilityWindows); window != nil {
		uc.logger.Warn("RescheduleAppointment: professional id=%d unavailable, window [%s, %s)",
			appt.ProfessionalID, window.Start, window.End)
		return nil, ErrProfessionalUnavailable
	}

	// 12. Проверка конфликтов и обновление в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 12.1. Получаем записи мастера на новую дату, исключая переносимую (FOR UPDATE)
		appointments, err := uc.apptRepo.GetByProfessionalAndDate(txCtx, appt.ProfessionalID, req.Date, &req.AppointmentID)
		if err != nil {
			uc.logger.Error("RescheduleAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 12.2. Проверяем пересечение с другими записями
		if hasScheduleConflict(interval, appointments) {
			uc.logger.Warn("RescheduleAppointment: slot %s conflicts with an existing appointment, professional=%d",
				req.StartTime, appt.ProfessionalID)
			return ErrSlotTaken
		}

		// 12.3. Обновляем дату и время записи
		if err := uc.apptRepo.UpdateSchedule(txCtx, req.AppointmentID, req.Date, req.StartTime, appt.DurationMinutes); err != nil {
			// Сработал частичный уникальный индекс: слот заняли между проверкой и обновлением
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("RescheduleAppointment: slot just taken by a concurrent request, professional=%d, date=%s, time=%s",
					appt.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			uc.logger.Error("RescheduleAppointment: failed to update appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleAppointment: successfully rescheduled appointment id=%d to %s %s",
		req.AppointmentID, req.Date.Format(domain.DateFormat), req.StartTime)

	// Конвертируем в response
	return &Response{
		ID:               appt.ID,
		ClientID:         appt.ClientID,
		StoreID:          appt.StoreID,
		ProfessionalID:   appt.ProfessionalID,
		ServiceID:        appt.ServiceID,
		Date:             req.Date,
		StartTime:        req.StartTime,
		DurationMinutes:  appt.DurationMinutes,
		Status:           string(appt.Status),
		ClientName:       appt.ClientName,
		ProfessionalName: appt.ProfessionalName,
		ServiceName:      appt.ServiceName,
		ServicePrice:     appt.ServicePrice,
		Notes:            appt.Notes,
	}, nil
}
