package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	apptRepo "github.com/avoropay/Agenda-SchedulingService/internal/infra/storage/appointment"
	catalogClient "github.com/avoropay/Agenda-SchedulingService/internal/integrations/catalogservice"
	"github.com/avoropay/Agenda-SchedulingService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	apptRepo      AppointmentRepository
	catalogClient CatalogServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	apptRepo AppointmentRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *Service {
	return &Service{
		apptRepo:      apptRepo,
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// GetByID получает запись по ID
// Проверяет права доступа - пользователь может видеть только свою запись
// или если он является менеджером магазина
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, appt, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetUserAppointments получает историю записей клиента
// Опционально фильтрует по статусу
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.AppointmentStatus
	var domainStatus *domain.AppointmentStatus
	if req.Status != nil {
		status, err := models.ToDomainAppointmentStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	appointments, err := s.apptRepo.GetByClientID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserAppointments: successfully fetched %d appointments for user=%d", len(appointments), req.UserID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetStoreAppointments получает записи магазина с гибкой фильтрацией
// Поддерживает фильтрацию по мастеру, периоду, статусу и включению отменённых записей
// Доступно только менеджерам магазина
//
// Примеры использования:
// - Все активные записи: GetStoreAppointments(ctx, &GetStoreAppointmentsRequest{StoreID: 123, UserID: 456})
// - Записи конкретного мастера: указать ProfessionalID
// - Записи на дату: StartDate и EndDate указывают на одну дату
// - Записи за период: StartDate и EndDate указывают на разные даты
// - Только подтверждённые: указать Status = "confirmado"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetStoreAppointments(ctx context.Context, req *models.GetStoreAppointmentsRequest) (*models.AppointmentListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetStoreAppointments: fetching appointments for store=%d, user=%d", req.StoreID, req.UserID)
	if req.ProfessionalID != nil {
		logMsg += fmt.Sprintf(", professional=%d", *req.ProfessionalID)
	}
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа менеджера
	if err := s.checkManagerAccess(ctx, req.StoreID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetStoreAppointments: invalid filter for store=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем записи с фильтрацией
	appointments, err := s.apptRepo.GetByStoreWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetStoreAppointments: repository error for store=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: GetStoreAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStoreAppointments: successfully fetched %d appointments for store=%d", len(appointments), req.StoreID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись
// Клиент может отменить только свою запись,
// менеджер может отменить любую запись своего магазина
func (s *Service) Cancel(ctx context.Context, appointmentID int64, req *models.CancelAppointmentRequest) error {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%d", appointmentID, req.UserID)

	// Получаем запись
	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить запись
	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", appointmentID, appt.Status)
		return ErrCannotCancel
	}

	// Проверяем права доступа
	if appt.ClientID != req.UserID {
		// Не владелец - проверяем, является ли пользователь менеджером магазина
		if err := s.checkManagerAccess(ctx, appt.StoreID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel appointment id=%d", req.UserID, appointmentID)
			return ErrAccessDenied
		}
	}

	// Отменяем запись
	if err := s.apptRepo.Cancel(ctx, appointmentID, req.CancellationReason); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment id=%d not found during cancellation", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", appointmentID)
	return nil
}

// UpdateStatus обновляет статус записи
// Доступно только менеджерам магазина
// Отмена через этот метод запрещена - для неё есть Cancel с причиной
func (s *Service) UpdateStatus(ctx context.Context, appointmentID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating appointment id=%d to status=%s by user=%d",
		appointmentID, req.Status, req.UserID)

	// Получаем запись
	appt, err := s.apptRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только менеджер магазина)
	if err := s.checkManagerAccess(ctx, appt.StoreID, req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainAppointmentStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for appointment id=%d", req.Status, appointmentID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Проверяем допустимость перехода
	if err := validateTransition(appt.Status, newStatus); err != nil {
		s.logger.Warn("UpdateStatus: invalid transition %s -> %s for appointment id=%d",
			appt.Status, newStatus, appointmentID)
		return err
	}

	// Обновляем статус
	if err := s.apptRepo.UpdateStatus(ctx, appointmentID, newStatus); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%d not found during update", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated appointment id=%d to status=%s", appointmentID, newStatus)
	return nil
}

// Вспомогательные методы

// validateTransition проверяет допустимость перехода статуса
// Разрешён только переход pendente -> confirmado.
// Переход в cancelado выполняется через Cancel (с причиной),
// отменённая запись терминальна
func validateTransition(current, next domain.AppointmentStatus) error {
	if current == next {
		return nil
	}
	if current == domain.StatusPending && next == domain.StatusConfirmed {
		return nil
	}
	return ErrInvalidTransition
}

// checkUserAccess проверяет, что пользователь имеет доступ к записи
// Пользователь может видеть свою запись или если он менеджер магазина
func (s *Service) checkUserAccess(ctx context.Context, appt *domain.Appointment, userID int64) error {
	// Если пользователь владелец записи - доступ разрешён
	if appt.ClientID == userID {
		return nil
	}

	// Проверяем, является ли пользователь менеджером магазина
	if err := s.checkManagerAccess(ctx, appt.StoreID, userID); err != nil {
		// Ошибка уже залогирована в checkManagerAccess
		return ErrAccessDenied
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером магазина
func (s *Service) checkManagerAccess(ctx context.Context, storeID int64, userID int64) error {
	// Получаем магазин через CatalogService
	store, err := s.catalogClient.GetStore(ctx, storeID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrStoreNotFound) {
			s.logger.Warn("checkManagerAccess: store id=%d not found", storeID)
			return ErrStoreNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get store id=%d: %v", storeID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get store: %v", ErrInternal, err)
	}

	// Проверяем, что userID в списке менеджеров
	for _, managerID := range store.ManagerIDs {
		if managerID == userID {
			s.logger.Info("checkManagerAccess: user=%d is manager of store=%d", userID, storeID)
			return nil
		}
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of store=%d", userID, storeID)
	return ErrAccessDenied
}
