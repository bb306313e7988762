package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	apptRepo "github.com/avoropay/Agenda-SchedulingService/internal/infra/storage/appointment"
	catalogClient "github.com/avoropay/Agenda-SchedulingService/internal/integrations/catalogservice"
)

// UseCase use case для создания записи
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

// Execute выполняет use case создания записи
//
// Порядок проверок фиксирован, от него зависит, какую причину отказа увидит
// клиент: услуга -> мастер -> дата и рабочие часы -> окна недоступности ->
// конфликт с существующими записями.
//
// Проверка конфликтов и вставка выполняются в сериализуемой транзакции с
// блокировкой записей мастера на дату (FOR UPDATE). Вторым рубежом от гонки
// двух одновременных бронирований служит частичный уникальный индекс в БД:
// даже если обе валидации прошли, вставится только одна запись
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%d, store=%d, professional=%d, service=%d, date=%s, time=%s",
		req.ClientID, req.StoreID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем магазин
	store, err := uc.catalogClient.GetStore(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrStoreNotFound) {
			uc.logger.Warn("CreateAppointment: store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	// 4. Получаем услугу
	service, err := uc.catalogClient.GetService(ctx, req.StoreID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. Получаем мастера вместе с окнами недоступности
	professional, err := uc.catalogClient.GetProfessional(ctx, req.StoreID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 6. Вычисляем интервал-кандидат [start, start+duration)
	duration := resolveServiceDuration(service)
	interval := domain.NewInterval(req.StartTime.OnDate(req.Date), duration)

	// 7. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 8. Проверяем рабочие часы магазина
	workingHours := getWorkingHoursForDay(store, req.Date)
	if err := validateWithinWorkingHours(interval, workingHours, req.Date); err != nil {
		uc.logger.Warn("CreateAppointment: working hours validation failed for store=%d on %s: %v",
			req.StoreID, req.Date.Format(domain.DateFormat), err)
		return nil, err
	}

	// 9. Проверяем окна недоступности мастера
	if window := findBlockingWindow(interval, professional.UnavailabilityWindows); window != nil {
		uc.logger.Warn("CreateAppointment: professional id=%d unavailable, window [%s, %s)",
			req.ProfessionalID, window.Start, window.End)
		return nil, ErrProfessionalUnavailable
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 10. Проверка конфликтов и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 10.1. Получаем активные записи мастера на эту дату с блокировкой (FOR UPDATE)
		appointments, err := uc.apptRepo.GetByProfessionalAndDate(txCtx, req.ProfessionalID, req.Date, nil)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 10.2. Проверяем пересечение с существующими записями
		if hasScheduleConflict(interval, appointments) {
			uc.logger.Warn("CreateAppointment: slot %s conflicts with an existing appointment, professional=%d",
				req.StartTime, req.ProfessionalID)
			return ErrSlotTaken
		}

		// 10.3. Создаем запись с денормализацией данных
		appt := &domain.Appointment{
			ClientID:        req.ClientID,
			StoreID:         req.StoreID,
			ProfessionalID:  req.ProfessionalID,
			ServiceID:       req.ServiceID,
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusPending,
			// Денормализация данных клиента и мастера
			ClientName:       req.ClientName,
			ProfessionalName: resolveProfessionalName(req, professional),
			// Денормализация данных услуги
			ServiceName:  service.Name,
			ServicePrice: getServicePrice(service),
			// Заметки
			Notes: req.Notes,
		}

		// 10.4. Сохраняем запись
		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			// Сработал частичный уникальный индекс: конкурирующая запись успела раньше
			if errors.Is(err, apptRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot just taken by a concurrent request, professional=%d, date=%s, time=%s",
					req.ProfessionalID, req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:               result.ID,
		ClientID:         result.ClientID,
		StoreID:          result.StoreID,
		ProfessionalID:   result.ProfessionalID,
		ServiceID:        result.ServiceID,
		Date:             result.Date,
		StartTime:        result.StartTime,
		DurationMinutes:  result.DurationMinutes,
		Status:           string(result.Status),
		ClientName:       result.ClientName,
		ProfessionalName: result.ProfessionalName,
		ServiceName:      result.ServiceName,
		ServicePrice:     result.ServicePrice,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// resolveProfessionalName возвращает имя мастера для денормализации
// Имя из запроса имеет приоритет (так присылает старый клиент платформы),
// иначе берется имя из каталога
func resolveProfessionalName(req *Request, professional *catalogClient.Professional) string {
	if req.ProfessionalName != "" {
		return req.ProfessionalName
	}
	return professional.Name
}

// getServicePrice извлекает цену из услуги
// Если цена не указана (nil), возвращает 0.0
func getServicePrice(service *catalogClient.Service) float64 {
	if service.Price == nil {
		return 0.0
	}
	return *service.Price
}
