package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	catalogClient "github.com/avoropay/Agenda-SchedulingService/internal/integrations/catalogservice"
)

// UseCase use case для получения доступных слотов мастера
type UseCase struct {
	apptRepo      AppointmentRepository
	catalogClient CatalogServiceClient
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:      apptRepo,
		catalogClient: catalogClient,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case получения доступных слотов
//
// Свободным считается слот, который укладывается в рабочие часы магазина,
// не попадает в окна недоступности мастера и не пересекается с его
// активными записями. Результат носит справочный характер: финальная
// проверка конфликтов все равно выполняется при создании записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, store=%d, professional=%d, service=%d, date=%s",
		req.UserID, req.StoreID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация даты
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем магазин
	store, err := uc.catalogClient.GetStore(ctx, req.StoreID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrStoreNotFound) {
			uc.logger.Warn("GetAvailableSlots: store id=%d not found", req.StoreID)
			return nil, ErrStoreNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get store id=%d: %v", req.StoreID, err)
		return nil, fmt.Errorf("%w: failed to get store: %v", ErrInternal, err)
	}

	// 5. Получаем услугу (длительность определяет шаг слотов)
	service, err := uc.catalogClient.GetService(ctx, req.StoreID, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 6. Получаем мастера вместе с окнами недоступности
	professional, err := uc.catalogClient.GetProfessional(ctx, req.StoreID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrProfessionalNotFound) {
			uc.logger.Warn("GetAvailableSlots: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 7. Получаем рабочие часы на указанную дату
	workingHours := getWorkingHoursForDay(store, req.Date)
	if !workingHours.IsOpen {
		uc.logger.Info("GetAvailableSlots: store is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:           req.Date,
			StoreID:        req.StoreID,
			ProfessionalID: req.ProfessionalID,
			ServiceID:      req.ServiceID,
			Slots:          []Slot{},
		}, nil
	}

	// 8. Определяем длительность слота
	slotDuration := service.DurationMinutes
	if slotDuration <= 0 {
		slotDuration = domain.DefaultServiceDurationMinutes
	}

	// 9. Генерируем временные слоты
	timeSlots, err := generateTimeSlots(workingHours, slotDuration, req.Date, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate time slots: %v", ErrInternal, err)
	}

	// 10. Получаем активные записи мастера на эту дату
	appointments, err := uc.apptRepo.GetByProfessionalAndDate(ctx, req.ProfessionalID, req.Date, nil)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 11. Фильтруем слоты по окнам недоступности и существующим записям
	slots := filterAvailableSlots(timeSlots, slotDuration, req.Date, professional.UnavailabilityWindows, appointments)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for professional=%d, date=%s",
		len(slots), len(timeSlots), req.ProfessionalID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:           req.Date,
		StoreID:        req.StoreID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Slots:          slots,
	}, nil
}
