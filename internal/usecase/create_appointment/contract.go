package create_appointment

import (
	"context"
	"time"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	"github.com/avoropay/Agenda-SchedulingService/internal/integrations/catalogservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time, excludeID *int64) ([]*domain.Appointment, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetStore(ctx context.Context, storeID int64) (*catalogservice.Store, error)
	GetService(ctx context.Context, storeID, serviceID int64) (*catalogservice.Service, error)
	GetProfessional(ctx context.Context, storeID, professionalID int64) (*catalogservice.Professional, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
