package appointments

import (
	"context"
	"time"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	"github.com/avoropay/Agenda-SchedulingService/internal/integrations/catalogservice"
	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByClientID(ctx context.Context, clientID int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByStoreWithFilter(ctx context.Context, filter domain.StoreAppointmentsFilter) ([]*domain.Appointment, error)
	GetByProfessionalAndDate(ctx context.Context, professionalID int64, date time.Time, excludeID *int64) ([]*domain.Appointment, error)
	UpdateSchedule(ctx context.Context, id int64, date time.Time, startTime types.TimeString, durationMinutes int) error
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetStore(ctx context.Context, storeID int64) (*catalogservice.Store, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
