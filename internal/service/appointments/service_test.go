package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	apptRepo "github.com/avoropay/Agenda-SchedulingService/internal/infra/storage/appointment"
	"github.com/avoropay/Agenda-SchedulingService/internal/integrations/catalogservice"
	"github.com/avoropay/Agenda-SchedulingService/internal/service/appointments/models"
	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// Фейки для зависимостей сервиса

type fakeRepo struct {
	appointment   *domain.Appointment
	getErr        error
	byClient      []*domain.Appointment
	clientStatus  *domain.AppointmentStatus
	byStore       []*domain.Appointment
	storeFilter   domain.StoreAppointmentsFilter
	cancelErr     error
	cancelledID   int64
	cancelReason  string
	statusErr     error
	updatedStatus domain.AppointmentStatus
	statusCalled  bool
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appointment, nil
}

func (f *fakeRepo) GetByClientID(_ context.Context, _ int64, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	f.clientStatus = status
	return f.byClient, nil
}

func (f *fakeRepo) GetByStoreWithFilter(_ context.Context, filter domain.StoreAppointmentsFilter) ([]*domain.Appointment, error) {
	f.storeFilter = filter
	return f.byStore, nil
}

func (f *fakeRepo) GetByProfessionalAndDate(_ context.Context, _ int64, _ time.Time, _ *int64) ([]*domain.Appointment, error) {
	return nil, nil
}

func (f *fakeRepo) UpdateSchedule(_ context.Context, _ int64, _ time.Time, _ types.TimeString, _ int) error {
	return nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ int64, status domain.AppointmentStatus) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.statusCalled = true
	f.updatedStatus = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = id
	f.cancelReason = reason
	return nil
}

type fakeCatalog struct {
	store    *catalogservice.Store
	storeErr error
}

func (f *fakeCatalog) GetStore(_ context.Context, _ int64) (*catalogservice.Store, error) {
	if f.storeErr != nil {
		return nil, f.storeErr
	}
	return f.store, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testStore() *catalogservice.Store {
	return &catalogservice.Store{
		ID:         10,
		Name:       "Studio Bela Vista",
		ManagerIDs: []int64{500},
	}
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              42,
		ClientID:        1,
		StoreID:         10,
		ProfessionalID:  30,
		ServiceID:       20,
		Date:            time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusPending,
	}
}

func newTestService(repo *fakeRepo, catalog *fakeCatalog) *Service {
	return NewService(repo, catalog, nopLogger{})
}

func TestGetByID_Owner(t *testing.T) {
	svc := newTestService(&fakeRepo{appointment: testAppointment()}, &fakeCatalog{store: testStore()})

	resp, err := svc.GetByID(context.Background(), 42, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "pendente", resp.Status)
}

func TestGetByID_Manager(t *testing.T) {
	svc := newTestService(&fakeRepo{appointment: testAppointment()}, &fakeCatalog{store: testStore()})

	_, err := svc.GetByID(context.Background(), 42, 500)
	require.NoError(t, err)
}

func TestGetByID_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeRepo{appointment: testAppointment()}, &fakeCatalog{store: testStore()})

	_, err := svc.GetByID(context.Background(), 42, 777)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{getErr: apptRepo.ErrAppointmentNotFound}, &fakeCatalog{store: testStore()})

	_, err := svc.GetByID(context.Background(), 42, 1)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestGetUserAppointments_StatusFilter(t *testing.T) {
	repo := &fakeRepo{byClient: []*domain.Appointment{testAppointment()}}
	svc := newTestService(repo, &fakeCatalog{store: testStore()})

	status := "confirmado"
	resp, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: 1,
		Status: &status,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	require.NotNil(t, repo.clientStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.clientStatus)
}

func TestGetUserAppointments_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeCatalog{store: testStore()})

	status := "agendado"
	_, err := svc.GetUserAppointments(context.Background(), &models.GetUserAppointmentsRequest{
		UserID: 1,
		Status: &status,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetStoreAppointments_ManagerOnly(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeCatalog{store: testStore()})

	_, err := svc.GetStoreAppointments(context.Background(), &models.GetStoreAppointmentsRequest{
		StoreID: 10,
		UserID:  1, // не менеджер
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetStoreAppointments_FilterPassedToRepo(t *testing.T) {
	repo := &fakeRepo{byStore: []*domain.Appointment{testAppointment()}}
	svc := newTestService(repo, &fakeCatalog{store: testStore()})

	profID := int64(30)
	status := "pendente"
	startDate := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC)

	resp, err := svc.GetStoreAppointments(context.Background(), &models.GetStoreAppointmentsRequest{
		StoreID:         10,
		UserID:          500,
		ProfessionalID:  &profID,
		StartDate:       &startDate,
		EndDate:         &endDate,
		Status:          &status,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	assert.Equal(t, int64(10), repo.storeFilter.StoreID)
	require.NotNil(t, repo.storeFilter.ProfessionalID)
	assert.Equal(t, int64(30), *repo.storeFilter.ProfessionalID)
	require.NotNil(t, repo.storeFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.storeFilter.Status)
	assert.True(t, repo.storeFilter.IncludeInactive)
}

func TestGetStoreAppointments_StoreNotFound(t *testing.T) {
	svc := newTestService(&fakeRepo{}, &fakeCatalog{storeErr: catalogservice.ErrStoreNotFound})

	_, err := svc.GetStoreAppointments(context.Background(), &models.GetStoreAppointmentsRequest{
		StoreID: 99,
		UserID:  500,
	})
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestCancel_Owner(t *testing.T) {
	repo := &fakeRepo{appointment: testAppointment()}
	svc := newTestService(repo, &fakeCatalog{store: testStore()})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{
		UserID:             1,
		CancellationReason: "imprevisto pessoal",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), repo.cancelledID)
	assert.Equal(t, "imprevisto pessoal", repo.cancelReason)
}

func TestCancel_Manager(t *testing.T) {
	repo := &fakeRepo{appointment: testAppointment()}
	svc := newTestService(repo, &fakeCatalog{store: testStore()})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 500})
	require.NoError(t, err)
}

func TestCancel_AccessDenied(t *testing.T) {
	svc := newTestService(&fakeRepo{appointment: testAppointment()}, &fakeCatalog{store: testStore()})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 777})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	appt := testAppointment()
	appt.Status = domain.StatusCancelled

	svc := newTestService(&fakeRepo{appointment: appt}, &fakeCatalog{store: testStore()})

	err := svc.Cancel(context.Background(), 42, &models.CancelAppointmentRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestUpdateStatus_PendingToConfirmed(t *testing.T) {
	repo := &fakeRepo{appointment: testAppointment()}
	svc := newTestService(repo, &fakeCatalog{store: testStore()})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: 500,
		Status: "confirmado",
	})
	require.NoError(t, err)
	assert.True(t, repo.statusCalled)
	assert.Equal(t, domain.StatusConfirmed, repo.updatedStatus)
}

func TestUpdateStatus_NotManager(t *testing.T) {
	svc := newTestService(&fakeRepo{appointment: testAppointment()}, &fakeCatalog{store: testStore()})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: 1, // владелец записи, но не менеджер
		Status: "confirmado",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdateStatus_CancellationForbidden(t *testing.T) {
	repo := &fakeRepo{appointment: testAppointment()}
	svc := newTestService(repo, &fakeCatalog{store: testStore()})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: 500,
		Status: "cancelado",
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.False(t, repo.statusCalled)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	svc := newTestService(&fakeRepo{appointment: testAppointment()}, &fakeCatalog{store: testStore()})

	err := svc.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{
		UserID: 500,
		Status: "finalizado",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name    string
		current domain.AppointmentStatus
		next    domain.AppointmentStatus
		wantErr error
	}{
		{"pendente -> confirmado", domain.StatusPending, domain.StatusConfirmed, nil},
		{"тот же статус", domain.StatusConfirmed, domain.StatusConfirmed, nil},
		{"confirmado -> pendente", domain.StatusConfirmed, domain.StatusPending, ErrInvalidTransition},
		{"pendente -> cancelado", domain.StatusPending, domain.StatusCancelled, ErrInvalidTransition},
		{"cancelado -> pendente", domain.StatusCancelled, domain.StatusPending, ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTransition(tt.current, tt.next)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
