package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	apptRepo "github.com/avoropay/Agenda-SchedulingService/internal/infra/storage/appointment"
	"github.com/avoropay/Agenda-SchedulingService/internal/integrations/catalogservice"
	"github.com/avoropay/Agenda-SchedulingService/pkg/ptr"
	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// Фейки для зависимостей use case

type fakeRepo struct {
	appointment  *domain.Appointment
	getErr       error
	onDate       []*domain.Appointment
	excludedID   *int64
	updateErr    error
	updatedDate  time.Time
	updatedTime  types.TimeString
	updateCalled bool
}

func (f *fakeRepo) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.appointment, nil
}

func (f *fakeRepo) GetByProfessionalAndDate(_ context.Context, _ int64, _ time.Time, excludeID *int64) ([]*domain.Appointment, error) {
	f.excludedID = excludeID
	return f.onDate, nil
}

func (f *fakeRepo) UpdateSchedule(_ context.Context, _ int64, date time.Time, startTime types.TimeString, _ int) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updateCalled = true
	f.updatedDate = date
	f.updatedTime = startTime
	return nil
}

type fakeCatalog struct {
	store        *catalogservice.Store
	professional *catalogservice.Professional
}

func (f *fakeCatalog) GetStore(_ context.Context, _ int64) (*catalogservice.Store, error) {
	return f.store, nil
}

func (f *fakeCatalog) GetProfessional(_ context.Context, _, _ int64) (*catalogservice.Professional, error) {
	return f.professional, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	oldDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	newDate = time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC)
)

func testStore() *catalogservice.Store {
	day := catalogservice.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("09:00"),
		CloseTime: ptr.Ptr("19:00"),
	}
	return &catalogservice.Store{
		ID:         10,
		Name:       "Studio Bela Vista",
		ManagerIDs: []int64{500},
		WorkingHours: catalogservice.WeekSchedule{
			Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
			Friday: day, Saturday: day, Sunday: day,
		},
	}
}

func testAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              42,
		ClientID:        1,
		StoreID:         10,
		ProfessionalID:  30,
		ServiceID:       20,
		Date:            oldDate,
		StartTime:       "10:00",
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
		ServiceName:     "Corte de cabelo",
	}
}

func testRequest() *Request {
	return &Request{
		AppointmentID: 42,
		UserID:        1,
		Date:          newDate,
		StartTime:     "14:00",
	}
}

func newTestUseCase(repo *fakeRepo, catalog *fakeCatalog) *UseCase {
	uc := NewUseCase(repo, catalog, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestReschedule_Success(t *testing.T) {
	repo := &fakeRepo{appointment: testAppointment()}
	catalog := &fakeCatalog{store: testStore(), professional: &catalogservice.Professional{ID: 30, Name: "Ana Souza"}}
	uc := newTestUseCase(repo, catalog)

	resp, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	assert.True(t, repo.updateCalled)
	assert.Equal(t, newDate, resp.Date)
	assert.Equal(t, types.TimeString("14:00"), resp.StartTime)
	// Длительность сохраняется из исходной записи
	assert.Equal(t, 30, resp.DurationMinutes)
}

func TestReschedule_ExcludesOwnAppointmentFromConflictCheck(t *testing.T) {
	repo := &fakeRepo{appointment: testAppointment()}
	catalog := &fakeCatalog{store: testStore(), professional: &catalogservice.Professional{ID: 30}}
	uc := newTestUseCase(repo, catalog)

	_, err := uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	require.NotNil(t, repo.excludedID)
	assert.Equal(t, int64(42), *repo.excludedID)
}

func TestReschedule_OverlapWithOwnOldSlotIsAllowed(t *testing.T) {
	// Перенос 10:00 -> 10:15 в тот же день: собственная запись
	// исключена из выборки, конфликта нет
	repo := &fakeRepo{appointment: testAppointment(), onDate: nil}
	catalog := &fakeCatalog{store: testStore(), professional: &catalogservice.Professional{ID: 30}}
	uc := newTestUseCase(repo, catalog)

	req := &Request{AppointmentID: 42, UserID: 1, Date: oldDate, StartTime: "10:15"}
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestReschedule_ConflictWithOtherAppointment(t *testing.T) {
	other := &domain.Appointment{
		ID:              77,
		ProfessionalID:  30,
		Date:            newDate,
		StartTime:       "13:45",
		DurationMinutes: 30,
		Status:          domain.StatusPending,
	}
	repo := &fakeRepo{appointment: testAppointment(), onDate: []*domain.Appointment{other}}
	catalog := &fakeCatalog{store: testStore(), professional: &catalogservice.Professional{ID: 30}}
	uc := newTestUseCase(repo, catalog)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.False(t, repo.updateCalled)
}

func TestReschedule_CancelledAppointment(t *testing.T) {
	appt := testAppointment()
	appt.Status = domain.StatusCancelled

	repo := &fakeRepo{appointment: appt}
	catalog := &fakeCatalog{store: testStore(), professional: &catalogservice.Professional{ID: 30}}
	uc := newTestUseCase(repo, catalog)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestReschedule_AccessDenied(t *testing.T) {
	repo := &fakeRepo{appointment: testAppointment()}
	catalog := &fakeCatalog{store: testStore(), professional: &catalogservice.Professional{ID: 30}}
	uc := newTestUseCase(repo, catalog)

	req := testRequest()
	req.UserID = 777 // не владелец и не менеджер
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestReschedule_ManagerCanReschedule(t *testing.T) {
	repo := &fakeRepo{appointment: testAppointment()}
	catalog := &fakeCatalog{store: testStore(), professional: &catalogservice.Professional{ID: 30}}
	uc := newTestUseCase(repo, catalog)

	req := testRequest()
	req.UserID = 500 // менеджер магазина
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestReschedule_UnavailabilityWindowBlocks(t *testing.T) {
	repo := &fakeRepo{appointment: testAppointment()}
	catalog := &fakeCatalog{
		store: testStore(),
		professional: &catalogservice.Professional{
			ID: 30,
			UnavailabilityWindows: []catalogservice.UnavailabilityWindow{
				{Start: "2026-03-17T13:00:00Z", End: "2026-03-17T15:00:00Z"},
			},
		},
	}
	uc := newTestUseCase(repo, catalog)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrProfessionalUnavailable)
}

func TestReschedule_NotFound(t *testing.T) {
	repo := &fakeRepo{getErr: apptRepo.ErrAppointmentNotFound}
	catalog := &fakeCatalog{store: testStore(), professional: &catalogservice.Professional{ID: 30}}
	uc := newTestUseCase(repo, catalog)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestReschedule_ConcurrentUpdateLosesRace(t *testing.T) {
	repo := &fakeRepo{appointment: testAppointment(), updateErr: apptRepo.ErrSlotTaken}
	catalog := &fakeCatalog{store: testStore(), professional: &catalogservice.Professional{ID: 30}}
	uc := newTestUseCase(repo, catalog)

	_, err := uc.Execute(context.Background(), testRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestReschedule_PastDate(t *testing.T) {
	repo := &fakeRepo{appointment: testAppointment()}
	catalog := &fakeCatalog{store: testStore(), professional: &catalogservice.Professional{ID: 30}}
	uc := newTestUseCase(repo, catalog)

	req := testRequest()
	req.Date = testNow.AddDate(0, 0, -1)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)
}
