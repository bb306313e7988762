package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avoropay/Agenda-SchedulingService/internal/domain"
	"github.com/avoropay/Agenda-SchedulingService/internal/integrations/catalogservice"
	"github.com/avoropay/Agenda-SchedulingService/pkg/ptr"
	"github.com/avoropay/Agenda-SchedulingService/pkg/types"
)

// Фейки для зависимостей use case

type fakeRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeRepo) GetByProfessionalAndDate(_ context.Context, _ int64, _ time.Time, _ *int64) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

type fakeCatalog struct {
	store        *catalogservice.Store
	service      *catalogservice.Service
	professional *catalogservice.Professional
}

func (f *fakeCatalog) GetStore(_ context.Context, _ int64) (*catalogservice.Store, error) {
	return f.store, nil
}

func (f *fakeCatalog) GetService(_ context.Context, _, _ int64) (*catalogservice.Service, error) {
	return f.service, nil
}

func (f *fakeCatalog) GetProfessional(_ context.Context, _, _ int64) (*catalogservice.Professional, error) {
	return f.professional, nil
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
	testNow  = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	testDate = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
)

func openDay(open, close string) catalogservice.DaySchedule {
	return catalogservice.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr(open),
		CloseTime: ptr.Ptr(close),
	}
}

func testStore() *catalogservice.Store {
	day := openDay("09:00", "12:00")
	return &catalogservice.Store{
		ID:   10,
		Name: "Studio Bela Vista",
		WorkingHours: catalogservice.WeekSchedule{
			Monday: day, Tuesday: day, Wednesday: day, Thursday: day,
			Friday: day, Saturday: day, Sunday: day,
		},
	}
}

func newTestUseCase(repo *fakeRepo, catalog *fakeCatalog, now time.Time) *UseCase {
	uc := NewUseCase(repo, catalog, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func slotTimes(slots []Slot) []types.TimeString {
	result := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.StartTime)
	}
	return result
}

func TestGenerateTimeSlots(t *testing.T) {
	tests := []struct {
		name         string
		workingHours catalogservice.DaySchedule
		slotDuration int
		date         time.Time
		now          time.Time
		expected     []types.TimeString
	}{
		{
			name:         "слоты с шагом в час",
			workingHours: openDay("09:00", "12:00"),
			slotDuration: 60,
			date:         testDate,
			now:          testNow,
			expected:     []types.TimeString{"09:00", "10:00", "11:00"},
		},
		{
			name:         "последний слот целиком укладывается до закрытия",
			workingHours: openDay("09:00", "10:30"),
			slotDuration: 60,
			date:         testDate,
			now:          testNow,
			expected:     []types.TimeString{"09:00"},
		},
		{
			name:         "шаг 30 минут",
			workingHours: openDay("10:00", "11:30"),
			slotDuration: 30,
			date:         testDate,
			now:          testNow,
			expected:     []types.TimeString{"10:00", "10:30", "11:00"},
		},
		{
			name:         "магазин закрыт",
			workingHours: catalogservice.DaySchedule{IsOpen: false},
			slotDuration: 60,
			date:         testDate,
			now:          testNow,
			expected:     []types.TimeString{},
		},
		{
			name:         "сегодня отбрасываются прошедшие слоты",
			workingHours: openDay("09:00", "18:00"),
			slotDuration: 60,
			date:         testNow,
			now:          testNow, // 12:00
			expected:     []types.TimeString{"12:00", "13:00", "14:00", "15:00", "16:00", "17:00"},
		},
		{
			name:         "дата в прошлом",
			workingHours: openDay("09:00", "18:00"),
			slotDuration: 60,
			date:         testNow.AddDate(0, 0, -1),
			now:          testNow,
			expected:     []types.TimeString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := generateTimeSlots(tt.workingHours, tt.slotDuration, tt.date, tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, slots)
		})
	}
}

func TestFilterAvailableSlots_UnavailabilityWindow(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00", "11:00"}
	windows := []catalogservice.UnavailabilityWindow{
		{Start: "2026-03-16T10:00:00Z", End: "2026-03-16T11:00:00Z"},
	}

	result := filterAvailableSlots(slots, 60, testDate, windows, nil)
	// Окно [10:00, 11:00) блокирует только слот 10:00, границы не пересекаются
	assert.Equal(t, []types.TimeString{"09:00", "11:00"}, slotTimes(result))
}

func TestFilterAvailableSlots_MalformedWindowIsSkipped(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00"}
	windows := []catalogservice.UnavailabilityWindow{
		{Start: "not-a-timestamp", End: "2026-03-16T11:00:00Z"},
	}

	result := filterAvailableSlots(slots, 60, testDate, windows, nil)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, slotTimes(result))
}

func TestFilterAvailableSlots_LegacyWindowFormat(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00"}
	windows := []catalogservice.UnavailabilityWindow{
		{Start: "2026-03-16T09:00", End: "2026-03-16T10:00"},
	}

	result := filterAvailableSlots(slots, 60, testDate, windows, nil)
	assert.Equal(t, []types.TimeString{"10:00"}, slotTimes(result))
}

func TestFilterAvailableSlots_ActiveAppointmentBlocks(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00", "11:00"}
	appointments := []*domain.Appointment{
		{
			ID: 1, Date: testDate, StartTime: "09:30",
			DurationMinutes: 60, Status: domain.StatusConfirmed,
		},
	}

	// Запись 09:30-10:30 пересекается со слотами 09:00 и 10:00
	result := filterAvailableSlots(slots, 60, testDate, nil, appointments)
	assert.Equal(t, []types.TimeString{"11:00"}, slotTimes(result))
}

func TestFilterAvailableSlots_CancelledAppointmentDoesNotBlock(t *testing.T) {
	slots := []types.TimeString{"09:00", "10:00"}
	appointments := []*domain.Appointment{
		{
			ID: 1, Date: testDate, StartTime: "09:00",
			DurationMinutes: 60, Status: domain.StatusCancelled,
		},
	}

	result := filterAvailableSlots(slots, 60, testDate, nil, appointments)
	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, slotTimes(result))
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{
		appointments: []*domain.Appointment{
			{
				ID: 1, Date: testDate, StartTime: "10:00",
				DurationMinutes: 60, Status: domain.StatusPending,
			},
		},
	}
	catalog := &fakeCatalog{
		store:        testStore(), // 09:00-12:00
		service:      &catalogservice.Service{ID: 20, DurationMinutes: 60},
		professional: &catalogservice.Professional{ID: 30},
	}
	uc := newTestUseCase(repo, catalog, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 1, StoreID: 10, ProfessionalID: 30, ServiceID: 20, Date: testDate,
	})
	require.NoError(t, err)

	assert.Equal(t, []types.TimeString{"09:00", "11:00"}, slotTimes(resp.Slots))
	assert.Equal(t, 60, resp.Slots[0].DurationMinutes)
}

func TestExecute_DefaultDurationWhenServiceHasNone(t *testing.T) {
	repo := &fakeRepo{}
	catalog := &fakeCatalog{
		store:        testStore(), // 09:00-12:00
		service:      &catalogservice.Service{ID: 20, DurationMinutes: 0},
		professional: &catalogservice.Professional{ID: 30},
	}
	uc := newTestUseCase(repo, catalog, testNow)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 1, StoreID: 10, ProfessionalID: 30, ServiceID: 20, Date: testDate,
	})
	require.NoError(t, err)

	// Дефолтная длительность 60 минут
	assert.Equal(t, []types.TimeString{"09:00", "10:00", "11:00"}, slotTimes(resp.Slots))
	assert.Equal(t, domain.DefaultServiceDurationMinutes, resp.Slots[0].DurationMinutes)
}

func TestExecute_StoreClosed(t *testing.T) {
	store := testStore()
	store.WorkingHours.Monday = catalogservice.DaySchedule{IsOpen: false}

	repo := &fakeRepo{}
	catalog := &fakeCatalog{
		store:        store,
		service:      &catalogservice.Service{ID: 20, DurationMinutes: 60},
		professional: &catalogservice.Professional{ID: 30},
	}
	uc := newTestUseCase(repo, catalog, testNow)

	// 2026-03-16 - понедельник
	resp, err := uc.Execute(context.Background(), &Request{
		UserID: 1, StoreID: 10, ProfessionalID: 30, ServiceID: 20, Date: testDate,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_PastDate(t *testing.T) {
	repo := &fakeRepo{}
	catalog := &fakeCatalog{
		store:        testStore(),
		service:      &catalogservice.Service{ID: 20, DurationMinutes: 60},
		professional: &catalogservice.Professional{ID: 30},
	}
	uc := newTestUseCase(repo, catalog, testNow)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 1, StoreID: 10, ProfessionalID: 30, ServiceID: 20, Date: testNow.AddDate(0, 0, -1),
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeCatalog{}, testNow)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 1, StoreID: 0, ProfessionalID: 30, ServiceID: 20, Date: testDate,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
