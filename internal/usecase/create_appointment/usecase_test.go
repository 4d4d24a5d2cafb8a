package create_appointment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Lemo-AvailabilityService/internal/availability"
	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	appointmentsService "github.com/m04kA/Lemo-AvailabilityService/internal/service/appointments"
	"github.com/m04kA/Lemo-AvailabilityService/pkg/ptr"
)

// 2026-09-01 - вторник, 2026-08-30 - воскресенье
var (
	tuesday = domain.CalendarDate{Year: 2026, Month: time.September, Day: 1}
	sunday  = domain.CalendarDate{Year: 2026, Month: time.August, Day: 30}
)

type fakeStore struct {
	records   []*domain.Appointment
	listErr   error
	createErr error
	created   []*domain.Appointment
}

func (f *fakeStore) ListRange(_ context.Context, _, _ domain.CalendarDate, _ string) ([]*domain.Appointment, error) {
	return f.records, f.listErr
}

func (f *fakeStore) Create(_ context.Context, a *domain.Appointment) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = append(f.created, a)
	return "apt-1", nil
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestEngine() *availability.Engine {
	return availability.NewEngine(availability.Params{
		Schedule:        domain.DefaultWeeklySchedule(),
		DurationMinutes: 40,
		StepMinutes:     20,
		LeadMinutes:     60,
		FullDayBreak:    true,
	})
}

func newTestUseCase(store *fakeStore) *UseCase {
	uc := NewUseCase(newTestEngine(), store, NopTransactionManager{}, nopLogger{})
	return uc.WithTimeProvider(fixedTime{now: time.Date(2026, time.August, 25, 10, 0, 0, 0, time.UTC)})
}

func validRequest() *Request {
	return &Request{
		CustomerName: "Никос",
		PhoneNumber:  "+306912345678",
		Email:        ptr.Ptr("nikos@example.com"),
		Date:         tuesday,
		StartTime:    "10:00",
		Resource:     "lemo",
	}
}

func TestExecute(t *testing.T) {
	t.Run("books a free slot", func(t *testing.T) {
		store := &fakeStore{}
		uc := newTestUseCase(store)

		resp, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "apt-1", resp.ID)

		require.Len(t, store.created, 1)
		created := store.created[0]
		assert.Equal(t, "lemo", created.Resource)
		assert.Equal(t, domain.StatusConfirmed, created.Status)
		assert.Equal(t, domain.KindAppointment, created.Kind)
		// Нулевая длительность запроса заменяется дефолтной движка
		assert.Equal(t, 40, created.DurationMinutes)
	})

	t.Run("rejects a taken slot", func(t *testing.T) {
		store := &fakeStore{records: []*domain.Appointment{
			{Date: tuesday, StartTime: "10:00", DurationMinutes: 40, Resource: "lemo",
				Status: domain.StatusConfirmed, Kind: domain.KindAppointment},
		}}
		uc := newTestUseCase(store)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Empty(t, store.created)
	})

	t.Run("long appointment keeps its tail free of other bookings", func(t *testing.T) {
		// Бронь 15:00-15:40: запись 14:20 на 80 минут занимает 14:20-15:40
		// и должна быть отклонена, хотя слот 14:20 в сетке свободен
		store := &fakeStore{records: []*domain.Appointment{
			{Date: tuesday, StartTime: "15:00", DurationMinutes: 40, Resource: "lemo",
				Status: domain.StatusConfirmed, Kind: domain.KindAppointment},
		}}
		uc := newTestUseCase(store)

		req := validRequest()
		req.StartTime = "14:20"
		req.DurationMinutes = 80

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Empty(t, store.created)
	})

	t.Run("long appointment books when the tail is free", func(t *testing.T) {
		store := &fakeStore{records: []*domain.Appointment{
			{Date: tuesday, StartTime: "16:00", DurationMinutes: 40, Resource: "lemo",
				Status: domain.StatusConfirmed, Kind: domain.KindAppointment},
		}}
		uc := newTestUseCase(store)

		req := validRequest()
		req.StartTime = "14:20"
		req.DurationMinutes = 80

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, store.created, 1)
		assert.Equal(t, 80, store.created[0].DurationMinutes)
	})

	t.Run("long appointment may not run into the break", func(t *testing.T) {
		// 12:20 на 80 минут пересекает перерыв 13:00-14:00
		req := validRequest()
		req.StartTime = "12:20"
		req.DurationMinutes = 80
		uc := newTestUseCase(&fakeStore{})

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("long appointment may not run past closing", func(t *testing.T) {
		// Суббота закрывается в 17:40: 16:40 на 80 минут выходит за закрытие
		req := validRequest()
		req.Date = domain.CalendarDate{Year: 2026, Month: time.September, Day: 5}
		req.StartTime = "16:40"
		req.DurationMinutes = 80
		uc := newTestUseCase(&fakeStore{})

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("rejects an off-grid time", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "10:05"
		uc := newTestUseCase(&fakeStore{})

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("rejects a time inside the break", func(t *testing.T) {
		req := validRequest()
		req.StartTime = "13:00"
		uc := newTestUseCase(&fakeStore{})

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("rejects a closed day", func(t *testing.T) {
		req := validRequest()
		req.Date = sunday
		uc := newTestUseCase(&fakeStore{})

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrClosed)
	})

	t.Run("rejects a past date", func(t *testing.T) {
		req := validRequest()
		req.Date = domain.CalendarDate{Year: 2026, Month: time.August, Day: 18}
		uc := newTestUseCase(&fakeStore{})

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrDateInPast)
	})

	t.Run("same day booking honors the cutoff", func(t *testing.T) {
		store := &fakeStore{}
		uc := NewUseCase(newTestEngine(), store, NopTransactionManager{}, nopLogger{}).
			WithTimeProvider(fixedTime{now: time.Date(2026, time.September, 1, 9, 30, 0, 0, time.UTC)})

		req := validRequest()
		req.StartTime = "10:00"

		// 10:00 раньше отсечки 10:30
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrSlotNotAvailable)

		req.StartTime = "10:40"
		_, err = uc.Execute(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("degraded source fails the write", func(t *testing.T) {
		store := &fakeStore{listErr: errors.New("backend down")}
		uc := newTestUseCase(store)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, store.created)
	})

	t.Run("store conflict maps to slot not available", func(t *testing.T) {
		store := &fakeStore{createErr: appointmentsService.ErrSlotConflict}
		uc := newTestUseCase(store)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable)
	})

	t.Run("native barber label is normalized", func(t *testing.T) {
		store := &fakeStore{}
		uc := newTestUseCase(store)

		req := validRequest()
		req.Resource = "ΛΕΜΟ"

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "lemo", store.created[0].Resource)
	})
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty name", func(r *Request) { r.CustomerName = "" }},
		{"name too long", func(r *Request) { r.CustomerName = strings.Repeat("x", domain.MaxCustomerNameLength+1) }},
		{"empty phone", func(r *Request) { r.PhoneNumber = "" }},
		{"phone too long", func(r *Request) { r.PhoneNumber = strings.Repeat("9", domain.MaxPhoneNumberLength+1) }},
		{"zero date", func(r *Request) { r.Date = domain.CalendarDate{} }},
		{"bogus time", func(r *Request) { r.StartTime = "25:99" }},
		{"duration too short", func(r *Request) { r.DurationMinutes = 1 }},
		{"duration too long", func(r *Request) { r.DurationMinutes = 600 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			uc := newTestUseCase(&fakeStore{})
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
