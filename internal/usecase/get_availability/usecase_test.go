package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Lemo-AvailabilityService/internal/availability"
	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

// 2026-09-01 - вторник
var tuesday = domain.CalendarDate{Year: 2026, Month: time.September, Day: 1}

type fakeSource struct {
	records []*domain.Appointment
	err     error
	calls   int
}

func (f *fakeSource) ListRange(_ context.Context, _, _ domain.CalendarDate, _ string) ([]*domain.Appointment, error) {
	f.calls++
	return f.records, f.err
}

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	payload, ok := f.entries[key]
	return payload, ok
}

func (f *fakeCache) Set(_ context.Context, key string, payload []byte, _ time.Duration) error {
	f.entries[key] = payload
	return nil
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

func newTestUseCase(source *fakeSource, resultCache ResultCache) *UseCase {
	uc := NewUseCase(newTestEngine(), source, resultCache, time.Minute, nil, nopLogger{})
	return uc.WithTimeProvider(fixedTime{now: time.Date(2026, time.August, 25, 10, 0, 0, 0, time.UTC)})
}

func TestExecute(t *testing.T) {
	t.Run("computes free slots and caches the result", func(t *testing.T) {
		source := &fakeSource{records: []*domain.Appointment{
			{Date: tuesday, StartTime: "10:00", DurationMinutes: 40, Resource: "lemo",
				Status: domain.StatusConfirmed, Kind: domain.KindAppointment},
		}}
		resultCache := newFakeCache()
		uc := newTestUseCase(source, resultCache)

		resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, Resource: "lemo"})
		require.NoError(t, err)

		assert.Equal(t, "2026-09-01", resp.DateStr)
		assert.False(t, resp.Degraded)
		assert.NotContains(t, resp.Slots, "10:00")
		assert.Contains(t, resp.Slots, "10:40")
		assert.Len(t, resultCache.entries, 1)
	})

	t.Run("cache hit skips the source", func(t *testing.T) {
		source := &fakeSource{}
		resultCache := newFakeCache()
		uc := newTestUseCase(source, resultCache)

		first, err := uc.Execute(context.Background(), &Request{Date: tuesday})
		require.NoError(t, err)

		second, err := uc.Execute(context.Background(), &Request{Date: tuesday})
		require.NoError(t, err)

		assert.Equal(t, first.Slots, second.Slots)
		assert.Equal(t, 1, source.calls)
	})

	t.Run("source failure degrades to empty bookings", func(t *testing.T) {
		source := &fakeSource{err: errors.New("backend down")}
		uc := newTestUseCase(source, newFakeCache())

		resp, err := uc.Execute(context.Background(), &Request{Date: tuesday})
		require.NoError(t, err, "read path must not propagate source errors")

		assert.True(t, resp.Degraded)
		// Без известных бронирований доступна вся сетка
		assert.Contains(t, resp.Slots, "09:00")
		assert.Contains(t, resp.Slots, "18:20")
	})

	t.Run("native barber label is normalized", func(t *testing.T) {
		uc := newTestUseCase(&fakeSource{}, newFakeCache())

		resp, err := uc.Execute(context.Background(), &Request{Date: tuesday, Resource: "ΛΕΜΟ"})
		require.NoError(t, err)
		assert.Equal(t, "lemo", resp.Resource)
	})

	t.Run("zero date is invalid", func(t *testing.T) {
		uc := newTestUseCase(&fakeSource{}, newFakeCache())

		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("closed sunday yields no slots", func(t *testing.T) {
		uc := newTestUseCase(&fakeSource{}, newFakeCache())
		sunday := domain.CalendarDate{Year: 2026, Month: time.August, Day: 30}

		resp, err := uc.Execute(context.Background(), &Request{Date: sunday})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("same day cutoff drops near slots", func(t *testing.T) {
		uc := NewUseCase(newTestEngine(), &fakeSource{}, newFakeCache(), time.Minute, nil, nopLogger{}).
			WithTimeProvider(fixedTime{now: time.Date(2026, time.September, 1, 11, 5, 0, 0, time.UTC)})

		resp, err := uc.Execute(context.Background(), &Request{Date: tuesday})
		require.NoError(t, err)

		require.NotEmpty(t, resp.Slots)
		// Отсечка 12:05 - первый слот сетки не раньше неё
		assert.Equal(t, "12:20", resp.Slots[0])
	})
}
