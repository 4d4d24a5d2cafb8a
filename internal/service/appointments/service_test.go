package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
	storageErrors "github.com/m04kA/Lemo-AvailabilityService/internal/infra/storage/appointment"
	backendClient "github.com/m04kA/Lemo-AvailabilityService/internal/integrations/bookingbackend"
)

var tuesday = domain.CalendarDate{Year: 2026, Month: time.September, Day: 1}

type fakeRepo struct {
	records   []*domain.Appointment
	createErr error
	getErr    error
}

func (f *fakeRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a.ID = "local-1"
	return a, nil
}

func (f *fakeRepo) GetByID(_ context.Context, _ string) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.records[0], nil
}

func (f *fakeRepo) ListRange(_ context.Context, _ domain.RangeFilter) ([]*domain.Appointment, error) {
	return f.records, nil
}

type fakeBackend struct {
	records   []*domain.Appointment
	listErr   error
	summary   backendClient.MonthSummaryResponse
	createID  string
	createErr error
	lastReq   *backendClient.CreateAppointmentRequest
}

func (f *fakeBackend) ListRangeWithGracefulDegradation(_ context.Context, _, _ domain.CalendarDate, _ string) ([]*domain.Appointment, error) {
	return f.records, f.listErr
}

func (f *fakeBackend) GetByID(_ context.Context, _ string) (*domain.Appointment, error) {
	return nil, backendClient.ErrAppointmentNotFound
}

func (f *fakeBackend) MonthSummary(_ context.Context, _, _ domain.CalendarDate, _ string) (backendClient.MonthSummaryResponse, error) {
	return f.summary, nil
}

func (f *fakeBackend) Create(_ context.Context, req *backendClient.CreateAppointmentRequest) (string, error) {
	f.lastReq = req
	return f.createID, f.createErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validAppointment() *domain.Appointment {
	return &domain.Appointment{
		CustomerName:    "Νίκος",
		PhoneNumber:     "+3069",
		Date:            tuesday,
		StartTime:       "10:00",
		DurationMinutes: 40,
		Resource:        "ΛΕΜΟ",
	}
}

func TestListRangeFiltersInactive(t *testing.T) {
	repo := &fakeRepo{records: []*domain.Appointment{
		{ID: "a1", Date: tuesday, StartTime: "10:00", Status: domain.StatusConfirmed, Kind: domain.KindAppointment},
		{ID: "a2", Date: tuesday, StartTime: "11:00", Status: domain.StatusCancelled, Kind: domain.KindAppointment},
		{ID: "a3", Date: tuesday, StartTime: "12:00", Status: domain.StatusNoShow, Kind: domain.KindAppointment},
	}}
	svc := NewService(repo, nil, nopLogger{})

	records, err := svc.ListRange(context.Background(), tuesday, tuesday, "")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a1", records[0].ID)
}

func TestListRangeBackendMode(t *testing.T) {
	t.Run("serves active backend records", func(t *testing.T) {
		backend := &fakeBackend{records: []*domain.Appointment{
			{ID: "b1", Date: tuesday, StartTime: "10:00", Status: domain.StatusConfirmed, Kind: domain.KindAppointment},
			{ID: "b2", Date: tuesday, StartTime: "11:00", Status: domain.StatusCancelled, Kind: domain.KindAppointment},
		}}
		svc := NewService(nil, backend, nopLogger{})

		records, err := svc.ListRange(context.Background(), tuesday, tuesday, "")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "b1", records[0].ID)
	})

	t.Run("backend degradation surfaces as an error", func(t *testing.T) {
		backend := &fakeBackend{listErr: backendClient.ErrServiceDegraded}
		svc := NewService(nil, backend, nopLogger{})

		_, err := svc.ListRange(context.Background(), tuesday, tuesday, "")
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestMonthSummary(t *testing.T) {
	t.Run("standalone has no bulk endpoint", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nil, nopLogger{})
		assert.True(t, svc.Standalone())

		_, err := svc.MonthSummary(context.Background(), tuesday, tuesday, "")
		assert.ErrorIs(t, err, ErrBulkUnavailable)
	})

	t.Run("backend serves bulk counts", func(t *testing.T) {
		backend := &fakeBackend{summary: backendClient.MonthSummaryResponse{"2026-09-01": 5}}
		svc := NewService(nil, backend, nopLogger{})
		assert.False(t, svc.Standalone())

		summary, err := svc.MonthSummary(context.Background(), tuesday, tuesday, "")
		require.NoError(t, err)
		assert.Equal(t, 5, summary["2026-09-01"])
	})
}

func TestCreateBackendMode(t *testing.T) {
	t.Run("builds the backend request", func(t *testing.T) {
		backend := &fakeBackend{createID: "apt-9"}
		svc := NewService(nil, backend, nopLogger{})

		id, err := svc.Create(context.Background(), validAppointment())
		require.NoError(t, err)
		assert.Equal(t, "apt-9", id)

		require.NotNil(t, backend.lastReq)
		assert.Equal(t, "2026-09-01T10:00:00", backend.lastReq.AppointmentDateTime)
		// Барбер уходит в backend родной меткой
		assert.Equal(t, "ΛΕΜΟ", backend.lastReq.Barber)
	})

	t.Run("conflict propagates", func(t *testing.T) {
		backend := &fakeBackend{createErr: backendClient.ErrSlotConflict}
		svc := NewService(nil, backend, nopLogger{})

		_, err := svc.Create(context.Background(), validAppointment())
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("other backend failures are internal", func(t *testing.T) {
		backend := &fakeBackend{createErr: errors.New("boom")}
		svc := NewService(nil, backend, nopLogger{})

		_, err := svc.Create(context.Background(), validAppointment())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestCreateStandaloneMode(t *testing.T) {
	t.Run("stores locally", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nil, nopLogger{})

		id, err := svc.Create(context.Background(), validAppointment())
		require.NoError(t, err)
		assert.Equal(t, "local-1", id)
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		svc := NewService(&fakeRepo{createErr: storageErrors.ErrSlotConflict}, nil, nopLogger{})

		_, err := svc.Create(context.Background(), validAppointment())
		assert.ErrorIs(t, err, ErrSlotConflict)
	})
}

func TestGetByID(t *testing.T) {
	t.Run("backend not found maps to service error", func(t *testing.T) {
		svc := NewService(nil, &fakeBackend{}, nopLogger{})

		_, err := svc.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})

	t.Run("repository not found maps to service error", func(t *testing.T) {
		svc := NewService(&fakeRepo{getErr: storageErrors.ErrAppointmentNotFound}, nil, nopLogger{})

		_, err := svc.GetByID(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}
