package create_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/m04kA/Lemo-AvailabilityService/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp    *createAppointment.Response
	err     error
	lastReq *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.lastReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(handler *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

const validBody = `{
	"customerName": "Νίκος",
	"phone": "+306912345678",
	"dateTime": "2026-09-01T10:00",
	"barber": "lemo"
}`

func TestHandle(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		useCase := &fakeUseCase{resp: &createAppointment.Response{ID: "apt-1"}}
		handler := NewHandler(useCase, nopLogger{})

		rec := doRequest(handler, validBody)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":"apt-1"`)

		require.NotNil(t, useCase.lastReq)
		assert.Equal(t, "2026-09-01", useCase.lastReq.Date.String())
		assert.Equal(t, "10:00", useCase.lastReq.StartTime.String())
	})

	t.Run("seconds in dateTime are accepted", func(t *testing.T) {
		useCase := &fakeUseCase{resp: &createAppointment.Response{ID: "apt-1"}}
		handler := NewHandler(useCase, nopLogger{})

		rec := doRequest(handler, `{"customerName":"n","phone":"p","dateTime":"2026-09-01T10:00:00"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "10:00", useCase.lastReq.StartTime.String())
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := NewHandler(&fakeUseCase{}, nopLogger{})
		rec := doRequest(handler, `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("bad dateTime", func(t *testing.T) {
		handler := NewHandler(&fakeUseCase{}, nopLogger{})
		rec := doRequest(handler, `{"customerName":"n","phone":"p","dateTime":"tomorrow at ten"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("use case errors map to statuses", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			want int
		}{
			{"invalid input", createAppointment.ErrInvalidInput, http.StatusBadRequest},
			{"date in past", createAppointment.ErrDateInPast, http.StatusBadRequest},
			{"closed", createAppointment.ErrClosed, http.StatusBadRequest},
			{"slot taken", createAppointment.ErrSlotNotAvailable, http.StatusConflict},
			{"internal", createAppointment.ErrInternal, http.StatusInternalServerError},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				handler := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})
				rec := doRequest(handler, validBody)
				assert.Equal(t, tt.want, rec.Code)
			})
		}
	})
}
