package bookingbackend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/Lemo-AvailabilityService/internal/domain"
)

// Client клиент booking backend - внешнего сервиса хранения записей.
// Движок доступности не владеет хранилищем: существующие бронирования
// и перерывы приходят отсюда.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента booking backend
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Configured возвращает true, если URL backend задан
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// ListRange получает записи (бронирования и перерывы) за диапазон дат
// включительно, опционально отфильтрованные по барберу.
// Записи с непригодной датой-временем пропускаются.
func (c *Client) ListRange(ctx context.Context, from, to domain.CalendarDate, resource string) ([]*domain.Appointment, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	query := url.Values{}
	query.Set("from", from.String())
	query.Set("to", to.String())
	if resource != "" {
		// Backend знает барберов по родным меткам
		query.Set("barber", domain.ResourceLabel(resource))
	}

	endpoint := fmt.Sprintf("%s/api/appointments/range?%s", c.baseURL, query.Encode())

	records, err := c.fetchList(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	appointments := make([]*domain.Appointment, 0, len(records))
	for _, record := range records {
		appointment, ok := record.ToDomain()
		if !ok {
			c.log.Warn("ListRange: skipping record id=%s with unparsable datetime %q",
				record.ID, record.AppointmentDateTime)
			continue
		}
		// Диапазон и ресурс перепроверяем локально: backend наблюдался
		// возвращающим лишние записи на границах
		if appointment.Date.Before(from) || appointment.Date.After(to) {
			continue
		}
		if !domain.SameResource(appointment.Resource, resource) {
			continue
		}
		appointments = append(appointments, appointment)
	}

	return appointments, nil
}

// ListRangeWithGracefulDegradation получает записи за диапазон дат с graceful
// degradation: при недоступности backend возвращает ErrServiceDegraded,
// позволяя вызывающему посчитать доступность без известных бронирований
func (c *Client) ListRangeWithGracefulDegradation(ctx context.Context, from, to domain.CalendarDate, resource string) ([]*domain.Appointment, error) {
	appointments, err := c.ListRange(ctx, from, to, resource)
	if err != nil {
		c.log.Error("Booking backend unavailable, applying graceful degradation for range %s..%s: %v",
			from, to, err)
		return nil, fmt.Errorf("%w: range %s..%s: %v", ErrServiceDegraded, from, to, err)
	}
	return appointments, nil
}

// GetByID получает одну запись по идентификатору
func (c *Client) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	endpoint := fmt.Sprintf("%s/api/appointments/%s", c.baseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAppointmentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var record AppointmentRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	appointment, ok := record.ToDomain()
	if !ok {
		return nil, fmt.Errorf("%w: record id=%s has unparsable datetime %q",
			ErrInvalidResponse, record.ID, record.AppointmentDateTime)
	}

	return appointment, nil
}

// MonthSummary получает у backend готовые счётчики свободных слотов по датам
// диапазона (bulk-эндпоинт). Один round trip вместо пересчёта по дням.
func (c *Client) MonthSummary(ctx context.Context, from, to domain.CalendarDate, resource string) (MonthSummaryResponse, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	query := url.Values{}
	query.Set("from", from.String())
	query.Set("to", to.String())
	if resource != "" {
		query.Set("barber", domain.ResourceLabel(resource))
	}

	endpoint := fmt.Sprintf("%s/api/availability/month?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var summary MonthSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&summary); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return summary, nil
}

// Create создает бронирование в booking backend.
// В отличие от путей чтения ошибки здесь НЕ глушатся: отказ backend
// должен дойти до пользователя, молчаливо "успешная" бронь недопустима.
func (c *Client) Create(ctx context.Context, req *CreateAppointmentRequest) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/api/appointments", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusConflict:
		return "", ErrSlotConflict
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: %s", ErrRejected, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var created CreateAppointmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return created.ID, nil
}

func (c *Client) fetchList(ctx context.Context, endpoint string) ([]AppointmentRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// Backend возвращает либо массив, либо объект {appointments: []}
	var records []AppointmentRecord
	if err := json.Unmarshal(body, &records); err == nil {
		return records, nil
	}

	var wrapped listResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return wrapped.Appointments, nil
}
