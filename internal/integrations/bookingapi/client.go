package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/booktable/reservation-service/internal/api/middleware"
	"github.com/booktable/reservation-service/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с API сервиса бронирований.
// Личность вызывающего (userID, role) передается в заголовках каждого запроса.
type Client struct {
	baseURL    string
	userID     int64
	role       string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса бронирований
func NewClient(baseURL string, userID int64, role string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		role:    role,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetBookings получает бронирования ресторана за период [startDate, endDate]
func (c *Client) GetBookings(ctx context.Context, restaurantID int64, startDate, endDate types.DateString) (*BookingList, error) {
	query := url.Values{}
	query.Set("restaurant_id", strconv.FormatInt(restaurantID, 10))
	query.Set("start_date", startDate.String())
	query.Set("end_date", endDate.String())
	query.Set("include_inactive", "true")

	requestURL := fmt.Sprintf("%s/api/v1/bookings?%s", c.baseURL, query.Encode())

	resp, err := c.doRequest(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid bookings query", ErrInvalidResponse)
	case http.StatusForbidden:
		return nil, ErrAccessDenied
	case http.StatusNotFound:
		return nil, ErrRestaurantNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var list BookingList
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode bookings: %v", ErrInvalidResponse, err)
	}

	return &list, nil
}

// GetAvailability получает доступные слоты ресторана на дату.
// Желаемое время и допуск опциональны: без них возвращаются все слоты дня.
func (c *Client) GetAvailability(ctx context.Context, restaurantID int64, date types.DateString, partySize int, requestedTime *types.TimeString, toleranceMinutes *int) (*Availability, error) {
	query := url.Values{}
	query.Set("restaurant_id", strconv.FormatInt(restaurantID, 10))
	query.Set("date", date.String())
	query.Set("party_size", strconv.Itoa(partySize))
	if requestedTime != nil {
		query.Set("time", requestedTime.String())
	}
	if toleranceMinutes != nil {
		query.Set("tolerance", strconv.Itoa(*toleranceMinutes))
	}

	requestURL := fmt.Sprintf("%s/api/v1/availability?%s", c.baseURL, query.Encode())

	resp, err := c.doRequest(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid availability query", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrRestaurantNotFound
	default:
		return nil, unexpectedStatus(resp)
	}

	var availability Availability
	if err := json.NewDecoder(resp.Body).Decode(&availability); err != nil {
		return nil, fmt.Errorf("%w: failed to decode availability: %v", ErrInvalidResponse, err)
	}

	return &availability, nil
}

// UpdateBookingStatus меняет статус бронирования.
// Ответ 409 означает, что переход отклонен или состояние изменилось
// конкурентно: вызывающий должен перечитать бронирование.
func (c *Client) UpdateBookingStatus(ctx context.Context, bookingID int64, status string) (*StatusUpdateResult, error) {
	body, err := json.Marshal(map[string]string{"status": status})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	requestURL := fmt.Sprintf("%s/api/v1/booking/%d", c.baseURL, bookingID)

	resp, err := c.doRequest(ctx, http.MethodPatch, requestURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidResponse, status)
	case http.StatusForbidden:
		return nil, ErrAccessDenied
	case http.StatusNotFound:
		return nil, ErrBookingNotFound
	case http.StatusConflict:
		return nil, ErrTransitionConflict
	default:
		return nil, unexpectedStatus(resp)
	}

	var result StatusUpdateResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode status update: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

func (c *Client) doRequest(ctx context.Context, method, requestURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, strconv.FormatInt(c.userID, 10))
	req.Header.Set(middleware.HeaderUserRole, c.role)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("BookingAPI request failed: %s %s: %v", method, requestURL, err)
		return nil, fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, requestURL, err)
	}

	return resp, nil
}

func unexpectedStatus(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
}
