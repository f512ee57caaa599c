package bookingstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client клиент удалённого хранилища бронирований
// Все четыре операции выполняются над одним URL ресурса
type Client struct {
	resourceURL string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента хранилища
func NewClient(resourceURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		resourceURL: resourceURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// List получает бронирования, status = "" - без фильтра
func (c *Client) List(ctx context.Context, status string) ([]Booking, error) {
	target := c.resourceURL
	if status != "" {
		u, err := url.Parse(c.resourceURL)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid resource url: %v", ErrInternal, err)
		}
		q := u.Query()
		q.Set("status", status)
		u.RawQuery = q.Encode()
		target = u.String()
	}

	var resp listResponse
	if err := c.do(ctx, http.MethodGet, target, nil, &resp); err != nil {
		c.log.Warn("List: failed to load bookings status=%q: %v", status, err)
		return nil, err
	}

	if resp.Bookings == nil {
		resp.Bookings = []Booking{}
	}

	c.log.Info("List: loaded %d bookings status=%q", len(resp.Bookings), status)
	return resp.Bookings, nil
}

// Create создает бронирование
// Возвращает созданное бронирование, если хранилище его вернуло (иначе nil)
func (c *Client) Create(ctx context.Context, req *CreateBookingRequest) (*Booking, error) {
	var resp createResponse
	err := c.do(ctx, http.MethodPost, c.resourceURL, req, &resp)
	if errors.Is(err, ErrInvalidResponse) {
		// 2xx - уже успех, тело ответа не часть контракта
		c.log.Warn("Create: booking created for %s %s, response body ignored: %v", req.BookingDate, req.BookingTime, err)
		return nil, nil
	}
	if err != nil {
		c.log.Warn("Create: failed to create booking date=%s time=%s: %v", req.BookingDate, req.BookingTime, err)
		return nil, err
	}

	if resp.Booking != nil {
		c.log.Info("Create: booking id=%d created for %s %s", resp.Booking.ID, req.BookingDate, req.BookingTime)
	} else {
		c.log.Info("Create: booking created for %s %s", req.BookingDate, req.BookingTime)
	}
	return resp.Booking, nil
}

// Update заменяет статус и заметки бронирования
func (c *Client) Update(ctx context.Context, req *UpdateBookingRequest) error {
	if err := c.do(ctx, http.MethodPut, c.resourceURL, req, nil); err != nil {
		c.log.Warn("Update: failed to update booking id=%d: %v", req.ID, err)
		return err
	}

	c.log.Info("Update: booking id=%d status=%s", req.ID, req.Status)
	return nil
}

// Delete удаляет бронирование
func (c *Client) Delete(ctx context.Context, id int64) error {
	u, err := url.Parse(c.resourceURL)
	if err != nil {
		return fmt.Errorf("%w: invalid resource url: %v", ErrInternal, err)
	}
	q := u.Query()
	q.Set("id", strconv.FormatInt(id, 10))
	u.RawQuery = q.Encode()

	if err := c.do(ctx, http.MethodDelete, u.String(), nil, nil); err != nil {
		c.log.Warn("Delete: failed to delete booking id=%d: %v", id, err)
		return err
	}

	c.log.Info("Delete: booking id=%d deleted", id)
	return nil
}

// do выполняет запрос; любой код вне 2xx - ErrTransport независимо от тела
func (c *Client) do(ctx context.Context, method, target string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: unexpected status code %d: %s",
			ErrTransport, method, target, resp.StatusCode, readErrorMessage(resp.Body))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readErrorMessage достаёт сообщение из {"error": "..."} или сырое тело
func readErrorMessage(r io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(r, 4096))
	var payload ErrorResponse
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return string(raw)
}
