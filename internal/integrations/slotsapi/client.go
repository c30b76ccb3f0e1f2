package slotsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client HTTP клиент для API расписания кортов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetSlots возвращает слоты на дату расписания (пустой список, если их нет)
func (c *Client) GetSlots(ctx context.Context, scheduleID, date string) ([]Slot, error) {
	var out getSlotsResponse
	err := c.post(ctx, "/getslots", getSlotsRequest{ScheduleID: scheduleID, Date: date}, http.StatusOK, &out)
	if err != nil {
		return nil, err
	}
	if out.Slots == nil {
		out.Slots = []Slot{}
	}
	return out.Slots, nil
}

// BookSlot бронирует корт на час и возвращает сохраненную запись
func (c *Client) BookSlot(ctx context.Context, req BookSlotRequest) (*Slot, error) {
	var out bookSlotResponse
	if err := c.post(ctx, "/bookslot", req, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	if out.Slot == nil {
		return nil, fmt.Errorf("%w: response without slot", ErrInvalidResponse)
	}
	return out.Slot, nil
}

func (c *Client) post(ctx context.Context, path string, body interface{}, wantStatus int, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return c.statusError(path, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) statusError(path string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	message := strings.TrimSpace(string(raw))
	var body errorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		message = body.Message
		if body.Error != "" {
			message += ": " + body.Error
		}
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrScheduleNotFound, message)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrSlotTaken, message)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	default:
		c.log.Error("POST %s - unexpected status %d: %s", path, resp.StatusCode, message)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, message)
	}
}
