package pmsapi

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

const targetName = "pms_api"

// Client клиент REST API системы управления объектами размещения
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента
// metrics может быть nil
func NewClient(baseURL, token string, timeout time.Duration, metrics MetricsRecorder, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// envelope ответ API вида {"data": ...}
type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
}

// get выполняет GET и декодирует поле data в out
func (c *Client) get(ctx context.Context, operation, path string, out interface{}) error {
	return c.do(ctx, operation, http.MethodGet, path, nil, out)
}

// do выполняет запрос к API
// body сериализуется в JSON, поле data ответа декодируется в out (если out != nil)
func (c *Client) do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, 0, start)
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()
	c.observe(operation, resp.StatusCode, start)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return newAPIError(ErrNotFound, resp.StatusCode, respBody)
	case resp.StatusCode == http.StatusForbidden:
		return newAPIError(ErrForbidden, resp.StatusCode, respBody)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return newAPIError(ErrRejected, resp.StatusCode, respBody)
	default:
		c.log.Error("%s %s: unexpected status code %d: %s", method, path, resp.StatusCode, string(respBody))
		return newAPIError(ErrInvalidResponse, resp.StatusCode, respBody)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("%w: response has no data", ErrInvalidResponse)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode data: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) observe(operation string, status int, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveExternalRequest(targetName, operation, status, time.Since(start))
}

func newAPIError(kind error, status int, body []byte) *APIError {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	return &APIError{StatusCode: status, Message: eb.Message, Kind: kind}
}
