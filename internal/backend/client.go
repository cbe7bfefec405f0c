package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"vehicle-auctions/utils"
)

const (
	RequestIDHeader   = utils.RequestIDHeader
	defaultTimeout    = 30 * time.Second
	maxErrorBodyBytes = 64 << 10
)

// StatusError is a non-2xx response. Body is the response body as sent.
type StatusError struct {
	Method     string
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend: %s %s returned status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Body)
}

// TransportError is a failure before any response was received
type TransportError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend: %s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// BaseClient issues JSON requests against the marketplace backend
type BaseClient struct {
	baseURL string
	client  *http.Client
	headers map[string]string
}

func NewBaseClient(baseURL string, timeout time.Duration) *BaseClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &BaseClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

func (c *BaseClient) SetHeader(key, value string) {
	c.headers[key] = value
}

// MakeRequest sends one request. A non-empty token is sent as a bearer
// credential. It returns the response body on 2xx, *StatusError otherwise.
func (c *BaseClient) MakeRequest(ctx context.Context, method, endpoint, token string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("backend: failed to encode %s %s payload: %w", method, endpoint, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("backend: failed to create request: %w", err)
	}

	for key, value := range c.headers {
		req.Header.Set(key, value)
	}
	requestID := utils.RequestID(ctx)
	req.Header.Set(RequestIDHeader, requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		utils.Warn("backend: request failed", map[string]any{
			"method":     method,
			"endpoint":   endpoint,
			"request_id": requestID,
			"error":      err.Error(),
		})
		return nil, &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	utils.Debug("backend: response received", map[string]any{
		"method":     method,
		"endpoint":   endpoint,
		"request_id": requestID,
		"status":     resp.StatusCode,
		"latency":    time.Since(start).String(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		responseBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		if resp.StatusCode >= http.StatusInternalServerError {
			utils.Error("backend: server error", map[string]any{
				"method":     method,
				"endpoint":   endpoint,
				"request_id": requestID,
				"status":     resp.StatusCode,
			})
		}
		return nil, &StatusError{
			Method:     method,
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(responseBody),
		}
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Endpoint: endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	return responseBody, nil
}

func (c *BaseClient) Get(ctx context.Context, endpoint, token string) ([]byte, error) {
	return c.MakeRequest(ctx, http.MethodGet, endpoint, token, nil)
}

func (c *BaseClient) Post(ctx context.Context, endpoint, token string, payload any) ([]byte, error) {
	return c.MakeRequest(ctx, http.MethodPost, endpoint, token, payload)
}
