package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"caca_precos/internal/adapter/http/dto/request"
	"caca_precos/internal/adapter/http/dto/response"

	"github.com/google/uuid"
)

const (
	defaultTimeout  = 10 * time.Second
	maxErrorBodyLen = 500
	requestIDHeader = "x-request-id"
)

// ErrTimeout marks a request that exceeded the client timeout.
var ErrTimeout = errors.New("request timed out")

// HTTPError is a non-2xx response from the server. The body is kept (bounded)
// for the queue's last_error column.
type HTTPError struct {
	Status int
	Method string
	Path   string
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s returned %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// IsRetriable classifies a request error for the sync coordinator. Only a
// 5xx response is worth retrying among HTTP statuses; anything else the
// server said on purpose. Timeouts, network failures and unknown errors are
// assumed transient.
func IsRetriable(err error) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status >= 500
	}
	return true
}

// Client talks to the price capture API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SubmitPrice posts a captured price. Both 201 (created) and 200 (idempotent
// replay) are success; the server returns the same body shape for both.
func (c *Client) SubmitPrice(ctx context.Context, req request.PriceSubmissionRequest) (response.SubmissionResponse, error) {
	var out response.SubmissionResponse
	if err := c.doJSON(ctx, http.MethodPost, "/v1/prices", req, &out); err != nil {
		return response.SubmissionResponse{}, err
	}
	return out, nil
}

// ListStores fetches the server's store list for the local cache refresh.
func (c *Client) ListStores(ctx context.Context) ([]response.StoreResponse, error) {
	var out []response.StoreResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/stores", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			log.Printf("[api][client] %s %s timed out", method, path)
			return fmt.Errorf("%w: %s %s", ErrTimeout, method, path)
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))
		return &HTTPError{
			Status: resp.StatusCode,
			Method: method,
			Path:   path,
			Body:   string(raw),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
