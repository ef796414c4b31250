package web

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/ecakir/cart-dashboard/internal/domain"
)

// Client talks to the upstream dashboard API. Every call carries the
// client-level timeout; there is no retry here, the API owns its own retry
// budget against the engine.
type Client struct {
	http    *http.Client
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// postJSON posts the body and decodes the API envelope. The upstream status
// code is returned alongside so handlers can mirror it.
func postJSON[T any](ctx context.Context, c *Client, path string, body any) (*domain.APIResponse[T], int, error) {
	payload, err := sonic.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return doRequest[T](c, req)
}

func getJSON[T any](ctx context.Context, c *Client, path string) (*domain.APIResponse[T], int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}

	return doRequest[T](c, req)
}

func doRequest[T any](c *Client, req *http.Request) (*domain.APIResponse[T], int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("upstream request, %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read upstream response: %w", err)
	}

	var envelope domain.APIResponse[T]
	if err := sonic.Unmarshal(raw, &envelope); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("decode upstream response, %s: %w", req.URL.Path, err)
	}

	return &envelope, resp.StatusCode, nil
}
