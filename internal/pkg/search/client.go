package search

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/ecakir/cart-dashboard/internal/pkg/logger"
	"github.com/elastic/go-elasticsearch/v8"
)

// Config holds the engine connection settings and the names of the two
// indices the dashboard reads.
type Config struct {
	URL          string
	CartIndex    string
	ProfileIndex string
	Timeout      time.Duration
	MaxRetries   int
}

// Indices carries the index roles around so that index-aware query building
// compares against configuration, never against hardcoded names.
type Indices struct {
	Cart    string
	Profile string
}

// Engine is the slice of the search engine the dashboard relies on.
type Engine interface {
	Search(ctx context.Context, index string, body map[string]any) (*Response, error)
	Ping(ctx context.Context) error
}

// Client wraps the Elasticsearch client with the request shape the dashboard
// uses everywhere: a JSON body against a single index.
type Client struct {
	es  *elasticsearch.Client
	cfg Config
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}

	retrySchedule := backoff.NewExponentialBackOff()
	retrySchedule.InitialInterval = 100 * time.Millisecond

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses:  []string{cfg.URL},
		MaxRetries: cfg.MaxRetries,
		RetryBackoff: func(attempt int) time.Duration {
			if attempt == 1 {
				retrySchedule.Reset()
			}
			return retrySchedule.NextBackOff()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch.NewClient: %w", err)
	}

	return &Client{es: es, cfg: cfg}, nil
}

func (c *Client) Indices() Indices {
	return Indices{Cart: c.cfg.CartIndex, Profile: c.cfg.ProfileIndex}
}

// Search executes the request body against the named index and decodes the
// hits/aggregations envelope. The engine's own retry budget applies; beyond
// it the call fails and is reported to the caller.
func (c *Client) Search(ctx context.Context, index string, body map[string]any) (*Response, error) {
	payload, err := sonic.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal search body: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(index),
		c.es.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, fmt.Errorf("search request, index-%s: %w", index, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}

	if res.IsError() {
		logger.Errorf(ctx, "search failed, index-%s, status-%s: %s", index, res.Status(), raw)
		return nil, fmt.Errorf("search failed, index-%s: %s", index, res.Status())
	}

	var resp Response
	if err := sonic.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return &resp, nil
}

// Ping reports whether the engine answers at all. Used by the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	res, err := c.es.Ping(c.es.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("ping: %s", res.Status())
	}
	return nil
}
