// Package backend is the typed client for the IPL analytics REST backend.
// Every response is decoded into an explicit envelope and validated before use.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/skyeanalytics/ipl-dashboard/internal/cache"
	"github.com/skyeanalytics/ipl-dashboard/internal/models"
)

// maxResponseSize caps how much of a backend body is read (8MB).
const maxResponseSize = 8 << 20

var (
	upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ipl_dashboard_backend_requests_total",
		Help: "Requests sent to the analytics backend",
	}, []string{"endpoint", "outcome"})

	upstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ipl_dashboard_backend_request_duration_seconds",
		Help:    "Latency of analytics backend requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})
)

type ctxKey string

const freshKey ctxKey = "fresh_fetch"

// WithFreshFetch marks ctx so GET calls skip the cache read but still refresh it.
func WithFreshFetch(ctx context.Context) context.Context {
	return context.WithValue(ctx, freshKey, true)
}

func isFresh(ctx context.Context) bool {
	v, _ := ctx.Value(freshKey).(bool)
	return v
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Cache      cache.Cache
	Logger     *zap.Logger
}

// Client talks to the analytics backend through one shared http.Client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
	logger     *zap.SugaredLogger
}

// New creates a backend client. A nil HTTPClient gets a client with opts.Timeout
// (10s when unset); a nil Cache disables caching.
func New(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	c := opts.Cache
	if c == nil {
		c = cache.Noop{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
		cache:      c,
		logger:     logger.Sugar(),
	}
}

// BaseURL returns the backend base URL the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Ping checks that the backend answers at all. Any HTTP status counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/teams/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// getJSON performs a cached GET and decodes the validated body into out.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, query url.Values, out interface{}) error {
	key := path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}

	if !isFresh(ctx) {
		data, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			c.logger.Warnw("Cache read failed, falling back to backend", "key", key, "error", err)
		}
		if ok {
			if err := decode(key, data, out); err == nil {
				return nil
			}
			c.logger.Warnw("Discarding unreadable cache entry", "key", key)
		}
	}

	body, err := c.do(ctx, endpoint, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := decode(key, body, out); err != nil {
		c.logger.Errorw("Malformed backend response", "path", key, "error", err)
		return err
	}

	if err := c.cache.Set(ctx, key, body); err != nil {
		c.logger.Warnw("Cache write failed", "key", key, "error", err)
	}
	return nil
}

// postJSON performs an uncached POST with a JSON body.
func (c *Client) postJSON(ctx context.Context, endpoint, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}
	body, err := c.do(ctx, endpoint, http.MethodPost, path, nil, payload)
	if err != nil {
		return err
	}
	if err := decode(path, body, out); err != nil {
		c.logger.Errorw("Malformed backend response", "path", path, "error", err)
		return err
	}
	return nil
}

func (c *Client) do(ctx context.Context, endpoint, method, path string, query url.Values, payload []byte) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", requestID(ctx))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	upstreamDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "transport_error").Inc()
		c.logger.Errorw("Backend request failed", "endpoint", endpoint, "path", path, "error", err)
		return nil, fmt.Errorf("backend %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		upstreamRequests.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, fmt.Errorf("failed to read backend response for %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamRequests.WithLabelValues(endpoint, "status_error").Inc()
		se := newStatusError(resp.StatusCode, path, body)
		c.logger.Errorw("Backend returned error status", "endpoint", endpoint, "path", path, "status", resp.StatusCode, "detail", se.Detail)
		return nil, se
	}

	upstreamRequests.WithLabelValues(endpoint, "ok").Inc()
	return body, nil
}

func decode(path string, body []byte, out interface{}) error {
	if err := json.Unmarshal(body, out); err != nil {
		return malformed(path, err)
	}
	if err := models.Validate(out); err != nil {
		return malformed(path, err)
	}
	return nil
}

// requestID propagates the inbound chi request ID or mints a new one.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
