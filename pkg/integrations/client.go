package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/linguist/pkg/cache"
	errs "github.com/matzehuels/linguist/pkg/errors"
	"github.com/matzehuels/linguist/pkg/httputil"
	"github.com/matzehuels/linguist/pkg/observability"
)

// Client provides shared HTTP functionality for source-specific clients.
// It is safe for concurrent use.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	prefix  string
	ttl     time.Duration
	headers map[string]string
	backoff httputil.Backoff
}

// NewClient creates a Client. Cache keys are prefixed with prefix and
// stored for ttl. A nil backend disables caching. headers are sent with
// every request; nil is fine.
func NewClient(backend cache.Cache, prefix string, ttl time.Duration, headers map[string]string) *Client {
	if backend == nil {
		backend = cache.NewNullCache()
	}
	return &Client{
		http:    NewHTTPClient(),
		cache:   backend,
		prefix:  prefix,
		ttl:     ttl,
		headers: headers,
		backoff: httputil.DefaultBackoff,
	}
}

// SetHTTPClient replaces the underlying HTTP client.
func (c *Client) SetHTTPClient(h *http.Client) { c.http = h }

// SetBackoff replaces the retry policy.
func (c *Client) SetBackoff(b httputil.Backoff) { c.backoff = b }

// Cached returns the payload stored under key, or runs fetch (with retry)
// and stores its result. refresh skips the cache read but still writes.
func (c *Client) Cached(ctx context.Context, key string, refresh bool, fetch func() ([]byte, error)) ([]byte, error) {
	key = c.prefix + key
	hooks := observability.Cache()

	if !refresh {
		// A failing backend degrades to a miss.
		if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
			hooks.OnCacheHit(ctx, key)
			return data, nil
		}
		hooks.OnCacheMiss(ctx, key)
	}

	var data []byte
	err := c.backoff.Do(ctx, func(int) error {
		var err error
		data, err = fetch()
		return err
	})
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, data, c.ttl); err == nil {
		hooks.OnCacheSet(ctx, key, len(data))
	}
	return data, nil
}

// CachedJSON is [Client.Cached] for JSON values. fetch populates v.
func (c *Client) CachedJSON(ctx context.Context, key string, refresh bool, v any, fetch func() error) error {
	data, err := c.Cached(ctx, key, refresh, func() ([]byte, error) {
		if err := fetch(); err != nil {
			return nil, err
		}
		return json.Marshal(v)
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// Get performs a GET request and JSON-decodes the response into v.
func (c *Client) Get(ctx context.Context, url string, v any) error {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()
	return json.NewDecoder(body).Decode(v)
}

// GetBytes performs a GET request and returns the response body.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, httputil.Retryable(fmt.Errorf("%w: read body: %v", ErrNetwork, err))
	}
	return data, nil
}

func (c *Client) doRequest(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil, httputil.Retryable(fmt.Errorf("%w: %v", ErrTimeout, err))
		}
		return nil, httputil.Retryable(fmt.Errorf("%w: %v", ErrNetwork, err))
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(resp *http.Response) error {
	code := resp.StatusCode
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code == http.StatusTooManyRequests:
		retry, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return &errs.RateLimitedError{RetryAfter: retry}
	case code >= 500:
		return httputil.Retryable(fmt.Errorf("%w: status %d", ErrNetwork, code))
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}
