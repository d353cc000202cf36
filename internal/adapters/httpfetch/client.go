// Package httpfetch implements the Fetcher port over plain HTTP with
// basic-auth support, typed failure classification, and exponential
// backoff for transient failures.
package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strconv"
	"time"

	"go.trai.ch/webls/internal/core/domain"
	"go.trai.ch/webls/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.Fetcher.
type Client struct {
	httpClient   *http.Client
	fetchTimeout time.Duration
	probeTimeout time.Duration
	maxRetries   int
	logger       ports.Logger
	sleep        func(ctx context.Context, d time.Duration) error
}

// NewClient creates a fetcher using the timeouts and retry budget from
// cfg. Non-positive values fall back to the domain defaults.
func NewClient(cfg domain.Config, logger ports.Logger) *Client {
	return newClientWithSleep(cfg, logger, sleepContext)
}

func newClientWithSleep(cfg domain.Config, logger ports.Logger, sleep func(context.Context, time.Duration) error) *Client {
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = domain.DefaultFetchTimeout
	}
	probeTimeout := cfg.ProbeTimeout
	if probeTimeout <= 0 {
		probeTimeout = domain.DefaultProbeTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = domain.DefaultMaxRetries
	}

	return &Client{
		// Timeouts are applied per request via context so that a
		// transport timeout is distinguishable from caller cancellation.
		httpClient:   &http.Client{},
		fetchTimeout: fetchTimeout,
		probeTimeout: probeTimeout,
		maxRetries:   maxRetries,
		logger:       logger,
		sleep:        sleep,
	}
}

// Fetch issues a single GET and returns the body. A zero timeout uses
// the configured fetch timeout.
func (c *Client) Fetch(ctx context.Context, url string, creds *domain.Credentials, timeout time.Duration) ([]byte, error) {
	if timeout <= 0 {
		timeout = c.fetchTimeout
	}

	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := c.do(reqCtx, http.MethodGet, url, creds)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := classifyStatus(resp.StatusCode, url); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err, url)
	}
	return body, nil
}

// FetchWithRetry wraps Fetch with exponential backoff. Transient
// failures (connection, timeout, server) are retried up to the
// configured attempt budget; authentication and not-found fail
// immediately. Backoff doubles starting at one second.
func (c *Client) FetchWithRetry(ctx context.Context, url string, creds *domain.Credentials) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		body, err := c.Fetch(ctx, url, creds, 0)
		if err == nil {
			return body, nil
		}
		if !domain.Transient(err) || attempt == c.maxRetries-1 {
			return nil, err
		}

		delay := time.Duration(1<<attempt) * time.Second
		c.logger.Warn(fmt.Sprintf("fetch failed, retrying in %s (attempt %d/%d): %v", delay, attempt+1, c.maxRetries, err))
		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			return nil, sleepErr
		}
	}
}

// Probe performs a lightweight HEAD request to check reachability and
// credentials without transferring a listing body.
func (c *Client) Probe(ctx context.Context, url string, creds *domain.Credentials) error {
	reqCtx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	resp, err := c.do(reqCtx, http.MethodHead, url, creds)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	return classifyStatus(resp.StatusCode, url)
}

func (c *Client) do(ctx context.Context, method, url string, creds *domain.Credentials) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConnection, err), "url", url)
	}
	if creds != nil {
		req.SetBasicAuth(creds.Username, creds.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransport(err, url)
	}
	return resp, nil
}

// classifyStatus maps an HTTP status onto the error taxonomy. The
// branches are checked in priority order; anything outside 2xx that is
// not explicitly mapped counts as a client-side connection problem.
func classifyStatus(status int, url string) error {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return zerr.With(zerr.With(domain.ErrAuthentication, "status", strconv.Itoa(status)), "url", url)
	case status == http.StatusNotFound:
		return zerr.With(domain.ErrNotFound, "url", url)
	case status >= 500:
		return zerr.With(zerr.With(domain.ErrServer, "status", strconv.Itoa(status)), "url", url)
	case status >= 400:
		return zerr.With(zerr.With(domain.ErrConnection, "status", strconv.Itoa(status)), "url", url)
	default:
		return nil
	}
}

// classifyTransport maps a transport-level failure onto the taxonomy:
// timeouts are retryable as ErrTimeout, everything else (DNS, refused,
// reset) as ErrConnection.
func classifyTransport(err error, url string) error {
	var urlErr *neturl.Error
	if (errors.As(err, &urlErr) && urlErr.Timeout()) || errors.Is(err, context.DeadlineExceeded) {
		return zerr.With(errors.Join(domain.ErrTimeout, err), "url", url)
	}
	return zerr.With(errors.Join(domain.ErrConnection, err), "url", url)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ ports.Fetcher = (*Client)(nil)
