// Package transport executes bound requests over HTTPS.
//
// One network attempt is made per call by default: rate limits and
// transient server errors come back to the caller as replies for the
// classifier, not as silent retries. An explicit opt-in retry policy
// (exponential backoff, bounded attempts) re-sends only those outcomes.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashicorp/go-hclog"

	"github.com/tivojn/google-maps-api-skill/internal/apierr"
	"github.com/tivojn/google-maps-api-skill/internal/bind"
)

// userAgent identifies the client on the wire.
const userAgent = "gmaps-cli/1.0"

// Default execution limits.
const (
	// defaultTimeout is the per-attempt ceiling.
	defaultTimeout = 30 * time.Second

	// retryBaseDelay/retryMaxDelay shape the opt-in backoff.
	retryBaseDelay = 1 * time.Second
	retryMaxDelay  = 30 * time.Second
)

// RawResult is the undecoded outcome of one executed request.
type RawResult struct {
	StatusCode  int
	ContentType string
	Body        []byte
	Elapsed     time.Duration
}

// httpDoer abstracts the HTTP client for testing.
type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client executes bound requests.
type Client struct {
	doer       httpDoer
	logger     hclog.Logger
	timeout    time.Duration
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithDoer sets a custom HTTP client (for testing).
func WithDoer(d httpDoer) Option {
	return func(c *Client) { c.doer = d }
}

// WithLogger sets the transport logger.
func WithLogger(l hclog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout sets the per-attempt ceiling.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithMaxRetries enables the retry policy: up to n re-sends of rate
// limited or transient server outcomes. Zero keeps the single-attempt
// default.
func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithRetryDelays sets the base and max delays for the backoff.
func WithRetryDelays(base, max time.Duration) Option {
	return func(c *Client) {
		if base > 0 {
			c.baseDelay = base
		}
		if max > 0 {
			c.maxDelay = max
		}
	}
}

// New creates a transport Client.
func New(opts ...Option) *Client {
	c := &Client{
		logger:    hclog.NewNullLogger(),
		timeout:   defaultTimeout,
		baseDelay: retryBaseDelay,
		maxDelay:  retryMaxDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		c.doer = &http.Client{Timeout: c.timeout}
	}
	return c
}

// Execute sends the bound request with the given API key and buffers the
// full reply. Connection, DNS, and deadline failures are classified as
// network/timeout failures; any received reply — successful or not — is
// returned as a RawResult for the normalizer and classifier.
func (c *Client) Execute(ctx context.Context, req *bind.BoundRequest, key string) (*RawResult, error) {
	if c.maxRetries == 0 {
		return c.attempt(ctx, req, key)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.baseDelay
	policy.MaxInterval = c.maxDelay

	var result *RawResult
	operation := func() error {
		// Each attempt starts clean: a reply kept from an earlier
		// attempt must not survive a later permanent failure.
		result = nil
		raw, err := c.attempt(ctx, req, key)
		if err != nil {
			if apierr.Retryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		if raw.StatusCode == http.StatusTooManyRequests || raw.StatusCode >= 500 {
			c.logger.Debug("retryable reply", "operation", req.Operation,
				"status", raw.StatusCode)
			result = raw
			return fmt.Errorf("HTTP %d", raw.StatusCode)
		}
		result = raw
		return nil
	}

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxRetries)), ctx))
	if err != nil && (result == nil || ctx.Err() != nil) {
		return nil, err
	}
	// Retries exhausted on a received reply: hand the last reply to the
	// classifier rather than masking it.
	return result, nil
}

// attempt performs a single network attempt.
func (c *Client) attempt(ctx context.Context, req *bind.BoundRequest, key string) (*RawResult, error) {
	attemptCtx := ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(attemptCtx, req.Method, req.URL(key), body)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", req.Operation, err)
	}
	for name, values := range req.Header {
		for _, v := range values {
			httpReq.Header.Add(name, v)
		}
	}
	httpReq.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.doer.Do(httpReq)
	elapsed := time.Since(start)
	if err != nil {
		return nil, classifyTransportErr(req.Operation, err, elapsed)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read reply for %s: %v: %w",
			req.Operation, err, apierr.ErrNetwork)
	}

	c.logger.Debug("request complete", "operation", req.Operation,
		"status", resp.StatusCode, "bytes", len(data), "elapsed", elapsed)

	return &RawResult{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        data,
		Elapsed:     elapsed,
	}, nil
}

// classifyTransportErr distinguishes deadline expiry from connection
// failures; both mean no reply was obtained.
func classifyTransportErr(operation string, err error, elapsed time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s after %s: %w", operation, elapsed.Round(time.Millisecond),
			apierr.ErrTimeout)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%s after %s: %w", operation, elapsed.Round(time.Millisecond),
			apierr.ErrTimeout)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%s: %v: %w", operation, err, apierr.ErrNetwork)
}
