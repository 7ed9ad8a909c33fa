package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"

	"github.com/tivojn/google-maps-api-skill/internal/apierr"
	"github.com/tivojn/google-maps-api-skill/internal/bind"
	"github.com/tivojn/google-maps-api-skill/internal/registry"
)

// Notes:
// - Requests are bound against real catalog descriptors and sent to an
//   httptest server; the descriptor URL is overridden via a rewriting
//   doer so no catalog entry needs a test hook.
// - Retry tests use millisecond delays to stay fast.

// rewriteDoer redirects every request to the test server.
type rewriteDoer struct {
	target *httptest.Server
	calls  atomic.Int64
}

func (d *rewriteDoer) Do(req *http.Request) (*http.Response, error) {
	d.calls.Add(1)
	outURL := d.target.URL + "?" + req.URL.RawQuery
	out, err := http.NewRequestWithContext(req.Context(), req.Method, outURL, req.Body)
	if err != nil {
		return nil, err
	}
	out.Header = req.Header
	return d.target.Client().Do(out)
}

func boundGeocode(t *testing.T) *bind.BoundRequest {
	t.Helper()
	desc, err := registry.New().Lookup("geocode")
	if err != nil {
		t.Fatalf("Lookup(geocode) error = %v", err)
	}
	req, err := bind.New(afero.NewMemMapFs()).Bind(desc, bind.Args{"address": "Berlin"})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	return req
}

func TestExecuteBuffersReply(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "secret" {
			t.Errorf("key = %q, want secret", r.URL.Query().Get("key"))
		}
		if ua := r.Header.Get("User-Agent"); ua != "gmaps-cli/1.0" {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "OK", "results": []}`))
	}))
	defer srv.Close()

	doer := &rewriteDoer{target: srv}
	c := New(WithDoer(doer))

	raw, err := c.Execute(context.Background(), boundGeocode(t), "secret")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if raw.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", raw.StatusCode)
	}
	if raw.ContentType != "application/json" {
		t.Errorf("ContentType = %q", raw.ContentType)
	}
	if len(raw.Body) == 0 {
		t.Error("Body is empty")
	}
	if raw.Elapsed <= 0 {
		t.Error("Elapsed not recorded")
	}
	if got := doer.calls.Load(); got != 1 {
		t.Errorf("network attempts = %d, want 1", got)
	}
}

func TestExecuteSingleAttemptOnServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	doer := &rewriteDoer{target: srv}
	c := New(WithDoer(doer))

	raw, err := c.Execute(context.Background(), boundGeocode(t), "k")
	if err != nil {
		t.Fatalf("Execute() error = %v, want reply surfaced for classification", err)
	}
	if raw.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", raw.StatusCode)
	}
	if got := doer.calls.Load(); got != 1 {
		t.Errorf("network attempts = %d, want exactly 1 by default", got)
	}
}

func TestExecuteRetryPolicy(t *testing.T) {
	t.Parallel()

	var served atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if served.Add(1) < 3 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "OK"}`))
	}))
	defer srv.Close()

	doer := &rewriteDoer{target: srv}
	c := New(WithDoer(doer),
		WithMaxRetries(5),
		WithRetryDelays(time.Millisecond, 5*time.Millisecond))

	raw, err := c.Execute(context.Background(), boundGeocode(t), "k")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if raw.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want eventual 200", raw.StatusCode)
	}
	if got := doer.calls.Load(); got != 3 {
		t.Errorf("network attempts = %d, want 3", got)
	}
}

func TestExecuteRetryExhaustedSurfacesLastReply(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	doer := &rewriteDoer{target: srv}
	c := New(WithDoer(doer),
		WithMaxRetries(2),
		WithRetryDelays(time.Millisecond, 2*time.Millisecond))

	raw, err := c.Execute(context.Background(), boundGeocode(t), "k")
	if err != nil {
		t.Fatalf("Execute() error = %v, want last reply", err)
	}
	if raw.StatusCode != http.StatusTooManyRequests {
		t.Errorf("StatusCode = %d, want 429 for the classifier", raw.StatusCode)
	}
	if got := doer.calls.Load(); got != 3 {
		t.Errorf("network attempts = %d, want initial + 2 retries", got)
	}
}

// sequenceDoer replays scripted outcomes, one per call: a canned status
// code when the entry's err is nil, the error otherwise.
type sequenceDoer struct {
	calls atomic.Int64
	steps []struct {
		status int
		err    error
	}
}

func (d *sequenceDoer) Do(*http.Request) (*http.Response, error) {
	i := int(d.calls.Add(1)) - 1
	if i >= len(d.steps) {
		i = len(d.steps) - 1
	}
	step := d.steps[i]
	if step.err != nil {
		return nil, step.err
	}
	return &http.Response{
		StatusCode: step.status,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader("")),
	}, nil
}

func TestExecuteRetryFailureDiscardsEarlierReply(t *testing.T) {
	t.Parallel()

	// First attempt gets a rate-limit reply, the second dies on a
	// timeout. The timeout must surface; the stale 429 must not be
	// reported as the outcome.
	doer := &sequenceDoer{steps: []struct {
		status int
		err    error
	}{
		{status: http.StatusTooManyRequests},
		{err: timeoutErr{}},
	}}
	c := New(WithDoer(doer),
		WithMaxRetries(3),
		WithRetryDelays(time.Millisecond, 2*time.Millisecond))

	raw, err := c.Execute(context.Background(), boundGeocode(t), "k")
	if !errors.Is(err, apierr.ErrTimeout) {
		t.Fatalf("Execute() error = %v, want ErrTimeout", err)
	}
	if raw != nil {
		t.Errorf("Execute() raw = %+v, want nil when the run ends in a timeout", raw)
	}
	if got := doer.calls.Load(); got != 2 {
		t.Errorf("network attempts = %d, want 2", got)
	}
}

func TestExecuteRetryDoesNotResendClientErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	doer := &rewriteDoer{target: srv}
	c := New(WithDoer(doer),
		WithMaxRetries(5),
		WithRetryDelays(time.Millisecond, 2*time.Millisecond))

	raw, err := c.Execute(context.Background(), boundGeocode(t), "k")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if raw.StatusCode != http.StatusForbidden {
		t.Errorf("StatusCode = %d, want 403", raw.StatusCode)
	}
	if got := doer.calls.Load(); got != 1 {
		t.Errorf("network attempts = %d, want 1 (403 is not retryable)", got)
	}
}

// failingDoer simulates a connection failure.
type failingDoer struct {
	err error
}

func (d *failingDoer) Do(*http.Request) (*http.Response, error) {
	return nil, d.err
}

// timeoutErr implements net.Error with Timeout() = true.
type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestExecuteTransportFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		doerErr      error
		wantSentinel error
	}{
		{"connection refused", errors.New("dial tcp: connection refused"), apierr.ErrNetwork},
		{"deadline exceeded", context.DeadlineExceeded, apierr.ErrTimeout},
		{"net timeout", timeoutErr{}, apierr.ErrTimeout},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := New(WithDoer(&failingDoer{err: tt.doerErr}))
			_, err := c.Execute(context.Background(), boundGeocode(t), "k")
			if !errors.Is(err, tt.wantSentinel) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantSentinel)
			}
		})
	}
}
