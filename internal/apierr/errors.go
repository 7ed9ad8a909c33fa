// Package apierr defines the closed failure taxonomy for the request
// pipeline and the classification of raw HTTP/service outcomes into it.
//
// Every stage of the pipeline reports failures by wrapping one of these
// sentinels with fmt.Errorf("%s: %w", msg, sentinel), or by returning a
// *Failure which wraps the sentinel for its kind. Callers check with
// errors.Is(err, apierr.ErrRateLimited) etc.; the CLI maps sentinels to
// exit codes the same way.
package apierr

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per taxonomy kind.
var (
	// ErrMissingCredential indicates no API key was found in any source.
	ErrMissingCredential = errors.New("GOOGLE_MAPS_API_KEY not set")

	// ErrUnknownOperation indicates the operation name is not in the registry.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrValidation indicates a malformed, out-of-range, or conflicting argument,
	// caught before any network activity.
	ErrValidation = errors.New("invalid argument")

	// ErrNetwork indicates a transport-level failure (connection, DNS) or a
	// transient server-side error.
	ErrNetwork = errors.New("network failure")

	// ErrTimeout indicates the request exceeded its deadline.
	ErrTimeout = errors.New("request timeout")

	// ErrAuthorization indicates the service denied the caller or the specific
	// sub-service is not provisioned for the project.
	ErrAuthorization = errors.New("authorization denied")

	// ErrRateLimited indicates the request quota was exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidRequest indicates the service rejected semantically invalid
	// parameters that passed local validation.
	ErrInvalidRequest = errors.New("request rejected by service")
)

// Kind identifies one taxonomy category.
type Kind string

// Taxonomy kinds. An empty result is deliberately absent: a zero-match
// reply is a Success variant, not a failure.
const (
	KindMissingCredential Kind = "missing_credential"
	KindUnknownOperation  Kind = "unknown_operation"
	KindValidation        Kind = "validation_error"
	KindNetwork           Kind = "network_error"
	KindTimeout           Kind = "timeout"
	KindAuthorization     Kind = "authorization_error"
	KindRateLimited       Kind = "rate_limited"
	KindInvalidRequest    Kind = "invalid_request"
)

// sentinels maps each kind to the sentinel a Failure of that kind wraps.
var sentinels = map[Kind]error{
	KindMissingCredential: ErrMissingCredential,
	KindUnknownOperation:  ErrUnknownOperation,
	KindValidation:        ErrValidation,
	KindNetwork:           ErrNetwork,
	KindTimeout:           ErrTimeout,
	KindAuthorization:     ErrAuthorization,
	KindRateLimited:       ErrRateLimited,
	KindInvalidRequest:    ErrInvalidRequest,
}

// Remediation is the structured hint attached to authorization failures.
// It is the entire interface the pipeline exposes to an external
// guided-remediation collaborator: the affected service and the canonical
// page where it can be enabled.
type Remediation struct {
	Service   string `json:"service"`
	EnableURL string `json:"enable_url"`
}

// Failure is a classified pipeline failure: one taxonomy kind, a
// human-readable message, and optional remediation metadata.
// It wraps the sentinel for its kind, so errors.Is works on both views.
type Failure struct {
	Kind        Kind
	Message     string
	Remediation *Remediation
}

// Compile-time interface compliance check.
var _ error = (*Failure)(nil)

// Error returns the message prefixed with the sentinel text.
func (f *Failure) Error() string {
	s := sentinels[f.Kind]
	if f.Message == "" {
		return s.Error()
	}
	return fmt.Sprintf("%s: %s", s.Error(), f.Message)
}

// Unwrap returns the sentinel for the failure's kind.
func (f *Failure) Unwrap() error {
	return sentinels[f.Kind]
}

// New creates a Failure of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsFailure extracts a *Failure from an error chain.
// Returns nil if the chain contains none.
func AsFailure(err error) *Failure {
	var f *Failure
	if errors.As(err, &f) {
		return f
	}
	return nil
}

// Retryable reports whether a failure may succeed on a later attempt
// without any change to the request. Only rate limits and transient
// network/server failures qualify; everything else needs the caller to
// fix input, environment, or project configuration first.
func Retryable(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrNetwork)
}
