package apierr

import "net/http"

// Service-level status tokens that appear inside HTTP 200 replies of the
// legacy web-service APIs (geocoding, elevation, timezone, roads), and the
// google.rpc status strings of the newer APIs.
const (
	StatusOK           = "OK"
	StatusZeroResults  = "ZERO_RESULTS"
	StatusDenied       = "REQUEST_DENIED"
	StatusOverLimit    = "OVER_QUERY_LIMIT"
	StatusOverDaily    = "OVER_DAILY_LIMIT"
	StatusInvalid      = "INVALID_REQUEST"
	StatusUnknownError = "UNKNOWN_ERROR"

	rpcPermissionDenied  = "PERMISSION_DENIED"
	rpcUnauthenticated   = "UNAUTHENTICATED"
	rpcResourceExhausted = "RESOURCE_EXHAUSTED"
	rpcInvalidArgument   = "INVALID_ARGUMENT"
	rpcNotFound          = "NOT_FOUND"
	rpcUnavailable       = "UNAVAILABLE"
	rpcInternal          = "INTERNAL"
)

// EnableURLBase is the canonical API Library prefix; appending a service
// host yields that service's enablement page.
const EnableURLBase = "https://console.cloud.google.com/apis/library/"

// Classify maps a received-but-unsuccessful reply to a Failure.
// service is the API host the descriptor targets (e.g.
// "airquality.googleapis.com"); authorization-class failures carry it as
// remediation metadata so an external collaborator can enable the service
// and signal back for a retry of the same bound request.
//
// httpStatus is the HTTP status code; serviceStatus is the embedded status
// token if the reply schema defines one (empty otherwise). Many of the
// legacy APIs return HTTP 200 with a non-OK embedded status, so the token
// takes precedence over the code.
func Classify(service string, httpStatus int, serviceStatus, message string) *Failure {
	if message == "" {
		message = serviceStatus
	}

	switch serviceStatus {
	case StatusDenied, rpcPermissionDenied, rpcUnauthenticated:
		return authFailure(service, message)
	case StatusOverLimit, StatusOverDaily, rpcResourceExhausted:
		return New(KindRateLimited, "%s", message)
	case StatusInvalid, rpcInvalidArgument, rpcNotFound:
		return New(KindInvalidRequest, "%s", message)
	case StatusUnknownError, rpcUnavailable, rpcInternal:
		return New(KindNetwork, "transient server error: %s", message)
	}

	switch {
	case httpStatus == http.StatusUnauthorized || httpStatus == http.StatusForbidden:
		return authFailure(service, message)
	case httpStatus == http.StatusTooManyRequests:
		return New(KindRateLimited, "%s", message)
	case httpStatus >= 500:
		// Transient 5xx: surfaced as a retryable network-class failure
		// rather than silently retried (retry policy is caller-visible).
		return New(KindNetwork, "HTTP %d: %s", httpStatus, message)
	default:
		return New(KindInvalidRequest, "HTTP %d: %s", httpStatus, message)
	}
}

func authFailure(service, message string) *Failure {
	f := New(KindAuthorization, "%s", message)
	if service != "" {
		f.Remediation = &Remediation{
			Service:   service,
			EnableURL: EnableURLBase + service,
		}
	}
	return f
}
