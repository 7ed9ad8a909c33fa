// Package normalize turns raw transport replies into uniform outcomes.
//
// The services behind the catalog disagree on how failure is reported:
// the legacy web-service APIs answer HTTP 200 with an embedded "status"
// token, the newer ones use google.rpc error objects, and the imagery
// endpoints return raw bytes. Normalize folds all three into one rule:
// success yields an *Outcome, anything else yields an *apierr.Failure.
package normalize

import (
	"encoding/json"
	"strings"

	"github.com/tivojn/google-maps-api-skill/internal/apierr"
	"github.com/tivojn/google-maps-api-skill/internal/registry"
	"github.com/tivojn/google-maps-api-skill/internal/transport"
)

// Outcome is the uniform success result of one operation.
// A zero-match reply is a success with Empty set, never an error.
type Outcome struct {
	// Value is the decoded JSON reply (nil for binary outcomes).
	Value any
	// Empty marks a well-formed reply that matched nothing.
	Empty bool
	// Bytes is the binary payload for image-mode operations.
	Bytes []byte
	// SavedPath/SavedBytes report where a binary payload was written.
	// Filled in by the pipeline, not by Normalize.
	SavedPath  string
	SavedBytes int
}

// Normalize interprets a raw reply for the given operation. Received
// failures come back as *apierr.Failure values carrying the classified
// taxonomy kind.
func Normalize(desc *registry.Descriptor, raw *transport.RawResult) (*Outcome, error) {
	if desc.Mode == registry.ModeBinary {
		return normalizeBinary(desc, raw)
	}
	return normalizeStructured(desc, raw)
}

func normalizeStructured(desc *registry.Descriptor, raw *transport.RawResult) (*Outcome, error) {
	var value any
	if err := json.Unmarshal(raw.Body, &value); err != nil {
		if !received(raw.StatusCode) {
			return nil, apierr.Classify(desc.Service, raw.StatusCode, "", snippet(raw.Body))
		}
		return nil, apierr.New(apierr.KindInvalidRequest,
			"%s returned an unparseable reply: %v", desc.Name, err)
	}

	token, message := probe(value)
	switch {
	case token == apierr.StatusZeroResults:
		return &Outcome{Value: value, Empty: true}, nil
	case token != "" && token != apierr.StatusOK:
		return nil, apierr.Classify(desc.Service, raw.StatusCode, token, message)
	case !received(raw.StatusCode):
		if message == "" {
			message = snippet(raw.Body)
		}
		return nil, apierr.Classify(desc.Service, raw.StatusCode, "", message)
	}
	return &Outcome{Value: value, Empty: isEmpty(value)}, nil
}

func normalizeBinary(desc *registry.Descriptor, raw *transport.RawResult) (*Outcome, error) {
	ct := mediaType(raw.ContentType)

	if received(raw.StatusCode) {
		if strings.HasPrefix(ct, "image/") {
			return &Outcome{Bytes: raw.Body}, nil
		}
		// place-photo with skipHttpRedirect answers JSON ({photoUri});
		// surface it as structured output instead of bytes.
		if isJSON(ct) {
			var value any
			if err := json.Unmarshal(raw.Body, &value); err == nil {
				if token, message := probe(value); token != "" && token != apierr.StatusOK {
					return nil, apierr.Classify(desc.Service, raw.StatusCode, token, message)
				}
				return &Outcome{Value: value}, nil
			}
		}
		return nil, apierr.New(apierr.KindInvalidRequest,
			"%s returned content type %q, want an image", desc.Name, raw.ContentType)
	}

	if isJSON(ct) {
		var value any
		if err := json.Unmarshal(raw.Body, &value); err == nil {
			token, message := probe(value)
			return nil, apierr.Classify(desc.Service, raw.StatusCode, token, message)
		}
	}
	return nil, apierr.Classify(desc.Service, raw.StatusCode, "", snippet(raw.Body))
}

// probe extracts the embedded status token and message, handling both
// reply schemas: legacy top-level {status, error_message} and google.rpc
// {error: {code, message, status}}.
func probe(value any) (token, message string) {
	m, ok := value.(map[string]any)
	if !ok {
		return "", ""
	}
	if s, ok := m["status"].(string); ok {
		token = s
	}
	if s, ok := m["error_message"].(string); ok {
		message = s
	}
	if e, ok := m["error"].(map[string]any); ok {
		if s, ok := e["status"].(string); ok {
			token = s
		}
		if s, ok := e["message"].(string); ok {
			message = s
		}
	}
	return token, message
}

// isEmpty reports whether a decoded success reply matched nothing. The
// newer APIs signal this with an empty top-level object.
func isEmpty(value any) bool {
	m, ok := value.(map[string]any)
	return ok && len(m) == 0
}

func received(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// mediaType strips parameters like "; charset=utf-8".
func mediaType(contentType string) string {
	ct, _, _ := strings.Cut(contentType, ";")
	return strings.TrimSpace(strings.ToLower(ct))
}

func isJSON(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// snippet bounds a raw body for use inside an error message.
func snippet(body []byte) string {
	const max = 200
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
