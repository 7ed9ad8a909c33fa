// Package bind validates caller-supplied arguments against a descriptor
// and materializes the wire request.
//
// Binding is strict and fail-fast: the first validation failure stops the
// process with an error naming the offending parameter, and no
// BoundRequest is produced. Successful binding is deterministic —
// identical descriptor and arguments always yield a byte-identical
// request (query keys and JSON object keys are emitted sorted).
package bind

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/afero"

	"github.com/tivojn/google-maps-api-skill/internal/apierr"
	"github.com/tivojn/google-maps-api-skill/internal/registry"
)

// Args is the loosely-typed argument set supplied by the caller.
// An empty value is treated as absent.
type Args map[string]string

// BoundRequest is the validated, fully materialized request.
// The credential is attached at send time via URL so the bound form stays
// independent of the live key.
type BoundRequest struct {
	Operation string
	Method    string
	Header    http.Header
	Body      []byte

	baseURL string
	query   url.Values
}

// URL renders the full request URL with the API key attached.
func (b *BoundRequest) URL(key string) string {
	q := url.Values{}
	for k, vs := range b.query {
		q[k] = vs
	}
	q.Set("key", key)
	return b.baseURL + "?" + q.Encode()
}

// Binder materializes requests. The filesystem is injectable because some
// parameters (route-optimize input) read their value from a file.
type Binder struct {
	fs afero.Fs
}

// New creates a Binder over the given filesystem.
func New(fs afero.Fs) *Binder {
	return &Binder{fs: fs}
}

// Bind validates args against the descriptor and builds the request.
// All failures wrap apierr.ErrValidation and name the parameter.
func (b *Binder) Bind(desc *registry.Descriptor, args Args) (*BoundRequest, error) {
	present := make(map[string]bool, len(args))
	for name, v := range args {
		if strings.TrimSpace(v) == "" {
			continue
		}
		if _, ok := desc.Param(name); !ok {
			return nil, fieldErr(name, "not a parameter of %s", desc.Name)
		}
		present[name] = true
	}

	// Presence and dependency checks, in declaration order.
	for _, p := range desc.Params {
		if present[p.Name] && p.OnlyWith != "" && !present[p.OnlyWith] {
			return nil, fieldErr(p.Name, "requires %q to be set", p.OnlyWith)
		}
		if p.Required && !present[p.Name] && p.Default == "" {
			return nil, fieldErr(p.Name, "required")
		}
	}

	// Mutually exclusive alternatives.
	for _, g := range desc.OneOf {
		if err := checkGroup(g, present); err != nil {
			return nil, err
		}
	}

	req := &BoundRequest{
		Operation: desc.Name,
		Method:    desc.Method,
		Header:    make(http.Header),
		baseURL:   desc.URL,
		query:     url.Values{},
	}
	fieldMask := desc.FieldMask
	var body map[string]any

	for _, p := range desc.Params {
		raw, ok := args[p.Name]
		raw = strings.TrimSpace(raw)
		if !ok || raw == "" {
			if p.Default == "" {
				continue
			}
			if p.OnlyWith != "" && !present[p.OnlyWith] {
				continue
			}
			raw = p.Default
		}

		val, err := b.coerce(p, raw)
		if err != nil {
			return nil, err
		}
		if err := applyRules(p, val); err != nil {
			return nil, err
		}

		switch p.Placement {
		case registry.InQuery:
			req.query.Set(p.WireName(), queryString(val))
		case registry.InPath:
			req.baseURL = strings.ReplaceAll(req.baseURL, "{"+p.Name+"}", queryString(val))
		case registry.InBody:
			if body == nil {
				body = make(map[string]any)
			}
			if p.Type == registry.TypeJSONFile && p.Wire == "" {
				obj, ok := val.(map[string]any)
				if !ok {
					return nil, fieldErr(p.Name, "must contain a JSON object")
				}
				for k, v := range obj {
					body[k] = v
				}
				continue
			}
			if err := setBodyPath(body, p.WireName(), val); err != nil {
				return nil, fieldErr(p.Name, "%s", err)
			}
		case registry.InFieldMask:
			fieldMask = queryString(val)
		}
	}

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body for %s: %w", desc.Name, err)
		}
		req.Body = data
		req.Header.Set("Content-Type", "application/json")
	}
	if fieldMask != "" {
		req.Header.Set("X-Goog-FieldMask", fieldMask)
	}

	return req, nil
}

// checkGroup enforces a one-of group: at most one alternative set may be
// present (exactly one if required), and a set must appear whole.
func checkGroup(g registry.Group, present map[string]bool) error {
	var matched []string
	for _, set := range g.Sets {
		any, all := false, true
		for _, name := range set {
			if present[name] {
				any = true
			} else {
				all = false
			}
		}
		if any && !all {
			return fieldErr(strings.Join(set, "+"), "must be supplied together")
		}
		if any && all {
			matched = append(matched, strings.Join(set, "+"))
		}
	}

	alternatives := make([]string, len(g.Sets))
	for i, set := range g.Sets {
		alternatives[i] = strings.Join(set, "+")
	}
	joined := strings.Join(alternatives, " or ")

	switch {
	case len(matched) > 1:
		return fieldErr(joined, "mutually exclusive; supply only one")
	case len(matched) == 0 && g.Required:
		return fieldErr(joined, "exactly one is required")
	}
	return nil
}

// applyRules runs the declared ozzo rules against the coerced value.
func applyRules(p registry.Param, val any) error {
	if len(p.Rules) == 0 {
		return nil
	}
	if err := validation.Validate(val, p.Rules...); err != nil {
		return fieldErr(p.Name, "%s", err)
	}
	return nil
}

func fieldErr(name, format string, args ...any) error {
	return fmt.Errorf("parameter %q: %s: %w",
		name, fmt.Sprintf(format, args...), apierr.ErrValidation)
}
