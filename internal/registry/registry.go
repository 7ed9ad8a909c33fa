// Package registry holds the static catalog of supported operations.
//
// Each operation is described declaratively: transport shape, parameter
// specifications with validation rules, and response handling mode. The
// rest of the pipeline is operation-agnostic; adding an operation is a
// pure-data change in catalog.go.
package registry

import (
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/tivojn/google-maps-api-skill/internal/apierr"
)

// Mode selects how a reply is handled.
type Mode string

const (
	// ModeStructured decodes the reply as JSON.
	ModeStructured Mode = "structured"
	// ModeBinary buffers the reply bytes for a caller-specified destination.
	ModeBinary Mode = "binary"
	// ModeLocal produces its result from the bound request alone; no
	// network call is made (embed-url).
	ModeLocal Mode = "local"
)

// Placement selects where a bound parameter lands on the wire.
type Placement string

const (
	// InQuery appends the parameter to the query string.
	InQuery Placement = "query"
	// InPath substitutes the parameter into a {name} URL segment. The
	// value is inserted raw: Places resource names contain slashes.
	InPath Placement = "path"
	// InBody sets the parameter at a dotted path in the JSON body. A
	// "[]" segment marks a list whose elements are built from the
	// remainder of the path.
	InBody Placement = "body"
	// InFieldMask replaces the descriptor's default X-Goog-FieldMask.
	InFieldMask Placement = "fieldmask"
)

// Type selects the coercion applied to the raw string argument.
type Type string

const (
	TypeString Type = "string"
	TypeInt    Type = "int"
	TypeFloat  Type = "float"
	TypeBool   Type = "bool"
	// TypeLatLng is a "lat,lng" pair; both components are range-checked.
	// In a query it stays a pair string; in a body it becomes a
	// {latitude, longitude} object.
	TypeLatLng Type = "latlng"
	// TypeCoordList is a pipe-delimited list of "lat,lng" pairs.
	TypeCoordList Type = "coordlist"
	// TypeStringList is a pipe-delimited list of strings.
	TypeStringList Type = "stringlist"
	// TypeWifiList is a pipe-delimited list of "MAC[,signalStrength]"
	// WiFi access point specs.
	TypeWifiList Type = "wifilist"
	// TypeCellList is a pipe-delimited list of
	// "cellId[,lac[,mcc[,mnc]]]" cell tower specs.
	TypeCellList Type = "celllist"
	// TypeJSONFile reads the named file and uses its JSON content as the
	// entire request body.
	TypeJSONFile Type = "jsonfile"
)

// Param specifies one operation parameter.
type Param struct {
	// Name is the argument key callers supply (matches the CLI flag).
	Name string
	// Wire is the query key or dotted body path; empty means Name. For
	// TypeJSONFile an empty Wire means the whole body.
	Wire string
	Placement Placement
	Type      Type
	Required  bool
	// Default, when non-empty, is bound as if the caller supplied it.
	Default string
	// OnlyWith names a parameter this one depends on: the default is
	// suppressed and an explicit value rejected unless that parameter is
	// also present.
	OnlyWith string
	// Enum maps accepted tokens to their wire values. Nil means free-form.
	Enum map[string]string
	// Rules are applied to the coerced value.
	Rules []validation.Rule
	// MinItems/MaxItems bound list lengths; zero means unbounded.
	MinItems int
	MaxItems int
}

// WireName returns the wire key for the parameter.
func (p Param) WireName() string {
	if p.Wire != "" {
		return p.Wire
	}
	return p.Name
}

// Group declares mutually exclusive parameter alternatives. Each set is
// one alternative; all parameters of a set must appear together. At most
// one set may be present, and exactly one if Required.
type Group struct {
	Required bool
	Sets     [][]string
}

// Descriptor is the static definition of one operation.
type Descriptor struct {
	// Name is the unique operation key.
	Name   string
	Method string
	// URL is the full endpoint URL, possibly with {param} path segments.
	URL string
	// Service is the API host used as remediation metadata on
	// authorization failures.
	Service string
	Mode    Mode
	// FieldMask is the default X-Goog-FieldMask header ("" = none).
	FieldMask string
	// Output is the default destination of a binary payload. {param}
	// placeholders are filled from the bound arguments (or the
	// parameter's default). Required for ModeBinary descriptors.
	Output string
	Params []Param
	OneOf  []Group
}

// EnableURL returns the canonical enablement page for the descriptor's
// service.
func (d *Descriptor) EnableURL() string {
	return apierr.EnableURLBase + d.Service
}

// Param returns the named parameter spec.
func (d *Descriptor) Param(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Registry is the populated operation catalog. It is read-only after
// construction and safe for concurrent use.
type Registry struct {
	byName map[string]*Descriptor
}

// New builds the registry from the static catalog.
// Duplicate operation names are a programming error and panic.
func New() *Registry {
	r := &Registry{byName: make(map[string]*Descriptor, len(catalog))}
	for i := range catalog {
		d := &catalog[i]
		if _, dup := r.byName[d.Name]; dup {
			panic(fmt.Sprintf("registry: duplicate operation %q", d.Name))
		}
		r.byName[d.Name] = d
	}
	return r
}

// Lookup returns the descriptor for an operation name, or an error
// wrapping apierr.ErrUnknownOperation.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, apierr.ErrUnknownOperation)
	}
	return d, nil
}

// Names returns all operation names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
