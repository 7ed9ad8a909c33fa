package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/tivojn/google-maps-api-skill/internal/apierr"
	"github.com/tivojn/google-maps-api-skill/internal/registry"
)

// Notes:
// - Binding is pure apart from TypeJSONFile, which reads through an
//   injected afero.MemMapFs; all tests run in parallel.
// - Failure cases assert both the ErrValidation sentinel and that the
//   message names the offending parameter, since downstream tooling keys
//   off the field name.

func newTestBinder() *Binder {
	return New(afero.NewMemMapFs())
}

func mustLookup(t *testing.T, name string) *registry.Descriptor {
	t.Helper()
	d, err := registry.New().Lookup(name)
	if err != nil {
		t.Fatalf("Lookup(%q) error = %v", name, err)
	}
	return d
}

// decodeBody unmarshals a bound JSON body for structural assertions.
func decodeBody(t *testing.T, req *BoundRequest) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(req.Body, &m); err != nil {
		t.Fatalf("body is not valid JSON: %v\n%s", err, req.Body)
	}
	return m
}

func TestBindValidationFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		op        string
		args      Args
		wantField string
	}{
		{
			name:      "missing required address",
			op:        "geocode",
			args:      Args{},
			wantField: "address",
		},
		{
			name:      "hourly forecast beyond 240 hour cap",
			op:        "weather-hourly",
			args:      Args{"lat": "37.42", "lng": "-122.08", "hours": "500"},
			wantField: "hours",
		},
		{
			name:      "negative nearby radius",
			op:        "places-nearby",
			args:      Args{"lat": "37.42", "lng": "-122.08", "radius": "-5"},
			wantField: "radius",
		},
		{
			name:      "latitude out of range",
			op:        "reverse-geocode",
			args:      Args{"latlng": "95.0,10.0"},
			wantField: "latlng",
		},
		{
			name:      "longitude out of range",
			op:        "air-quality",
			args:      Args{"lat": "10", "lng": "181"},
			wantField: "lng",
		},
		{
			name:      "non-numeric hours",
			op:        "air-quality-history",
			args:      Args{"lat": "10", "lng": "20", "hours": "tomorrow"},
			wantField: "hours",
		},
		{
			name:      "air quality history beyond 30 day window",
			op:        "air-quality-history",
			args:      Args{"lat": "10", "lng": "20", "hours": "721"},
			wantField: "hours",
		},
		{
			name:      "pollen days beyond cap",
			op:        "pollen",
			args:      Args{"lat": "10", "lng": "20", "days": "6"},
			wantField: "days",
		},
		{
			name:      "elevation path with too few samples",
			op:        "elevation",
			args:      Args{"path": "1,1|2,2", "samples": "1"},
			wantField: "samples",
		},
		{
			name:      "unknown travel mode",
			op:        "directions",
			args:      Args{"origin": "A", "destination": "B", "mode": "teleport"},
			wantField: "mode",
		},
		{
			name:      "unknown parameter rejected",
			op:        "geocode",
			args:      Args{"address": "Berlin", "frobnicate": "yes"},
			wantField: "frobnicate",
		},
		{
			name:      "malformed streetview size",
			op:        "streetview",
			args:      Args{"location": "1,2", "size": "large"},
			wantField: "size",
		},
		{
			name:      "snap-roads path over point cap",
			op:        "snap-roads",
			args:      Args{"path": strings.Repeat("1,1|", 100) + "2,2"},
			wantField: "path",
		},
		{
			name:      "dependent samples without path",
			op:        "elevation",
			args:      Args{"locations": "1,1", "samples": "5"},
			wantField: "samples",
		},
		{
			name:      "invalid static map scale",
			op:        "static-map",
			args:      Args{"center": "Berlin", "scale": "3"},
			wantField: "scale",
		},
		// Explicit zeros must hit the range rules like any other value.
		{
			name:      "zero forecast hours",
			op:        "weather-hourly",
			args:      Args{"lat": "37.42", "lng": "-122.08", "hours": "0"},
			wantField: "hours",
		},
		{
			name:      "zero elevation samples",
			op:        "elevation",
			args:      Args{"path": "1,1|2,2", "samples": "0"},
			wantField: "samples",
		},
		{
			name:      "zero streetview field of view",
			op:        "streetview",
			args:      Args{"location": "1,2", "fov": "0"},
			wantField: "fov",
		},
		{
			name:      "zero minimum rating",
			op:        "places-search",
			args:      Args{"query": "pizza", "min-rating": "0"},
			wantField: "min-rating",
		},
		{
			name:      "zero nearby radius",
			op:        "places-nearby",
			args:      Args{"lat": "37.42", "lng": "-122.08", "radius": "0"},
			wantField: "radius",
		},
		{
			name:      "zero static map scale",
			op:        "static-map",
			args:      Args{"center": "Berlin", "scale": "0"},
			wantField: "scale",
		},
		{
			name:      "zero max results",
			op:        "places-nearby",
			args:      Args{"lat": "37.42", "lng": "-122.08", "max-results": "0"},
			wantField: "max-results",
		},
		{
			name:      "zero pollen days",
			op:        "pollen",
			args:      Args{"lat": "10", "lng": "20", "days": "0"},
			wantField: "days",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newTestBinder()
			req, err := b.Bind(mustLookup(t, tt.op), tt.args)
			if req != nil {
				t.Fatal("Bind() returned a request despite invalid arguments")
			}
			if !errors.Is(err, apierr.ErrValidation) {
				t.Fatalf("Bind() error = %v, want ErrValidation", err)
			}
			if !strings.Contains(err.Error(), `"`+tt.wantField+`"`) {
				t.Errorf("Bind() error %q does not name field %q", err, tt.wantField)
			}
		})
	}
}

func TestBindOneOfGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		op      string
		args    Args
		wantErr bool
	}{
		{"elevation locations only", "elevation", Args{"locations": "1,1|2,2"}, false},
		{"elevation path only", "elevation", Args{"path": "1,1|2,2"}, false},
		{"elevation both alternatives", "elevation",
			Args{"locations": "1,1", "path": "1,1|2,2"}, true},
		{"elevation neither alternative", "elevation", Args{}, true},
		{"streetview location", "streetview", Args{"location": "40.7,-74.0"}, false},
		{"streetview pano", "streetview", Args{"pano": "abc123"}, false},
		{"streetview both", "streetview",
			Args{"location": "40.7,-74.0", "pano": "abc123"}, true},
		{"streetview neither", "streetview", Args{}, true},
		{"aerial view get by id", "aerial-view-get", Args{"video-id": "v1"}, false},
		{"aerial view get by address", "aerial-view-get",
			Args{"address": "500 W 2nd St Austin TX"}, false},
		{"aerial view get both", "aerial-view-get",
			Args{"video-id": "v1", "address": "x"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := newTestBinder()
			_, err := b.Bind(mustLookup(t, tt.op), tt.args)
			if tt.wantErr {
				if !errors.Is(err, apierr.ErrValidation) {
					t.Errorf("Bind() error = %v, want ErrValidation", err)
				}
			} else if err != nil {
				t.Errorf("Bind() error = %v, want success", err)
			}
		})
	}
}

func TestBindDeterministic(t *testing.T) {
	t.Parallel()

	args := Args{
		"origin":      "Brandenburger Tor, Berlin",
		"destination": "Alexanderplatz, Berlin",
		"mode":        "walking",
		"waypoints":   "Museumsinsel|Hackescher Markt",
		"avoid-tolls": "true",
	}

	b := newTestBinder()
	desc := mustLookup(t, "directions")

	first, err := b.Bind(desc, args)
	if err != nil {
		t.Fatalf("first Bind() error = %v", err)
	}
	second, err := b.Bind(desc, args)
	if err != nil {
		t.Fatalf("second Bind() error = %v", err)
	}

	if first.URL("k") != second.URL("k") {
		t.Errorf("URLs differ:\n%s\n%s", first.URL("k"), second.URL("k"))
	}
	if !bytes.Equal(first.Body, second.Body) {
		t.Errorf("bodies differ:\n%s\n%s", first.Body, second.Body)
	}
}

func TestBindQueryShape(t *testing.T) {
	t.Parallel()

	b := newTestBinder()
	req, err := b.Bind(mustLookup(t, "pollen"), Args{"lat": "48.85", "lng": "2.35"})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	u, err := url.Parse(req.URL("secret"))
	if err != nil {
		t.Fatalf("URL() produced unparseable URL: %v", err)
	}
	q := u.Query()

	if got := q.Get("location.latitude"); got != "48.85" {
		t.Errorf("location.latitude = %q, want 48.85", got)
	}
	if got := q.Get("location.longitude"); got != "2.35" {
		t.Errorf("location.longitude = %q, want 2.35", got)
	}
	if got := q.Get("days"); got != "3" {
		t.Errorf("days default = %q, want 3", got)
	}
	if got := q.Get("key"); got != "secret" {
		t.Errorf("key = %q, want secret", got)
	}
}

func TestBindBodyShape(t *testing.T) {
	t.Parallel()

	b := newTestBinder()
	req, err := b.Bind(mustLookup(t, "directions"), Args{
		"origin":      "A",
		"destination": "B",
		"mode":        "bicycling",
		"waypoints":   "C|D",
		"avoid-tolls": "true",
	})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	body := decodeBody(t, req)
	if got := body["travelMode"]; got != "BICYCLE" {
		t.Errorf("travelMode = %v, want BICYCLE", got)
	}
	origin, _ := body["origin"].(map[string]any)
	if origin["address"] != "A" {
		t.Errorf("origin.address = %v, want A", origin["address"])
	}
	mods, _ := body["routeModifiers"].(map[string]any)
	if mods["avoidTolls"] != true {
		t.Errorf("routeModifiers.avoidTolls = %v, want true", mods["avoidTolls"])
	}
	wps, _ := body["intermediates"].([]any)
	if len(wps) != 2 {
		t.Fatalf("intermediates = %v, want 2 entries", wps)
	}
	first, _ := wps[0].(map[string]any)
	if first["address"] != "C" {
		t.Errorf("intermediates[0].address = %v, want C", first["address"])
	}

	if got := req.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", got)
	}
	if req.Header.Get("X-Goog-FieldMask") == "" {
		t.Error("X-Goog-FieldMask header missing")
	}
}

func TestBindLatLngBodyExpansion(t *testing.T) {
	t.Parallel()

	b := newTestBinder()
	req, err := b.Bind(mustLookup(t, "places-search"), Args{
		"query":    "pizza",
		"location": "40.71,-74.0",
	})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	body := decodeBody(t, req)
	bias, _ := body["locationBias"].(map[string]any)
	circle, _ := bias["circle"].(map[string]any)
	center, _ := circle["center"].(map[string]any)
	if center["latitude"] != 40.71 || center["longitude"] != -74.0 {
		t.Errorf("center = %v, want 40.71/-74", center)
	}
	// The dependent radius default engages only alongside location.
	if circle["radius"] != 5000.0 {
		t.Errorf("radius = %v, want default 5000", circle["radius"])
	}
}

func TestBindDependentDefaultSuppressed(t *testing.T) {
	t.Parallel()

	b := newTestBinder()
	req, err := b.Bind(mustLookup(t, "places-search"), Args{"query": "pizza"})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	body := decodeBody(t, req)
	if _, ok := body["locationBias"]; ok {
		t.Errorf("locationBias present without location: %s", req.Body)
	}
}

func TestBindPathSubstitution(t *testing.T) {
	t.Parallel()

	b := newTestBinder()

	req, err := b.Bind(mustLookup(t, "place-details"), Args{"place-id": "ChIJabc"})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if !strings.Contains(req.URL("k"), "/v1/places/ChIJabc?") {
		t.Errorf("URL = %q, want place id substituted", req.URL("k"))
	}

	// Resource names keep their slashes.
	req, err = b.Bind(mustLookup(t, "place-photo"),
		Args{"photo-ref": "places/ChIJabc/photos/ref1"})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if !strings.Contains(req.URL("k"), "/v1/places/ChIJabc/photos/ref1/media?") {
		t.Errorf("URL = %q, want raw resource name in path", req.URL("k"))
	}
}

func TestBindGeolocationLists(t *testing.T) {
	t.Parallel()

	b := newTestBinder()
	req, err := b.Bind(mustLookup(t, "geolocation"), Args{
		"wifi": "00:11:22:33:44:55,-65|66:77:88:99:aa:bb",
		"cell": "12345,67,310,410",
	})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	body := decodeBody(t, req)
	aps, _ := body["wifiAccessPoints"].([]any)
	if len(aps) != 2 {
		t.Fatalf("wifiAccessPoints = %v, want 2 entries", aps)
	}
	first, _ := aps[0].(map[string]any)
	if first["macAddress"] != "00:11:22:33:44:55" || first["signalStrength"] != -65.0 {
		t.Errorf("access point = %v, want MAC + signal", first)
	}
	second, _ := aps[1].(map[string]any)
	if _, ok := second["signalStrength"]; ok {
		t.Errorf("access point without signal should omit signalStrength: %v", second)
	}

	towers, _ := body["cellTowers"].([]any)
	tower, _ := towers[0].(map[string]any)
	if tower["cellId"] != 12345.0 || tower["mobileNetworkCode"] != 410.0 {
		t.Errorf("cell tower = %v, want parsed components", tower)
	}
	if body["considerIp"] != true {
		t.Errorf("considerIp default = %v, want true", body["considerIp"])
	}
}

func TestBindJSONFileBody(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	model := `{"model": {"shipments": [], "vehicles": []}}`
	if err := afero.WriteFile(fs, "/tours.json", []byte(model), 0o644); err != nil {
		t.Fatalf("write input file: %v", err)
	}

	b := New(fs)
	req, err := b.Bind(mustLookup(t, "route-optimize"),
		Args{"input": "/tours.json", "project": "demo"})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	if !strings.Contains(req.URL("k"), "/v1/projects/demo:optimizeTours?") {
		t.Errorf("URL = %q, want project substituted", req.URL("k"))
	}
	body := decodeBody(t, req)
	if _, ok := body["model"]; !ok {
		t.Errorf("body = %s, want file content as body", req.Body)
	}

	// Unreadable and malformed inputs fail validation before any send.
	if _, err := b.Bind(mustLookup(t, "route-optimize"),
		Args{"input": "/missing.json"}); !errors.Is(err, apierr.ErrValidation) {
		t.Errorf("missing file error = %v, want ErrValidation", err)
	}
	if err := afero.WriteFile(fs, "/broken.json", []byte("{"), 0o644); err != nil {
		t.Fatalf("write broken file: %v", err)
	}
	if _, err := b.Bind(mustLookup(t, "route-optimize"),
		Args{"input": "/broken.json"}); !errors.Is(err, apierr.ErrValidation) {
		t.Errorf("malformed file error = %v, want ErrValidation", err)
	}
}

func TestBindFieldMaskOverride(t *testing.T) {
	t.Parallel()

	b := newTestBinder()
	req, err := b.Bind(mustLookup(t, "places-search"),
		Args{"query": "pizza", "fields": "places.id,places.displayName"})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}
	if got := req.Header.Get("X-Goog-FieldMask"); got != "places.id,places.displayName" {
		t.Errorf("X-Goog-FieldMask = %q, want override", got)
	}
}

func TestBindEmbedURLLocal(t *testing.T) {
	t.Parallel()

	b := newTestBinder()
	req, err := b.Bind(mustLookup(t, "embed-url"),
		Args{"mode": "view", "center": "52.52,13.40", "zoom": "12"})
	if err != nil {
		t.Fatalf("Bind() error = %v", err)
	}

	u := req.URL("secret")
	if !strings.HasPrefix(u, "https://www.google.com/maps/embed/v1/view?") {
		t.Errorf("URL = %q, want embed view prefix", u)
	}
	if !strings.Contains(u, "center=52.52%2C13.4") {
		t.Errorf("URL = %q, want center pair", u)
	}
}
