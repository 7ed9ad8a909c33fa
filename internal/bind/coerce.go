package bind

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"github.com/tivojn/google-maps-api-skill/internal/registry"
)

// latLng is a validated coordinate pair.
type latLng struct {
	Lat, Lng float64
}

// coerce converts the raw string argument to its typed value per the
// parameter spec, applying enum mapping and structural checks.
func (b *Binder) coerce(p registry.Param, raw string) (any, error) {
	switch p.Type {
	case registry.TypeString:
		return mapEnum(p, raw)

	case registry.TypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fieldErr(p.Name, "%q is not an integer", raw)
		}
		return n, nil

	case registry.TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fieldErr(p.Name, "%q is not a number", raw)
		}
		return f, nil

	case registry.TypeBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fieldErr(p.Name, "%q is not a boolean", raw)
		}
		return v, nil

	case registry.TypeLatLng:
		ll, err := parseLatLng(raw)
		if err != nil {
			return nil, fieldErr(p.Name, "%s", err)
		}
		return ll, nil

	case registry.TypeCoordList:
		items := splitList(raw)
		if err := checkItems(p, len(items)); err != nil {
			return nil, err
		}
		pairs := make([]latLng, 0, len(items))
		for _, item := range items {
			ll, err := parseLatLng(item)
			if err != nil {
				return nil, fieldErr(p.Name, "%s", err)
			}
			pairs = append(pairs, ll)
		}
		return pairs, nil

	case registry.TypeStringList:
		items := splitList(raw)
		if err := checkItems(p, len(items)); err != nil {
			return nil, err
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			mapped, err := mapEnum(p, item)
			if err != nil {
				return nil, err
			}
			out = append(out, mapped)
		}
		return out, nil

	case registry.TypeWifiList:
		items := splitList(raw)
		if err := checkItems(p, len(items)); err != nil {
			return nil, err
		}
		return parseWifiList(p, items)

	case registry.TypeCellList:
		items := splitList(raw)
		if err := checkItems(p, len(items)); err != nil {
			return nil, err
		}
		return parseCellList(p, items)

	case registry.TypeJSONFile:
		data, err := afero.ReadFile(b.fs, raw)
		if err != nil {
			return nil, fieldErr(p.Name, "cannot read %q: %v", raw, err)
		}
		var parsed any
		if err := json.Unmarshal(data, &parsed); err != nil {
			return nil, fieldErr(p.Name, "%q is not valid JSON: %v", raw, err)
		}
		return parsed, nil

	default:
		return nil, fmt.Errorf("bind: unhandled parameter type %q", p.Type)
	}
}

// mapEnum translates an accepted token to its wire value.
func mapEnum(p registry.Param, raw string) (string, error) {
	if p.Enum == nil {
		return raw, nil
	}
	wire, ok := p.Enum[raw]
	if !ok {
		return "", fieldErr(p.Name, "%q is not one of %s", raw, enumTokens(p.Enum))
	}
	return wire, nil
}

// enumTokens lists the accepted tokens, sorted for deterministic error
// messages.
func enumTokens(enum map[string]string) string {
	tokens := make([]string, 0, len(enum))
	for t := range enum {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return strings.Join(tokens, ", ")
}

// splitList splits a pipe-delimited list, dropping empty segments.
func splitList(raw string) []string {
	parts := strings.Split(raw, "|")
	out := parts[:0]
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func checkItems(p registry.Param, n int) error {
	if p.MinItems > 0 && n < p.MinItems {
		return fieldErr(p.Name, "needs at least %d item(s), got %d", p.MinItems, n)
	}
	if p.MaxItems > 0 && n > p.MaxItems {
		return fieldErr(p.Name, "accepts at most %d item(s), got %d", p.MaxItems, n)
	}
	return nil
}

// parseLatLng parses "lat,lng" and range-checks both components.
func parseLatLng(raw string) (latLng, error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return latLng{}, fmt.Errorf("%q is not a lat,lng pair", raw)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return latLng{}, fmt.Errorf("latitude %q is not a number", parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return latLng{}, fmt.Errorf("longitude %q is not a number", parts[1])
	}
	if lat < -90 || lat > 90 {
		return latLng{}, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lng < -180 || lng > 180 {
		return latLng{}, fmt.Errorf("longitude %v out of range [-180, 180]", lng)
	}
	return latLng{Lat: lat, Lng: lng}, nil
}

// parseWifiList parses "MAC[,signalStrength]" items into the geolocation
// wifiAccessPoints shape.
func parseWifiList(p registry.Param, items []string) ([]any, error) {
	out := make([]any, 0, len(items))
	for _, item := range items {
		parts := strings.Split(item, ",")
		mac := strings.TrimSpace(parts[0])
		if mac == "" {
			return nil, fieldErr(p.Name, "access point %q has no MAC address", item)
		}
		ap := map[string]any{"macAddress": mac}
		if len(parts) > 1 {
			signal, err := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, fieldErr(p.Name, "signal strength %q is not an integer", parts[1])
			}
			ap["signalStrength"] = signal
		}
		out = append(out, ap)
	}
	return out, nil
}

// parseCellList parses "cellId[,lac[,mcc[,mnc]]]" items into the
// geolocation cellTowers shape. Missing components default to zero.
func parseCellList(p registry.Param, items []string) ([]any, error) {
	out := make([]any, 0, len(items))
	for _, item := range items {
		parts := strings.Split(item, ",")
		nums := make([]int, 4)
		for i := 0; i < len(parts) && i < 4; i++ {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil {
				return nil, fieldErr(p.Name, "tower component %q is not an integer", parts[i])
			}
			nums[i] = n
		}
		out = append(out, map[string]any{
			"cellId":            nums[0],
			"locationAreaCode":  nums[1],
			"mobileCountryCode": nums[2],
			"mobileNetworkCode": nums[3],
		})
	}
	return out, nil
}
