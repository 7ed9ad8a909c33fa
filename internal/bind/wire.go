package bind

import (
	"fmt"
	"strconv"
	"strings"
)

// queryString renders a coerced value in its canonical query/path form.
func queryString(val any) string {
	switch v := val.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case latLng:
		return formatLatLng(v)
	case []latLng:
		parts := make([]string, len(v))
		for i, ll := range v {
			parts[i] = formatLatLng(ll)
		}
		return strings.Join(parts, "|")
	case []string:
		return strings.Join(v, "|")
	default:
		return fmt.Sprint(v)
	}
}

func formatLatLng(ll latLng) string {
	return strconv.FormatFloat(ll.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(ll.Lng, 'f', -1, 64)
}

// bodyValue converts a coerced value to its JSON body representation.
func bodyValue(val any) any {
	switch v := val.(type) {
	case latLng:
		return map[string]any{"latitude": v.Lat, "longitude": v.Lng}
	case []latLng:
		out := make([]any, len(v))
		for i, ll := range v {
			out[i] = bodyValue(ll)
		}
		return out
	default:
		return v
	}
}

// setBodyPath sets val at a dotted path in the body tree. A "[]" path
// segment marks a list: each element of val is wrapped in an object built
// from the remainder of the path (or used bare when nothing follows).
// Scalars at a "[]" path become single-element lists.
func setBodyPath(body map[string]any, path string, val any) error {
	if idx := strings.Index(path, "[]"); idx >= 0 {
		head := strings.TrimSuffix(path[:idx], ".")
		tail := strings.TrimPrefix(path[idx+2:], ".")
		items := listify(val)

		elems := make([]any, 0, len(items))
		for _, item := range items {
			if tail == "" {
				elems = append(elems, bodyValue(item))
				continue
			}
			elem := make(map[string]any)
			if err := setBodyPath(elem, tail, item); err != nil {
				return err
			}
			elems = append(elems, elem)
		}
		return setScalarPath(body, head, elems)
	}
	return setScalarPath(body, path, bodyValue(val))
}

// listify views the coerced value as a slice of elements.
func listify(val any) []any {
	switch v := val.(type) {
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	case []any:
		return v
	case []latLng:
		out := make([]any, len(v))
		for i, ll := range v {
			out[i] = ll
		}
		return out
	default:
		return []any{v}
	}
}

// setScalarPath walks/creates nested objects along a dotted path.
func setScalarPath(body map[string]any, path string, val any) error {
	parts := strings.Split(path, ".")
	cur := body
	for i, part := range parts {
		if i == len(parts)-1 {
			cur[part] = val
			return nil
		}
		next, ok := cur[part]
		if !ok {
			child := make(map[string]any)
			cur[part] = child
			cur = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("wire path %q collides with an existing field", path)
		}
		cur = child
	}
	return nil
}
