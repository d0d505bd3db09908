package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// genericFailure is shown when an error response carries no usable detail.
const genericFailure = "Request failed."

// FormatDetail renders the backend's `detail` error payload as a single
// human-readable message.
//
// The backend emits three shapes:
//   - a plain string (application errors),
//   - a list of validation items, each either a string or an object with
//     `loc` (path segments) and `msg`,
//   - an arbitrary object.
//
// List items with a location render as "loc -> path: msg" and items are
// joined with " | ". Anything unrecognized is serialized as JSON text.
func FormatDetail(detail any) string {
	if detail == nil || detail == false || detail == "" {
		return genericFailure
	}
	switch d := detail.(type) {
	case string:
		return d
	case []any:
		parts := make([]string, 0, len(d))
		for _, item := range d {
			parts = append(parts, formatDetailItem(item))
		}
		return strings.Join(parts, " | ")
	case map[string]any:
		return jsonText(d)
	default:
		return fmt.Sprintf("%v", d)
	}
}

func formatDetailItem(item any) string {
	switch it := item.(type) {
	case string:
		return it
	case map[string]any:
		path := locPath(it["loc"])
		msg, _ := it["msg"].(string)
		if msg == "" {
			msg = jsonText(it)
		}
		if path != "" {
			return path + ": " + msg
		}
		return msg
	default:
		return fmt.Sprintf("%v", it)
	}
}

func locPath(loc any) string {
	segs, ok := loc.([]any)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		switch v := s.(type) {
		case string:
			parts = append(parts, v)
		case float64:
			// Array indexes come through as JSON numbers.
			parts = append(parts, trimFloat(v))
		default:
			parts = append(parts, fmt.Sprintf("%v", v))
		}
	}
	return strings.Join(parts, " -> ")
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%v", f)
}

func jsonText(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
