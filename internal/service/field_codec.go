package service

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/NeonGeckoCom/neon-hub-config/models"
)

// decodeField converts text typed by the operator into a value shaped like
// current. note is non-empty when the text was meant as JSON but did not
// parse; the raw text is then returned as the value.
func decodeField(current any, raw string) (value any, note string) {
	switch current.(type) {
	case []any, []string:
		return splitList(raw), ""

	case map[string]any, models.Section:
		var parsed any
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return raw, err.Error()
		}
		return parsed, ""

	case float64, int, int64, json.Number:
		n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return raw, ""
		}
		return n, ""

	default:
		return raw, ""
	}
}

// splitList splits on commas, trims each item and drops empty ones.
func splitList(raw string) []any {
	out := make([]any, 0)
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// FormatValue renders a field value as editable text: lists comma-joined,
// objects as indented JSON.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []any:
		parts := make([]string, len(val))
		for i, item := range val {
			parts[i] = FormatValue(item)
		}
		return strings.Join(parts, ", ")
	case []string:
		return strings.Join(val, ", ")
	case map[string]any, models.Section:
		data, err := json.MarshalIndent(val, "", "  ")
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(data)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}
