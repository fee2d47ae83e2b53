package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeField(t *testing.T) {
	tests := []struct {
		name     string
		current  any
		raw      string
		want     any
		wantNote bool
	}{
		{name: "array split and trimmed", current: []any{"a"}, raw: "x, y", want: []any{"x", "y"}},
		{name: "array drops empties", current: []any{}, raw: " x,, ,y ,", want: []any{"x", "y"}},
		{name: "array empty text", current: []any{"a"}, raw: "", want: []any{}},
		{name: "object parsed", current: map[string]any{}, raw: `{"a": 1}`, want: map[string]any{"a": 1.0}},
		{name: "object invalid kept raw", current: map[string]any{}, raw: `{"a":`, want: `{"a":`, wantNote: true},
		{name: "number parsed", current: 5672.0, raw: " 5673 ", want: 5673.0},
		{name: "number invalid kept raw", current: 5672.0, raw: "port", want: "port"},
		{name: "string", current: "INFO", raw: "DEBUG", want: "DEBUG"},
		{name: "new field", current: nil, raw: "value", want: "value"},
		{name: "bool stored as text", current: true, raw: "false", want: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, note := decodeField(tt.current, tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantNote, note != "")
		})
	}
}

func TestEncodeField(t *testing.T) {
	assert.Equal(t, "x, y", FormatValue([]any{"x", "y"}))
	assert.Equal(t, "5672", FormatValue(5672.0))
	assert.Equal(t, "0.5", FormatValue(0.5))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "", FormatValue(nil))
	assert.Equal(t, "{\n  \"a\": 1\n}", FormatValue(map[string]any{"a": 1}))
}

func TestListRoundTrip(t *testing.T) {
	value, _ := decodeField([]any{}, "x, y")
	assert.Equal(t, "x, y", FormatValue(value))
}
