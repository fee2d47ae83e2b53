package panel

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/models"
)

// Kind is the input widget a field renders as.
type Kind string

const (
	KindText   Kind = "text"
	KindNumber Kind = "number"
	KindSecret Kind = "secret"
	KindSelect Kind = "select"
	KindJSON   Kind = "json"
	KindList   Kind = "list"
)

// Option is one choice of a select field.
type Option struct {
	Value string
	Label string
}

// Link points to external documentation for a field.
type Link struct {
	URL  string
	Text string
}

// Field describes how to render and edit one key of a section.
type Field struct {
	Key   string
	Label string
	Kind  Kind

	// Value is the editable text of the current value.
	Value string

	// Options and Hint are set for selects only. Hint describes the
	// selected option.
	Options []Option
	Hint    string

	Link *Link
}

// Selected returns the index of the current value in Options, or -1.
func (f Field) Selected() int {
	for i, o := range f.Options {
		if o.Value == f.Value {
			return i
		}
	}
	return -1
}

// Next returns the option following the current one, wrapping around.
func (f Field) Next() (Option, bool) {
	if len(f.Options) == 0 {
		return Option{}, false
	}
	return f.Options[(f.Selected()+1)%len(f.Options)], true
}

// Masked returns the value as shown while a secret is hidden.
func (f Field) Masked() string {
	if f.Kind != KindSecret || f.Value == "" {
		return f.Value
	}
	return strings.Repeat("•", min(len([]rune(f.Value)), 12))
}

// SectionView is the render-ready form of one section.
type SectionView struct {
	Key    models.SectionKey
	Title  string
	Fields []Field
}

// Field returns the field named key.
func (v SectionView) Field(key string) (Field, bool) {
	for _, f := range v.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

var secretMarkers = []string{"password", "secret", "api_key"}

// IsSecret reports whether key holds a credential that must be masked.
func IsSecret(section models.SectionKey, key string) bool {
	if section == models.SectionAPIKeys {
		return true
	}
	lower := strings.ToLower(key)
	for _, marker := range secretMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Label turns a snake_case key into words with capitalized initials.
func Label(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// fieldOrder lists the keys shown first, in this order. Other keys follow
// sorted.
var fieldOrder = map[models.SectionKey][]string{
	models.SectionGeneral: {models.KeyLogLevel, models.KeyLanguage, models.KeyTimeFormat, models.KeySystemUnit},
	models.SectionLogging: {models.KeyLogLevel},
	models.SectionUnits:   {models.KeySystemUnit, models.KeyTimeFormat},
}

func orderedKeys(section models.SectionKey, data models.Section) []string {
	keys := make([]string, 0, len(data))
	seen := make(map[string]bool, len(data))
	for _, k := range fieldOrder[section] {
		if _, ok := data[k]; ok {
			keys = append(keys, k)
			seen[k] = true
		}
	}

	rest := make([]string, 0, len(data))
	for k := range data {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(keys, rest...)
}

// BuildSection maps data to the fields of section key. title falls back to
// [Title] when empty.
func BuildSection(key models.SectionKey, title string, data models.Section) SectionView {
	if title == "" {
		title = Title(key)
	}

	view := SectionView{Key: key, Title: title, Fields: make([]Field, 0, len(data))}
	for _, k := range orderedKeys(key, data) {
		view.Fields = append(view.Fields, BuildField(key, k, data[k]))
	}
	return view
}

// BuildField maps a single value to its field descriptor.
func BuildField(section models.SectionKey, key string, value any) Field {
	f := Field{
		Key:   key,
		Label: Label(key),
		Value: service.FormatValue(value),
		Link:  linkFor(section, key),
	}

	if sel, ok := selects[key]; ok {
		f.Kind = KindSelect
		f.Options = sel.options(f.Value)
		f.Hint = sel.hints[f.Value]
		return f
	}

	switch value.(type) {
	case map[string]any, models.Section:
		f.Kind = KindJSON
	case []any, []string:
		f.Kind = KindList
	case float64, int, int64:
		f.Kind = KindNumber
	default:
		f.Kind = KindText
	}

	if f.Kind != KindJSON && f.Kind != KindList && IsSecret(section, key) {
		f.Kind = KindSecret
	}
	return f
}
