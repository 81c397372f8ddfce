// Package schema provides tolerant field access over raw tabular records.
//
// Upstream snapshots use different field names for the same concept across
// schema variants ("home_team" vs "team_h" vs "home_team_id"), so every read
// goes through a first-match-wins lookup over an ordered key list declared
// once per logical field.
package schema

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is one raw row from an upstream snapshot.
type Record map[string]any

// Field is a logical field with its ordered list of accepted keys.
type Field struct {
	Name string
	Keys []string
}

// NewField declares a logical field. The first key present in a record wins.
func NewField(name string, keys ...string) Field {
	return Field{Name: name, Keys: keys}
}

// lookup returns the first present key's value.
func (f Field) lookup(r Record) (any, bool) {
	for _, k := range f.Keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String reads the field as a string, or "" when absent.
func (f Field) String(r Record) string {
	v, ok := f.lookup(r)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	}
	return ""
}

// Float reads the field as a float64. Malformed values default to 0 rather
// than propagating NaN.
func (f Field) Float(r Record) float64 {
	v, ok := f.lookup(r)
	if !ok {
		return 0
	}
	return coerceFloat(v)
}

// Int reads the field as an int, truncating fractional values.
func (f Field) Int(r Record) int {
	return int(f.Float(r))
}

// Bool reads the field as a boolean. Accepts true/"true"/1/"yes" (any case)
// as truthy.
func (f Field) Bool(r Record) bool {
	v, ok := f.lookup(r)
	if !ok {
		return false
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		switch strings.ToLower(strings.TrimSpace(b)) {
		case "true", "1", "yes", "y":
			return true
		}
		return false
	default:
		return coerceFloat(v) == 1
	}
}

// Present reports whether any accepted key exists in the record.
func (f Field) Present(r Record) bool {
	_, ok := f.lookup(r)
	return ok
}

func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	case string:
		// Decimal parsing rejects "NaN" and "Inf" strings outright, so a
		// stringified numeric can never leak a non-finite value.
		if d, err := decimal.NewFromString(strings.TrimSpace(n)); err == nil {
			return d.InexactFloat64()
		}
	case bool:
		if n {
			return 1
		}
	}
	return 0
}
