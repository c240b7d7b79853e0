// Package record holds the schemaless records returned by the OctoFit API and
// the field-resolution rules used to display them.
package record

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Record is one decoded resource object. Schemas differ per collection and
// any field may be absent.
type Record map[string]any

// Lookup returns the first present, non-null value among keys.
func (r Record) Lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Number resolves a numeric field by priority. The first key holding a
// non-zero extractable value wins, mirroring the `a || b || 0` fallbacks the
// API's consumers have always used. Missing fields read as 0.
func (r Record) Number(keys ...string) float64 {
	for _, k := range keys {
		if f, ok := ExtractValue(r[k]); ok && f != 0 {
			return f
		}
	}
	return 0
}

// Text resolves a string field by priority. The first non-empty value wins;
// placeholder is returned when none is present.
func (r Record) Text(placeholder string, keys ...string) string {
	for _, k := range keys {
		if s, ok := textOf(r[k]); ok && s != "" {
			return s
		}
	}
	return placeholder
}

// ID returns the record's identifier as text, or "" when absent.
func (r Record) ID() string {
	return r.Text("", "id", "_id")
}

// Clone returns a shallow copy so callers can hand records out without
// sharing the top-level map.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// ExtractValue normalizes a numeric value from the shapes the API emits.
//
// Numbers arrive as json.Number when decoded with UseNumber, as float64 from
// plain decoding, occasionally as numeric strings, and as nested aggregate
// objects like {"total": 15}. Returns ok=false if not extractable. NaN and
// infinities are never extractable.
func ExtractValue(val any) (float64, bool) {
	if val == nil {
		return 0, false
	}

	switch v := val.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case bool:
		return 0, false
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	case map[string]any:
		for _, key := range []string{"total", "all", "count", "value"} {
			if inner, exists := v[key]; exists && inner != nil {
				return ExtractValue(inner)
			}
		}
		return 0, false
	default:
		return 0, false
	}
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func textOf(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", false
	case string:
		return strings.TrimSpace(v), true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	case map[string]any, []any:
		return "", false
	default:
		return fmt.Sprint(v), true
	}
}
