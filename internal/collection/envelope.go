package collection

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/albapepper/octofit-dashboard/internal/record"
)

// Shape describes which envelope a body used.
type Shape string

const (
	ShapeArray       Shape = "array"
	ShapePaginated   Shape = "paginated"
	ShapeUnsupported Shape = "unsupported"
)

// Normalize decodes a response body into records.
//
// A bare JSON array is used as-is. An object carrying a `results` array is
// unwrapped and every other member ignored. Any other valid JSON yields an
// empty list with ShapeUnsupported rather than an error; only bodies that are
// not JSON at all fail. Array elements that are not objects become empty
// records so the count and order of the envelope are preserved.
func Normalize(body []byte) ([]record.Record, Shape, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, "", err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("trailing data after JSON value")
	}

	switch v := raw.(type) {
	case []any:
		return toRecords(v), ShapeArray, nil
	case map[string]any:
		if results, ok := v["results"].([]any); ok {
			return toRecords(results), ShapePaginated, nil
		}
	}
	return []record.Record{}, ShapeUnsupported, nil
}

func toRecords(items []any) []record.Record {
	out := make([]record.Record, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			obj = map[string]any{}
		}
		out = append(out, record.Record(obj))
	}
	return out
}
