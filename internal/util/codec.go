package util

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// DecodeField turns a stored cell into a JSON list or object. It never fails:
// absent, NaN, blank, unparsable or scalar input yields def. Values that are
// already lists or maps are returned unchanged.
func DecodeField(raw any, def any) any {
	switch v := raw.(type) {
	case nil:
		return def
	case float64, float32:
		// empty spreadsheet cells surface as NaN in some readers; other
		// numbers are scalars and fall back too
		return def
	case string:
		return decodeText(v, def)
	case []byte:
		return decodeText(string(v), def)
	case json.RawMessage:
		return decodeText(string(v), def)
	}

	rv := reflect.ValueOf(raw)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return def
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		if rv.IsNil() {
			return def
		}
		return raw
	case reflect.Array, reflect.Struct:
		return raw
	}
	return def
}

func decodeText(s string, def any) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	var out any
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return def
	}
	switch out.(type) {
	case []any, map[string]any:
		return out
	}
	return def
}

// DecodeAs decodes raw like DecodeField and converts the result into T.
// Shape mismatches (an object where a list is expected) yield def.
func DecodeAs[T any](raw any, def T) T {
	v := DecodeField(raw, nil)
	if v == nil {
		return def
	}
	b, err := json.Marshal(v)
	if err != nil {
		return def
	}
	var out T
	if err := json.Unmarshal(b, &out); err != nil {
		return def
	}
	return out
}

// EncodeField serialises lists, maps and structs to JSON text. Scalars are
// returned unchanged. Nil lists encode as "[]" and nil maps as "{}".
func EncodeField(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	switch v := value.(type) {
	case json.RawMessage:
		return string(v), nil
	case []byte:
		return string(v), nil
	}

	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return "[]", nil
		}
	case reflect.Map:
		if rv.IsNil() {
			return "{}", nil
		}
	case reflect.Array, reflect.Struct:
	default:
		return rv.Interface(), nil
	}

	b, err := json.Marshal(rv.Interface())
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", value, err)
	}
	return string(b), nil
}

// CellText renders an encoded value as the text stored in a cell.
func CellText(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if math.IsNaN(v) {
			return ""
		}
	}
	return fmt.Sprint(value)
}
