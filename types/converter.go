package types

import (
	"bytes"
	"encoding/json"
	"reflect"

	"github.com/spf13/cast"
)

// ParseJSON decodes raw into a generic value. Strings, byte slices and
// json.RawMessage are decoded; any other value is returned as is.
func ParseJSON(raw any) (any, error) {
	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	case json.RawMessage:
		data = v
	default:
		return raw, nil
	}

	var out any
	if err := json.Unmarshal(bytes.TrimSpace(data), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AsJSON returns v as a JSON object when it is one. Maps with non-string keys
// (as produced by YAML decoders) are converted.
func AsJSON(v any) (JSON, bool) {
	switch m := v.(type) {
	case JSON:
		return m, true
	case map[any]any:
		out, err := cast.ToStringMapE(m)
		return out, err == nil
	}
	return nil, false
}

// IsArray reports whether v is a non-nil slice or array of any element type.
func IsArray(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return !rv.IsNil()
	case reflect.Array:
		return true
	}
	return false
}

// AsString returns the string form of scalars, and false for anything else.
func AsString(v any) (string, bool) {
	switch v.(type) {
	case nil, JSON, Array:
		return "", false
	}
	s, err := cast.ToStringE(v)
	return s, err == nil
}

// IsTrue reports whether v is the boolean true. Truthy strings and numbers
// do not count.
func IsTrue(v any) bool {
	b, ok := v.(bool)
	return ok && b
}

// Convert re-encodes v into out through JSON, honouring out's json tags.
func Convert(v any, out any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
