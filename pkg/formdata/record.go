// Package formdata models the flat key/value snapshot of the profile form and
// its collection from named input fields.
//
// A Record holds three value shapes: scalar strings for plain inputs, ordered
// string lists for checkbox groups, and a single derived integer for age. The
// photo is never part of a Record; it is owned by the session state and
// persisted under its own key.
package formdata

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Record maps field names to collected values. Values are one of: string,
// []string, or int (the derived age).
type Record map[string]any

// AgeKey is the derived field computed from DateOfBirthKey. It is never
// settable through Collect input fields.
const (
	AgeKey         = "age"
	DateOfBirthKey = "dateOfBirth"
)

// String returns the scalar value for key, or "" when the key is absent or
// holds a non-scalar value.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// List returns the list value for key, or nil when absent or non-list.
func (r Record) List(key string) []string {
	l, _ := r[key].([]string)
	return l
}

// Int returns the integer value for key and whether it was present.
func (r Record) Int(key string) (int, bool) {
	n, ok := r[key].(int)
	return n, ok
}

// Filled reports whether key holds a truthy value: a non-empty string, a
// non-empty list, or a non-zero integer. Absent keys, empty strings, empty
// lists and zero all count as unfilled.
func (r Record) Filled(key string) bool {
	switch v := r[key].(type) {
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	case int:
		return v != 0
	default:
		return false
	}
}

// Keys returns the record's keys in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		if list, ok := v.([]string); ok {
			copied := make([]string, len(list))
			copy(copied, list)
			out[k] = copied
			continue
		}
		out[k] = v
	}
	return out
}

// UnmarshalJSON decodes the flat persisted object, normalising JSON types back
// into the record's value shapes: strings stay strings, arrays become string
// lists, and numbers become integers.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(Record, len(raw))
	for key, value := range raw {
		normalised, err := normaliseValue(key, value)
		if err != nil {
			return err
		}
		out[key] = normalised
	}
	*r = out
	return nil
}

func normaliseValue(key string, value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return int(v), nil
	case []any:
		list := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("formdata: field %q has non-string list item %T", key, item)
			}
			list = append(list, s)
		}
		return list, nil
	case nil:
		return "", nil
	default:
		return nil, fmt.Errorf("formdata: field %q has unsupported value type %T", key, value)
	}
}
