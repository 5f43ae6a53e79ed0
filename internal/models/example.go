// ABOUTME: Example is an opaque annotated item held by the dataset store
// ABOUTME: Carried as raw JSON so the store's own record shape passes through
package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Example is a single annotated task. Its structure belongs to whoever
// produced it; this package only guarantees it is one valid JSON value.
type Example json.RawMessage

// ParseExample validates data as JSON and compacts it onto a single line.
func ParseExample(data []byte) (Example, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("example is empty")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("example is not valid JSON: %w", err)
	}
	return Example(buf.Bytes()), nil
}

// MarshalJSON returns the example bytes unchanged.
func (e Example) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	return e, nil
}

// UnmarshalJSON stores a copy of data.
func (e *Example) UnmarshalJSON(data []byte) error {
	if e == nil {
		return errors.New("models.Example: UnmarshalJSON on nil pointer")
	}
	*e = append((*e)[0:0], data...)
	return nil
}

// Decode unmarshals the example into an arbitrary Go value, for renderers
// that need structure (YAML export).
func (e Example) Decode() (interface{}, error) {
	var v interface{}
	if err := json.Unmarshal(e, &v); err != nil {
		return nil, err
	}
	return v, nil
}
