// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: JSON and YAML encodings of Slice/Vec as a plain sequence.
// No index metadata is written. Decoding re-checks the length against the
// index type and reports overflow as an error wrapping idx.ErrOverflow.

package vec

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the elements as a JSON array ("[]" when empty).
func (s Slice[I, T]) MarshalJSON() ([]byte, error) {
	if s.Raw == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(s.Raw)
}

// UnmarshalJSON replaces the contents of v with a decoded JSON array.
func (v *Vec[I, T]) UnmarshalJSON(data []byte) error {
	var raw []T
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	return v.adopt(raw)
}

// MarshalYAML encodes the elements as a YAML sequence.
func (s Slice[I, T]) MarshalYAML() (interface{}, error) {
	if s.Raw == nil {
		return []T{}, nil
	}

	return s.Raw, nil
}

// UnmarshalYAML replaces the contents of v with a decoded YAML sequence.
func (v *Vec[I, T]) UnmarshalYAML(node *yaml.Node) error {
	var raw []T
	if err := node.Decode(&raw); err != nil {
		return err
	}

	return v.adopt(raw)
}

func (v *Vec[I, T]) adopt(raw []T) error {
	if _, err := tryIndex[I](uint(len(raw))); err != nil {
		return fmt.Errorf("vec: decoded length %d: %w", len(raw), err)
	}
	v.Raw = raw

	return nil
}
