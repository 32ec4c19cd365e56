// SPDX-License-Identifier: MIT
//
// File: codec.go
// Role: Text, JSON and YAML encodings of Of as its decimal position.
// Decoding validates through the same policy gate as FromUsize but returns
// the overflow as an error instead of panicking.

package idx

import (
	"fmt"
	"math/bits"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MarshalText encodes the position in decimal.
func (i Of[R, D]) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(i.raw), 10), nil
}

// UnmarshalText decodes a decimal position.
func (i *Of[R, D]) UnmarshalText(text []byte) error {
	return i.decode(string(text))
}

// MarshalJSON encodes the position as a JSON number.
func (i Of[R, D]) MarshalJSON() ([]byte, error) {
	return i.MarshalText()
}

// UnmarshalJSON decodes a JSON number.
func (i *Of[R, D]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	return i.decode(string(data))
}

// MarshalYAML encodes the position as a YAML integer.
func (i Of[R, D]) MarshalYAML() (interface{}, error) {
	return uint64(i.raw), nil
}

// UnmarshalYAML decodes a YAML integer scalar.
func (i *Of[R, D]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected scalar", ErrSyntax, node.Line)
	}

	return i.decode(node.Value)
}

func (i *Of[R, D]) decode(s string) error {
	n, err := strconv.ParseUint(s, 10, bits.UintSize)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if err = i.checkIndex(uint(n)); err != nil {
		return err
	}
	*i = Of[R, D]{raw: R(n)}

	return nil
}
