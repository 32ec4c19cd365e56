// SPDX-License-Identifier: MIT

package idx_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/indexvec/idx"
)

type span struct {
	Start Idx32 `json:"start" yaml:"start"`
	End   Idx32 `json:"end" yaml:"end"`
}

func TestOf_JSON(t *testing.T) {
	in := span{Start: idx.New[Idx32](2), End: idx.New[Idx32](9)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.JSONEq(t, `{"start":2,"end":9}`, string(data))

	var out span
	require.NoError(t, json.Unmarshal(data, &out))
	require.Equal(t, in, out)

	// map keys go through MarshalText
	keyed, err := json.Marshal(map[Idx32]string{idx.New[Idx32](3): "c"})
	require.NoError(t, err)
	require.JSONEq(t, `{"3":"c"}`, string(keyed))
}

func TestOf_JSONOverflowIsError(t *testing.T) {
	var s SmallCheckedEarly
	err := json.Unmarshal([]byte(`200`), &s)
	require.ErrorIs(t, err, idx.ErrOverflow)

	err = json.Unmarshal([]byte(`-1`), &s)
	require.ErrorIs(t, err, idx.ErrSyntax)

	// unchecked domains accept and truncate
	var u SmallUnchecked
	require.NoError(t, json.Unmarshal([]byte(`300`), &u))
	require.Equal(t, uint8(300&0xff), u.Raw())
}

func TestOf_YAML(t *testing.T) {
	in := span{Start: idx.New[Idx32](1), End: idx.New[Idx32](4)}
	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	require.Equal(t, "start: 1\nend: 4\n", string(data))

	var out span
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.Equal(t, in, out)

	var zm ZeroMax
	err = yaml.Unmarshal([]byte(`1`), &zm)
	require.ErrorIs(t, err, idx.ErrOverflow)

	err = yaml.Unmarshal([]byte(`[1]`), &zm)
	require.ErrorIs(t, err, idx.ErrSyntax)
}

func TestOf_Text(t *testing.T) {
	var i Idx16
	require.NoError(t, i.UnmarshalText([]byte("65535")))
	require.True(t, i.EqUsize(65535))
	require.ErrorIs(t, i.UnmarshalText([]byte("65536")), idx.ErrOverflow)
	require.ErrorIs(t, i.UnmarshalText([]byte("x")), idx.ErrSyntax)

	text, err := i.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "65535", string(text))
}
