package remap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMappingOverwriteKeepsOrder(t *testing.T) {
	t.Parallel()

	m := NewMapping()
	m.Set('b', "1")
	m.Set('a', "2")
	m.Set('b', "3")

	require.Equal(t, []rune("ba"), m.Keys())
	v, ok := m.Get('b')
	require.True(t, ok)
	require.Equal(t, "3", v)
	require.False(t, m.Has('c'))
	require.Equal(t, `{"b": "3", "a": "2"}`, m.String())
}

func TestMappingJSON(t *testing.T) {
	t.Parallel()

	m := NewMapping()
	m.Set('z', "a")
	m.Set('"', "<ERROR>")
	m.Set('日', "本")

	bytes, err := m.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `{"z":"a","\"":"<ERROR>","日":"本"}`, string(bytes))

	decoded := NewMapping()
	require.NoError(t, json.Unmarshal(bytes, decoded))
	require.Equal(t, m.Keys(), decoded.Keys())
	require.Equal(t, m.String(), decoded.String())
}

func TestMappingJSONBadKey(t *testing.T) {
	t.Parallel()

	m := NewMapping()
	require.Error(t, json.Unmarshal([]byte(`{"ab":"x"}`), m))
	require.Error(t, json.Unmarshal([]byte(`["a"]`), m))
	require.Error(t, json.Unmarshal([]byte(`{"a":1}`), m))
	require.Error(t, json.Unmarshal([]byte(`{"a":"x"`), m))
	require.Equal(t, 0, m.Len())
}

func TestReverse(t *testing.T) {
	t.Parallel()

	hints, err := ParseHints([]string{"h=q"})
	require.NoError(t, err)
	input := "hello world"
	ignore := NewCharSet(" ")
	pool := BuildPool(Config{UseLower: true}, ignore, hints)
	res := Map(input, pool, ignore, "?", hints, newRand())

	require.Equal(t, input, Reverse(res.Output, res.Mapping))
}

func TestInvertSkipsSentinel(t *testing.T) {
	t.Parallel()

	res := Map("abc", NewCharSet("x"), nil, "?", nil, newRand())
	inv := res.Mapping.Invert()
	require.Equal(t, 1, inv.Len())

	a, _ := res.Mapping.Get('a')
	orig, ok := inv.Get([]rune(a)[0])
	require.True(t, ok)
	require.Equal(t, "a", orig)
}
