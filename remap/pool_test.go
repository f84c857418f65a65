package remap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPoolDefault(t *testing.T) {
	t.Parallel()

	pool := BuildPool(Config{}, nil, nil)
	require.True(t, pool.Equal(NewCharSet(DefaultPool)))
	require.Equal(t, 26+26+10+32, pool.Len())
}

func TestBuildPoolFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		cfg      Config
		expected string
	}{
		{Config{Pool: "xxyz"}, "xyz"},
		{Config{UseLower: true}, Lowercase},
		{Config{UseUpper: true}, Uppercase},
		{Config{UseAlpha: true, UseLower: true}, Letters},
		{Config{UseNumeric: true}, Digits},
		{Config{UsePunct: true}, Punctuation},
		{Config{Pool: "é", UseNumeric: true}, "é" + Digits},
	}

	for _, test := range tests {
		pool := BuildPool(test.cfg, nil, nil)
		require.True(t, pool.Equal(NewCharSet(test.expected)), "%+v: %s", test.cfg, pool)
	}
}

func TestBuildPoolFiltering(t *testing.T) {
	t.Parallel()

	cfg := Config{Pool: "abcdefxyz"}
	hints, err := ParseHints([]string{"ab=xy"})
	require.NoError(t, err)
	ignore := NewCharSet("cz")

	pool := BuildPool(cfg, ignore, hints)
	require.Equal(t, "def", pool.String())
}

func TestBuildPoolIdempotent(t *testing.T) {
	t.Parallel()

	cfg := Config{Pool: "hello", UseNumeric: true, UsePunct: true}
	ignore := BuildIgnore(Config{Ignore: "l0"})
	require.True(t, BuildPool(cfg, ignore, nil).Equal(BuildPool(cfg, ignore, nil)))
}

func TestDrawPool(t *testing.T) {
	t.Parallel()

	p := newDrawPool(NewCharSet("abc"))
	r := rand.New(rand.NewSource(1))
	seen := NewCharSet("")
	for !p.empty() {
		ch := p.draw(r)
		require.False(t, seen.Has(ch))
		seen.Add(ch)
	}
	require.Equal(t, "abc", seen.String())
}
