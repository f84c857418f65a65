package remap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestParseHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token  string
		source string
		target string
		ok     bool
	}{
		{"ab=xy", "ab", "xy", true},
		{"aab=xyy", "ab", "xy", true},
		{"a=b=c", "", "", false}, // right side `b=c` has three characters
		{"ab=x=", "ab", "x=", true},
		{"ab=x", "", "", false},
		{"aab=xyz", "", "", false},
		{"=xy", "", "", false},
		{"ab=", "", "", false},
		{"abc", "", "", false},
		{"", "", "", false},
		{"日本=にほ", "日本", "にほ", true},
	}

	for _, test := range tests {
		h, err := ParseHint(test.token)
		if !test.ok {
			require.Error(t, err, test.token)
			require.True(t, errors.Is(err, ErrHintDropped), test.token)
			require.Empty(t, h.Source, test.token)
			require.Empty(t, h.Target, test.token)
			continue
		}
		require.NoError(t, err, test.token)
		require.Equal(t, test.source, string(h.Source), test.token)
		require.Equal(t, test.target, string(h.Target), test.token)
		require.Equal(t, len(h.Source), len(h.Target))
	}
}

func TestParseHintReason(t *testing.T) {
	t.Parallel()

	_, err := ParseHint("abc")
	require.Contains(t, err.Error(), "bad syntax")
	_, err = ParseHint("=x")
	require.Contains(t, err.Error(), "empty source")
	_, err = ParseHint("aab=xyz")
	require.Contains(t, err.Error(), "counts not equal")
}

func TestParseHints(t *testing.T) {
	t.Parallel()

	hints, err := ParseHints([]string{"ab=xy", "ab=x", "c=z", "nope"})
	require.Len(t, hints, 2)
	require.Equal(t, "ab=xy", hints[0].String())
	require.Equal(t, "c=z", hints[1].String())

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	for _, e := range errs {
		require.True(t, errors.Is(e, ErrHintDropped))
	}

	hints, err = ParseHints(nil)
	require.NoError(t, err)
	require.Empty(t, hints)
}

func TestHintChars(t *testing.T) {
	t.Parallel()

	h, err := ParseHint("ab=bc")
	require.NoError(t, err)
	require.Equal(t, "abc", h.Chars().String())
}
