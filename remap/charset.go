package remap

import (
	"sort"
	"strings"
)

const (
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Letters     = Lowercase + Uppercase
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	Whitespace  = " \n\r"

	// DefaultPool is used when no pool text or class flag yields anything.
	DefaultPool = Letters + Digits + Punctuation
)

// Classes lists every named character class, in display order.
var Classes = []struct {
	Name  string
	Chars string
}{
	{"lower", Lowercase},
	{"upper", Uppercase},
	{"alpha", Letters},
	{"numeric", Digits},
	{"punct", Punctuation},
	{"space", Whitespace},
	{"default", DefaultPool},
}

type CharSet map[rune]struct{}

func NewCharSet(text string) CharSet {
	s := make(CharSet, len(text))
	s.AddString(text)
	return s
}

func (s CharSet) Has(ch rune) bool {
	_, ok := s[ch]
	return ok
}

func (s CharSet) Add(ch rune) {
	s[ch] = struct{}{}
}

func (s CharSet) AddString(text string) {
	for _, ch := range text {
		s[ch] = struct{}{}
	}
}

func (s CharSet) Remove(ch rune) {
	delete(s, ch)
}

func (s CharSet) Len() int {
	return len(s)
}

// Runes returns the members in ascending order.
func (s CharSet) Runes() []rune {
	rs := make([]rune, 0, len(s))
	for ch := range s {
		rs = append(rs, ch)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return rs
}

func (s CharSet) Equal(other CharSet) bool {
	if len(s) != len(other) {
		return false
	}
	for ch := range s {
		if !other.Has(ch) {
			return false
		}
	}
	return true
}

func (s CharSet) Clone() CharSet {
	c := make(CharSet, len(s))
	for ch := range s {
		c[ch] = struct{}{}
	}
	return c
}

func (s CharSet) String() string {
	b := strings.Builder{}
	for _, ch := range s.Runes() {
		b.WriteRune(ch)
	}
	return b.String()
}

// dedup drops repeated runes, first occurrence wins.
func dedup(text string) []rune {
	seen := make(CharSet)
	out := []rune{}
	for _, ch := range text {
		if seen.Has(ch) {
			continue
		}
		seen.Add(ch)
		out = append(out, ch)
	}
	return out
}
