package remap

import (
	"strings"
	"unicode/utf8"
)

// Invert returns the value-to-key table of m. Values that are not a single
// character, such as the sentinel, and values shared by several keys are
// left out since they cannot be reversed.
func (m *Mapping) Invert() *Mapping {
	owners := make(map[rune]int)
	for _, k := range m.keys {
		v := m.values[k]
		if utf8.RuneCountInString(v) != 1 {
			continue
		}
		ch, _ := utf8.DecodeRuneInString(v)
		owners[ch] += 1
	}

	inv := NewMapping()
	for _, k := range m.keys {
		v := m.values[k]
		if utf8.RuneCountInString(v) != 1 {
			continue
		}
		ch, _ := utf8.DecodeRuneInString(v)
		if owners[ch] != 1 {
			continue
		}
		inv.Set(ch, string(k))
	}
	return inv
}

// Reverse undoes a substitution made with m. Characters without an inverse
// pass through.
func Reverse(text string, m *Mapping) string {
	inv := m.Invert()
	out := strings.Builder{}
	for _, ch := range text {
		if orig, ok := inv.Get(ch); ok {
			out.WriteString(orig)
		} else {
			out.WriteRune(ch)
		}
	}
	return out.String()
}
