package remap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Mapping is an insert-or-overwrite table from input characters to their
// mapped values. Overwriting a key keeps its original position.
type Mapping struct {
	values map[rune]string
	keys   []rune
}

func NewMapping() *Mapping {
	return &Mapping{
		values: make(map[rune]string),
	}
}

func (m *Mapping) Set(ch rune, value string) {
	if _, ok := m.values[ch]; !ok {
		m.keys = append(m.keys, ch)
	}
	m.values[ch] = value
}

func (m *Mapping) Get(ch rune) (string, bool) {
	value, ok := m.values[ch]
	return value, ok
}

func (m *Mapping) Has(ch rune) bool {
	_, ok := m.values[ch]
	return ok
}

func (m *Mapping) Len() int {
	return len(m.keys)
}

// Keys returns the keys in first-insertion order.
func (m *Mapping) Keys() []rune {
	keys := make([]rune, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m *Mapping) String() string {
	entries := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, fmt.Sprintf("%q: %q", string(k), m.values[k]))
	}
	return "{" + strings.Join(entries, ", ") + "}"
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1) // trailing newline from Encode
	return nil
}

func (m *Mapping) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONString(buf, string(k)); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONString(buf, m.values[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Mapping) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("mapping must be a json object, got `%v`", tok)
	}

	values := make(map[rune]string)
	keys := []rune{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("mapping key `%v` is not a string", tok)
		}
		if utf8.RuneCountInString(key) != 1 {
			return fmt.Errorf("mapping key `%s` is not a single character", key)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("bad value for key `%s`; %w", key, err)
		}

		ch, _ := utf8.DecodeRuneInString(key)
		if _, ok := values[ch]; !ok {
			keys = append(keys, ch)
		}
		values[ch] = value
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	m.values = values
	m.keys = keys
	return nil
}
