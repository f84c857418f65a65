package remap

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ErrHintDropped marks a hint that contributes nothing to the mapping.
var ErrHintDropped = errors.New("hint dropped")

// Hint forces Source[i] and Target[i] to map onto each other.
type Hint struct {
	Source []rune
	Target []rune
}

func dropped(token string, reason string) error {
	return fmt.Errorf("%w: `%s`; %s", ErrHintDropped, token, reason)
}

// ParseHint parses a token in the form of `src=tgt`. Only the first `=`
// separates the sides, and both sides are de-duplicated before their
// lengths are compared.
func ParseHint(token string) (Hint, error) {
	parts := strings.SplitN(token, "=", 2)
	if len(parts) != 2 {
		return Hint{}, dropped(token, "bad syntax")
	}
	if parts[0] == "" {
		return Hint{}, dropped(token, "empty source")
	}

	src, tgt := dedup(parts[0]), dedup(parts[1])
	if len(src) != len(tgt) {
		return Hint{}, dropped(token, fmt.Sprintf("counts not equal, %d vs %d", len(src), len(tgt)))
	}
	return Hint{Source: src, Target: tgt}, nil
}

// ParseHints keeps every valid hint in order. The returned error combines
// all dropped hints and is never fatal.
func ParseHints(tokens []string) ([]Hint, error) {
	hints := make([]Hint, 0, len(tokens))
	var errs error
	for _, token := range tokens {
		h, err := ParseHint(token)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		hints = append(hints, h)
	}
	return hints, errs
}

func (h Hint) String() string {
	return fmt.Sprintf("%s=%s", string(h.Source), string(h.Target))
}

// Chars returns the characters on both sides of h.
func (h Hint) Chars() CharSet {
	s := make(CharSet, len(h.Source)+len(h.Target))
	for i := range h.Source {
		s.Add(h.Source[i])
		s.Add(h.Target[i])
	}
	return s
}
