package remap

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"
)

// Stats counts input characters by how they were resolved.
type Stats struct {
	All       uint64
	Reused    uint64
	Drawn     uint64
	Exhausted uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("all %d, reused %d, drawn %d, exhausted %d", s.All, s.Reused, s.Drawn, s.Exhausted)
}

func (s Stats) PrintSummary(w io.Writer) {
	fmt.Fprintf(w, `
====Summary====
Reused     %d
Drawn      %d
Exhausted  %d
Total      %d
`,
		s.Reused, s.Drawn, s.Exhausted, s.All)
}

type Result struct {
	Output  string
	Mapping *Mapping
	Stats   Stats
}

// Map substitutes every character of input in a single pass.
//
// Entries are written in three phases, each overwriting the previous on
// the same key: hints in order (both directions, later hints win), then
// ignore (so ignore beats hints), then characters of input as they are
// first seen. A character first seen once the pool is empty maps to
// sentinel. The pool is copied and never modified. A nil r uses a fresh
// time-seeded generator.
func Map(input string, pool CharSet, ignore CharSet, sentinel string, hints []Hint, r *rand.Rand) *Result {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	mapping := NewMapping()
	for _, h := range hints {
		for i := range h.Source {
			mapping.Set(h.Source[i], string(h.Target[i]))
			mapping.Set(h.Target[i], string(h.Source[i]))
		}
	}
	for _, ch := range ignore.Runes() {
		mapping.Set(ch, string(ch))
	}

	remaining := newDrawPool(pool)
	stats := Stats{}
	out := strings.Builder{}

	for _, ch := range input {
		stats.All += 1

		if value, ok := mapping.Get(ch); ok {
			stats.Reused += 1
			out.WriteString(value)
			continue
		}

		var value string
		if remaining.empty() {
			stats.Exhausted += 1
			value = sentinel
		} else {
			stats.Drawn += 1
			value = string(remaining.draw(r))
		}
		mapping.Set(ch, value)
		out.WriteString(value)
	}

	return &Result{
		Output:  out.String(),
		Mapping: mapping,
		Stats:   stats,
	}
}
