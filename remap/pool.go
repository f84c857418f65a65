package remap

import (
	"math/rand"
	"strings"
)

// Config selects the pool and ignore set of one run.
type Config struct {
	Pool       string `toml:"pool"`
	UseAlpha   bool   `toml:"alpha"`
	UseNumeric bool   `toml:"numeric"`
	UseLower   bool   `toml:"lower"`
	UseUpper   bool   `toml:"upper"`
	UsePunct   bool   `toml:"punct"`

	Ignore              string `toml:"ignore"`
	IgnorePunctAndSpace bool   `toml:"ignore_punct"`
	IgnoreNumeric       bool   `toml:"ignore_numeric"`
}

// BuildPool returns the characters available for random assignment.
// Members of ignore and every character used by hints are excluded.
func BuildPool(cfg Config, ignore CharSet, hints []Hint) CharSet {
	b := strings.Builder{}
	b.WriteString(cfg.Pool)
	if cfg.UseAlpha {
		b.WriteString(Letters)
	}
	if cfg.UseNumeric {
		b.WriteString(Digits)
	}
	if cfg.UseLower {
		b.WriteString(Lowercase)
	}
	if cfg.UseUpper {
		b.WriteString(Uppercase)
	}
	if cfg.UsePunct {
		b.WriteString(Punctuation)
	}

	text := b.String()
	if text == "" {
		text = DefaultPool
	}

	pool := NewCharSet(text)
	for ch := range ignore {
		pool.Remove(ch)
	}
	for _, h := range hints {
		for ch := range h.Chars() {
			pool.Remove(ch)
		}
	}
	return pool
}

// drawPool hands out each member at most once.
type drawPool struct {
	chars []rune
}

// newDrawPool orders members so that a fixed seed yields a fixed run.
func newDrawPool(s CharSet) *drawPool {
	return &drawPool{chars: s.Runes()}
}

func (p *drawPool) empty() bool {
	return len(p.chars) == 0
}

func (p *drawPool) draw(r *rand.Rand) rune {
	i := r.Intn(len(p.chars))
	ch := p.chars[i]
	last := len(p.chars) - 1
	p.chars[i] = p.chars[last]
	p.chars = p.chars[:last]
	return ch
}
