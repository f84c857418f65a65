package remap

// BuildIgnore returns the characters that map to themselves. An empty set
// is valid.
func BuildIgnore(cfg Config) CharSet {
	ignore := NewCharSet(cfg.Ignore)
	if cfg.IgnorePunctAndSpace {
		ignore.AddString(Punctuation + Whitespace)
	}
	if cfg.IgnoreNumeric {
		ignore.AddString(Digits)
	}
	return ignore
}
