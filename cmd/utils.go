package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/BugenZhao/char-remapper/remap"
)

// ReadInput prefers the file when both a file and arguments are given.
func ReadInput(args []string, path string) (string, error) {
	if path == "" {
		if len(args) == 0 {
			return "", fmt.Errorf("no input given; pass text or --file")
		}
		return strings.Join(args, " "), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read input; %w", err)
	}
	return string(data), nil
}

// WriteOutput prints text on stdout, or writes it verbatim to path.
func WriteOutput(path string, text string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("cannot write output; %w", err)
	}
	return nil
}

func WriteMapping(path string, m *remap.Mapping) error {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	if err := enc.Encode(m); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("cannot write mapping; %w", err)
	}
	return nil
}

func ReadMapping(path string) (*remap.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read mapping; %w", err)
	}
	m := remap.NewMapping()
	if err := json.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("bad mapping file `%s`; %w", path, err)
	}
	return m, nil
}
