package main

import (
	"fmt"
	"strings"

	"github.com/BugenZhao/char-remapper/remap"
	"github.com/BurntSushi/toml"
)

// fileConfig is the layout of the --config file.
type fileConfig struct {
	remap.Config
	Error string   `toml:"error"`
	Hints []string `toml:"hints"`
	Seed  string   `toml:"seed"`
}

// runConfig is everything one remap run needs, after merging.
type runConfig struct {
	remap.Config
	Sentinel string
	Hints    []string
	Seed     string
}

func loadFileConfig(path string) (fileConfig, error) {
	var raw fileConfig
	if path == "" {
		return raw, nil
	}

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fileConfig{}, fmt.Errorf("load config `%s`; %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fileConfig{}, fmt.Errorf("unknown keys in config `%s`: %s", path, strings.Join(keys, ", "))
	}
	if meta.IsDefined("error") && raw.Error == "" {
		return fileConfig{}, fmt.Errorf("empty `error` in config `%s`", path)
	}
	return raw, nil
}

// merge lays the command line over the file: set strings replace, flags
// turn options on, and hints from the command line come after the file's
// so they win on conflicts.
func merge(file fileConfig, opt *RemapOption) runConfig {
	cfg := runConfig{
		Config:   file.Config,
		Sentinel: defaultSentinel,
		Seed:     file.Seed,
	}
	if file.Error != "" {
		cfg.Sentinel = file.Error
	}
	if opt.Error != "" {
		cfg.Sentinel = opt.Error
	}
	if opt.Seed != "" {
		cfg.Seed = opt.Seed
	}
	if opt.Pool != "" {
		cfg.Pool = opt.Pool
	}
	if opt.Ignore != "" {
		cfg.Ignore = opt.Ignore
	}

	cfg.UseAlpha = cfg.UseAlpha || opt.Alpha
	cfg.UseNumeric = cfg.UseNumeric || opt.Numeric
	cfg.UseLower = cfg.UseLower || opt.Lower
	cfg.UseUpper = cfg.UseUpper || opt.Upper
	cfg.UsePunct = cfg.UsePunct || opt.Punct
	cfg.IgnorePunctAndSpace = cfg.IgnorePunctAndSpace || opt.IgnorePunct
	cfg.IgnoreNumeric = cfg.IgnoreNumeric || opt.IgnoreNumeric

	cfg.Hints = append(cfg.Hints, file.Hints...)
	cfg.Hints = append(cfg.Hints, opt.Hint...)
	return cfg
}
