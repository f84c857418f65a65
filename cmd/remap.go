package main

import (
	"os"

	"github.com/BugenZhao/char-remapper/remap"
	"github.com/BugenZhao/char-remapper/rng"
	"github.com/pingcap/log"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type RemapOption struct {
	Input         []string `opts:"mode=arg, help=text to remap (arguments are joined by spaces)"`
	File          string   `opts:"short=f, help=read the text to remap from this file instead"`
	Output        string   `opts:"short=o, help=write the remapped text to this file instead of stdout"`
	Verbose       bool     `opts:"short=v, help=produce verbose output"`
	Pool          string   `opts:"short=p, help=pool of random characters that can be mapped"`
	Ignore        string   `opts:"short=i, help=characters mapped to themselves"`
	Error         string   `opts:"short=e, help=error string for characters left once the pool is empty (default <ERROR>)"`
	Hint          []string `opts:"short=l, help=hint in the form of x=y; can be repeated"`
	Alpha         bool     `opts:"help=add all ASCII letters to the pool"`
	Numeric       bool     `opts:"help=add digits to the pool"`
	Lower         bool     `opts:"help=add lowercase letters to the pool"`
	Upper         bool     `opts:"help=add uppercase letters to the pool"`
	Punct         bool     `opts:"help=add punctuation to the pool"`
	IgnorePunct   bool     `opts:"help=ignore punctuation and whitespace"`
	IgnoreNumeric bool     `opts:"help=ignore digits"`
	Seed          string   `opts:"short=s, help=seed for a reproducible run"`
	MapOut        string   `opts:"help=save the mapping used as JSON to this file"`
	Stats         bool     `opts:"help=print a summary to stderr"`
}

func parseHints(tokens []string) []remap.Hint {
	hints, err := remap.ParseHints(tokens)
	for _, e := range multierr.Errors(err) {
		log.Warn("ignore hint", zap.Error(e))
	}
	return hints
}

func (opt *RemapOption) Run() error {
	if err := setupLogger(globalOption.LogLevel); err != nil {
		return err
	}
	file, err := loadFileConfig(globalOption.Config)
	if err != nil {
		return err
	}
	cfg := merge(file, opt)

	input, err := ReadInput(opt.Input, opt.File)
	if err != nil {
		return err
	}

	hints := parseHints(cfg.Hints)
	ignore := remap.BuildIgnore(cfg.Config)
	pool := remap.BuildPool(cfg.Config, ignore, hints)
	log.Debug("remap prepared",
		zap.Int("pool", pool.Len()),
		zap.Int("ignore", ignore.Len()),
		zap.Int("hints", len(hints)),
		zap.Bool("seeded", cfg.Seed != ""))

	res := remap.Map(input, pool, ignore, cfg.Sentinel, hints, rng.New(cfg.Seed))

	if opt.MapOut != "" {
		if err := WriteMapping(opt.MapOut, res.Mapping); err != nil {
			return err
		}
	}
	if opt.Verbose {
		printVerbose(os.Stdout, input, res, pool, ignore, hints, opt.Output)
	}
	if err := WriteOutput(opt.Output, res.Output); err != nil {
		return err
	}
	if opt.Stats {
		res.Stats.PrintSummary(os.Stderr)
	}
	return nil
}
