package main

import (
	"fmt"

	"github.com/BugenZhao/char-remapper/remap"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

type ReverseOption struct {
	Input  []string `opts:"mode=arg, help=remapped text (arguments are joined by spaces)"`
	File   string   `opts:"short=f, help=read the remapped text from this file instead"`
	Map    string   `opts:"short=m, help=mapping file saved with remap --map-out"`
	Output string   `opts:"short=o, help=write the restored text to this file instead of stdout"`
}

func (opt *ReverseOption) Run() error {
	if err := setupLogger(globalOption.LogLevel); err != nil {
		return err
	}
	if opt.Map == "" {
		return fmt.Errorf("no mapping file given; pass --map")
	}

	m, err := ReadMapping(opt.Map)
	if err != nil {
		return err
	}
	input, err := ReadInput(opt.Input, opt.File)
	if err != nil {
		return err
	}

	inv := m.Invert()
	if skipped := m.Len() - inv.Len(); skipped > 0 {
		log.Warn("some entries cannot be reversed", zap.Int("skipped", skipped))
	}
	return WriteOutput(opt.Output, remap.Reverse(input, m))
}
