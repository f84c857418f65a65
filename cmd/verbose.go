package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/BugenZhao/char-remapper/remap"
	"github.com/fatih/color"
)

var tag = color.New(color.FgGreen).Sprint("[+]")

func printVerbose(w io.Writer, input string, res *remap.Result, pool, ignore remap.CharSet, hints []remap.Hint, output string) {
	hs := make([]string, 0, len(hints))
	for _, h := range hints {
		hs = append(hs, h.String())
	}

	fmt.Fprintf(w, "%s Map:      %s\n", tag, res.Mapping)
	fmt.Fprintf(w, "%s Original: %s\n", tag, input)
	fmt.Fprintf(w, "%s Pool:     %s\n", tag, color.CyanString("%s", pool))
	fmt.Fprintf(w, "%s Ignored:  %s\n", tag, color.CyanString("%s", ignore))
	fmt.Fprintf(w, "%s Hints:    [%s]\n", tag, strings.Join(hs, ", "))
	if output != "" {
		fmt.Fprintf(w, "%s Written:  %s\n", tag, output)
	} else {
		fmt.Fprintf(w, "%s Output:   ", tag)
	}
}
