package main

import "github.com/jpillora/opts"

func main() {
	opts.New(globalOption).
		Name("remapper").
		Complete().
		Parse().
		RunFatal()
}
