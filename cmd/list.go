package main

import (
	"fmt"

	"github.com/BugenZhao/char-remapper/remap"
	"github.com/fatih/color"
)

type ListOption struct {
}

func (o *ListOption) Run() error {
	fmt.Println("All available character classes:")
	for _, class := range remap.Classes {
		fmt.Printf("%s:\n\t%q\n", color.GreenString(class.Name), class.Chars)
	}
	return nil
}
