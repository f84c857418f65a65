package main

type Option struct {
	RemapOption   `opts:"mode=cmd, name=remap,   help=Remap input characters to random characters from a pool"`
	ReverseOption `opts:"mode=cmd, name=reverse, help=Undo a remap with a saved mapping file"`
	ListOption    `opts:"mode=cmd, name=list,    help=List the built-in character classes"`
	Config        string `opts:"help=TOML file with default remap settings"`
	LogLevel      string `opts:"help=log level of diagnostics written to stderr"`
}

var globalOption = &Option{
	LogLevel: "warn",
}

const defaultSentinel = "<ERROR>"
