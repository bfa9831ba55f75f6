package main

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/trezcool/cgpa/core"
)

func main() {
	conf, err := core.NewConfig()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: loading config: %v\n", err)
		os.Exit(1)
	}
	if err = conf.Validate(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// only colorize when printing to a terminal
	color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))

	cmd := newCommand(conf)
	cmd.SetOut(os.Stdout)
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
