package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rnetlab/go-rnet/notation"
)

func notationCmd(args []string) error {
	fs := flag.NewFlagSet("notation", flag.ExitOnError)
	output := fs.String("output", "", "Destination file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: rnetc notation <model.json> [options]

Render a model's reactions as a LaTeX align environment.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("model file required")
	}

	net, err := loadModel(fs.Arg(0))
	if err != nil {
		return err
	}

	out, err := notation.RenderStrings(net.Reactions)
	if err != nil {
		return err
	}

	if *output == "" {
		fmt.Print(out)
		return nil
	}
	return os.WriteFile(*output, []byte(out), 0644)
}
