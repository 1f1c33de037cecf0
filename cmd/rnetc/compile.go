package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	cgen "github.com/rnetlab/go-rnet/codegen/c"
	"github.com/rnetlab/go-rnet/compile"
	"github.com/rnetlab/go-rnet/parser"
	"github.com/rnetlab/go-rnet/persist"
	"github.com/rnetlab/go-rnet/rnet"
)

func compileCmd(args []string) error {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	output := fs.String("output", "", "Destination for the generated C source (default: stdout)")
	matrices := fs.String("matrices", "", "Destination for the N/H/G matrix export (JSON)")
	catalogPath := fs.String("catalog", "", "Record the run in this catalog database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: rnetc compile <model.json> [options]

Compile a reaction network model into the C propensity plugin, the
stoichiometric matrix N and the dependency graph G.

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

	res, err := compile.Compile(net)
	if err != nil {
		return err
	}

	source := cgen.Generate(res)

	if *output == "" {
		fmt.Print(source)
	} else if err := persist.WriteSource(*output, source); err != nil {
		if !errors.Is(err, persist.ErrRefused) {
			return err
		}
		// Marker mismatch is a warning, not a failure: the compilation
		// result is still reported.
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	if *matrices != "" {
		data, err := res.MatricesJSON()
		if err != nil {
			return fmt.Errorf("export matrices: %w", err)
		}
		if err := os.WriteFile(*matrices, data, 0644); err != nil {
			return fmt.Errorf("write matrices: %w", err)
		}
	}

	if *catalogPath != "" {
		cat, err := persist.OpenCatalog(*catalogPath)
		if err != nil {
			return err
		}
		defer cat.Close()

		run, err := cat.Record(res, source)
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Recorded run %s\n", run.ID)
	}

	fmt.Fprintf(os.Stderr, "Compiled %s: %d species, %d reactions (%s)\n",
		net.Name, len(net.Species), len(net.Reactions), net.CID())

	return nil
}

func loadModel(path string) (*rnet.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	net, err := parser.FromJSON(data)
	if err != nil {
		return nil, err
	}
	return net, nil
}
