package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rnetlab/go-rnet/persist"
)

func catalogCmd(args []string) error {
	fs := flag.NewFlagSet("catalog", flag.ExitOnError)
	dbPath := fs.String("db", "rnetc.db", "Catalog database path")
	show := fs.String("show", "", "Print the generated source of one run")
	limit := fs.Int("limit", 20, "Maximum runs to list")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: rnetc catalog [options]

List compile runs recorded with 'rnetc compile --catalog'.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cat, err := persist.OpenCatalog(*dbPath)
	if err != nil {
		return err
	}
	defer cat.Close()

	if *show != "" {
		run, err := cat.Get(*show)
		if err != nil {
			return fmt.Errorf("run %s: %w", *show, err)
		}
		fmt.Print(run.Source)
		return nil
	}

	runs, err := cat.Runs(*limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No recorded runs.")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %-15s %2d species %2d reactions  %s\n",
			run.CreatedAt.Format("2006-01-02 15:04:05"), run.Model,
			run.Species, run.Reactions, run.ID)
	}
	return nil
}
