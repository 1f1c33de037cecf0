package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "compile":
		if err := compileCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "validate":
		if err := validateCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "notation":
		if err := notationCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "create":
		if err := createCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "catalog":
		if err := catalogCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("rnetc version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`rnetc - reaction network compiler

Usage:
  rnetc <command> [options]

Commands:
  compile    Compile a model into a C propensity plugin and matrices
  validate   Validate a model's species, rates and reactions
  notation   Render a model's reactions as LaTeX
  create     Create a model from a template
  catalog    Inspect recorded compile runs
  help       Show this help message
  version    Show version information

Examples:
  # Create a birth-death model
  rnetc create --template birth-death --output bd.json

  # Compile to a propensity plugin
  rnetc compile bd.json --output bd.c --matrices bd_matrices.json

  # Render reactions as LaTeX
  rnetc notation bd.json

For command-specific help, run:
  rnetc <command> --help`)
}
