// Package main provides the CLI tool for laying out flex fixture files.
//
// Usage:
//
//	flexlayout measure [path...]    Lay out fixtures and print every frame
//	flexlayout check [path...]      Decode and validate fixtures
//	flexlayout help                 Show help
//
// Examples:
//
//	flexlayout measure ./...            Recursively lay out all fixtures
//	flexlayout measure toolbar.yaml     Lay out a single fixture
//	flexlayout check ./testdata         Validate the fixtures in a directory
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "0.1.0"

const usage = `flexlayout - lay out flex fixture trees

Usage:
  flexlayout <command> [options] [path...]

Commands:
  measure     Lay out .toml/.yaml fixtures and print their frames
  check       Decode and validate fixtures without laying them out
  version     Print version information
  help        Show this help message

Options:
  -v                 Verbose output
  --log <path>       Write engine debug logs to path (measure)
  --format <fmt>     Output as text (default), toml or yaml (measure)

Examples:
  flexlayout measure ./...                  Recursively lay out all fixtures
  flexlayout measure ./testdata             Lay out fixtures in a directory
  flexlayout measure --format yaml a.toml   Print frames as YAML
  flexlayout check -v ./...                 Validate every fixture
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(stdout, usage)
		return 1
	}

	command := args[0]
	args = args[1:]

	var err error
	switch command {
	case "measure":
		err = runMeasure(args, stdout, stderr)
	case "check":
		err = runCheck(args, stdout, stderr)
	case "version":
		fmt.Fprintf(stdout, "flexlayout version %s\n", version)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n\n", command)
		fmt.Fprint(stdout, usage)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
