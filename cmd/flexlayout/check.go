package main

import (
	"fmt"
	"io"

	"github.com/grindlemire/go-flex/internal/fixture"
)

// runCheck implements the check subcommand.
// It decodes and validates fixtures without laying them out.
func runCheck(args []string, stdout, stderr io.Writer) error {
	verbose, paths := parseArgs(args)

	files, err := collectFixtures(paths)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no fixture files found")
	}

	if verbose {
		fmt.Fprintf(stdout, "Checking %d fixture(s)\n", len(files))
	}

	var errorCount int
	for _, path := range files {
		if verbose {
			fmt.Fprintf(stdout, "Checking %s\n", path)
		}

		if err := checkFile(path); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", path, err)
			errorCount++
			continue
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}

	if verbose {
		fmt.Fprintf(stdout, "All %d file(s) passed checks\n", len(files))
	}

	return nil
}

// checkFile decodes and validates a single fixture.
func checkFile(path string) error {
	doc, err := fixture.Load(path)
	if err != nil {
		return err
	}
	return fixture.Validate(doc)
}
