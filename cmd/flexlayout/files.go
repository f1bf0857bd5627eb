package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/grindlemire/go-flex/internal/fixture"
)

// collectFixtures finds all fixture files from the given paths.
// Supports:
//   - Direct file paths: "toolbar.yaml"
//   - Directory paths: "./testdata"
//   - Recursive pattern: "./..."
func collectFixtures(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		// Handle ./... recursive pattern
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() && p != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				if !d.IsDir() && fixture.IsFixture(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			// Collect all fixtures in directory (non-recursive)
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && fixture.IsFixture(entry.Name()) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else {
			// An explicit file must be a fixture
			if _, err := fixture.FormatFor(path); err != nil {
				return nil, err
			}
			files = append(files, path)
		}
	}

	return files, nil
}

// parseArgs splits the shared -v flag from the paths, defaulting to the
// current directory.
func parseArgs(args []string) (verbose bool, paths []string) {
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
		} else {
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		paths = []string{"."}
	}
	return verbose, paths
}
