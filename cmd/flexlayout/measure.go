package main

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-flex/internal/debug"
	"github.com/grindlemire/go-flex/internal/fixture"
)

type measureOptions struct {
	verbose bool
	logPath string
	format  string
	paths   []string
}

func parseMeasureArgs(args []string) (measureOptions, error) {
	opts := measureOptions{format: "text"}
	var rest []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--log" || arg == "--format":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s needs a value", arg)
			}
			i++
			if arg == "--log" {
				opts.logPath = args[i]
			} else {
				opts.format = args[i]
			}
		case strings.HasPrefix(arg, "--log="):
			opts.logPath = strings.TrimPrefix(arg, "--log=")
		case strings.HasPrefix(arg, "--format="):
			opts.format = strings.TrimPrefix(arg, "--format=")
		default:
			rest = append(rest, arg)
		}
	}

	switch opts.format {
	case "text", string(fixture.FormatTOML), string(fixture.FormatYAML):
	default:
		return opts, fmt.Errorf("unknown format %q", opts.format)
	}

	opts.verbose, opts.paths = parseArgs(rest)
	return opts, nil
}

// measured is the outcome of laying out one fixture.
type measured struct {
	path string
	out  bytes.Buffer
	err  error
}

// runMeasure implements the measure subcommand. Fixtures are laid out
// concurrently, one tree per goroutine, and printed in the order found.
func runMeasure(args []string, stdout, stderr io.Writer) error {
	opts, err := parseMeasureArgs(args)
	if err != nil {
		return err
	}

	if opts.logPath != "" {
		if err := debug.Init(opts.logPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	files, err := collectFixtures(opts.paths)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no fixture files found")
	}

	if opts.verbose {
		fmt.Fprintf(stdout, "Measuring %d fixture(s)\n", len(files))
	}

	profile := termenv.NewOutput(stdout).Profile
	results := make([]*measured, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		m := &measured{path: path}
		results[i] = m
		g.Go(func() error {
			m.err = measureFile(&m.out, path, opts.format, profile)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var errorCount int
	for _, m := range results {
		if opts.verbose {
			fmt.Fprintf(stdout, "== %s\n", m.path)
		}
		if _, err := m.out.WriteTo(stdout); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
		if m.err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", m.path, m.err)
			errorCount++
		}
	}

	if errorCount > 0 {
		return fmt.Errorf("%d file(s) had errors", errorCount)
	}
	return nil
}

// measureFile lays out one fixture, writes its frames to w and checks the
// fixture's expectations.
func measureFile(w *bytes.Buffer, path, format string, profile termenv.Profile) error {
	doc, err := fixture.Load(path)
	if err != nil {
		return err
	}
	_, result, err := fixture.Run(doc)
	if err != nil {
		return err
	}

	switch format {
	case "text":
		writeFrames(termenv.NewOutput(w, termenv.WithProfile(profile)), result)
	default:
		if err := result.Encode(w, fixture.Format(format)); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	}

	if debug.Enabled() {
		debug.Log("flexlayout: measured %s (%d frames, %d inactive)", path, len(result.Frames), countInactive(result))
	}
	return result.Verify(doc)
}

// writeFrames prints one line per frame, indented by depth:
//
//	name x y width height
func writeFrames(out *termenv.Output, r fixture.Result) {
	fmt.Fprintf(out, "%s %gx%g\n", out.String(r.Name).Bold(), r.Width, r.Height)
	for _, f := range r.Frames {
		indent := strings.Repeat("  ", f.Depth+1)
		rect := fmt.Sprintf("%g %g %g %g", f.X, f.Y, f.Width, f.Height)
		if !f.Active {
			fmt.Fprintf(out, "%s%s\n", indent, out.String(f.Name+" "+rect+" (inactive)").Faint())
			continue
		}
		fmt.Fprintf(out, "%s%s %s\n", indent, out.String(f.Name).Foreground(out.Color("6")), rect)
	}
}

func countInactive(r fixture.Result) int {
	n := 0
	for _, f := range r.Frames {
		if !f.Active {
			n++
		}
	}
	return n
}
