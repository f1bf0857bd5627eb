package fixture

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	flex "github.com/grindlemire/go-flex"
)

// tolerance is how far a computed frame may be from an expected one.
const tolerance = 0.01

// Frame is one element's computed rect relative to the root.
type Frame struct {
	Name   string  `toml:"name" yaml:"name"`
	Depth  int     `toml:"depth" yaml:"depth"`
	X      float32 `toml:"x" yaml:"x"`
	Y      float32 `toml:"y" yaml:"y"`
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
	Active bool    `toml:"active" yaml:"active"`
}

// Rect returns the frame as a rect.
func (f Frame) Rect() flex.Rect {
	return flex.NewRect(f.X, f.Y, f.Width, f.Height)
}

// Result is a laid-out document.
type Result struct {
	Name   string  `toml:"name" yaml:"name"`
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
	Frames []Frame `toml:"frames" yaml:"frames"`
}

// Run builds the document, lays it out against its viewport and collects
// every frame in document order.
func Run(doc *Document) (*flex.Element, Result, error) {
	w, h, err := doc.viewport()
	if err != nil {
		return nil, Result{}, err
	}
	root, err := Build(doc)
	if err != nil {
		return nil, Result{}, err
	}
	flex.Calculate(root, w, h)
	return root, Collect(doc.Name, root), nil
}

// Collect walks a laid-out tree and records each element's absolute frame.
// Children of inactive elements are skipped.
func Collect(name string, root *flex.Element) Result {
	size := root.MeasuredSize()
	r := Result{Name: name, Width: size.Width, Height: size.Height}
	root.Walk(func(e *flex.Element, depth int) bool {
		abs := e.AbsoluteFrame()
		r.Frames = append(r.Frames, Frame{
			Name:   e.Name(),
			Depth:  depth,
			X:      abs.X,
			Y:      abs.Y,
			Width:  abs.Width,
			Height: abs.Height,
			Active: e.IsActive(),
		})
		return e.IsActive()
	})
	return r
}

// Find returns the frame with the given name.
func (r Result) Find(name string) (Frame, bool) {
	i := slices.IndexFunc(r.Frames, func(f Frame) bool { return f.Name == name })
	if i < 0 {
		return Frame{}, false
	}
	return r.Frames[i], true
}

// Verify compares the result against the document's expectations and
// returns every mismatch, joined.
func (r Result) Verify(doc *Document) error {
	names := make([]string, 0, len(doc.Expect))
	for name := range doc.Expect {
		names = append(names, name)
	}
	slices.Sort(names)

	var errs []error
	for _, name := range names {
		want, err := rect(doc.Expect[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("expect %s: %w", name, err))
			continue
		}
		got, ok := r.Find(name)
		if !ok {
			errs = append(errs, fmt.Errorf("expect %s: %w", name, ErrMissingElement))
			continue
		}
		if !sameRect(got.Rect(), want) {
			errs = append(errs, fmt.Errorf("%s = %v, want %v: %w", name, got.Rect(), want, ErrFrameMismatch))
		}
	}
	return errors.Join(errs...)
}

func sameRect(a, b flex.Rect) bool {
	return math32.Abs(a.X-b.X) <= tolerance &&
		math32.Abs(a.Y-b.Y) <= tolerance &&
		math32.Abs(a.Width-b.Width) <= tolerance &&
		math32.Abs(a.Height-b.Height) <= tolerance
}

// Encode writes the result in the given format.
func (r Result) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q: %w", f, ErrUnsupportedFormat)
	}
}
