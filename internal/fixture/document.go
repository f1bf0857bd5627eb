// Package fixture reads declarative layout trees from TOML or YAML
// documents, builds them into flex elements and reports the computed
// frames.
//
// A document names a viewport and a recursive root node:
//
//	name = "toolbar"
//
//	[viewport]
//	width = 400
//	height = 40
//
//	[root]
//	kind = "row"
//	align = "center"
//
//	[[root.children]]
//	name = "title"
//	intrinsic = [120, 16]
//
//	[[root.children]]
//	kind = "spacer"
//
//	[expect]
//	title = [0, 12, 120, 16]
//
// Lengths are numbers (pixels), "auto", "12px" or "50%". Edges are a single
// number, [vertical, horizontal] or [top, right, bottom, left].
package fixture

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a fixture encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// IsFixture reports whether path has a fixture extension.
func IsFixture(path string) bool {
	_, err := FormatFor(path)
	return err == nil
}

// Document is one layout fixture.
type Document struct {
	Name     string         `toml:"name" yaml:"name"`
	Viewport Viewport       `toml:"viewport" yaml:"viewport"`
	Root     Node           `toml:"root" yaml:"root"`
	Expect   map[string]any `toml:"expect,omitempty" yaml:"expect,omitempty"`
}

// Viewport is the size the root is laid out against.
type Viewport struct {
	Width  any `toml:"width" yaml:"width"`
	Height any `toml:"height" yaml:"height"`
}

// Node is one element of a fixture tree. Numeric fields accept integers,
// floats or numeric strings so that both decoders agree.
type Node struct {
	// Kind is leaf (default), flex, row, column or spacer.
	Kind string `toml:"kind,omitempty" yaml:"kind,omitempty"`
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`

	// Container style
	Direction              string   `toml:"direction,omitempty" yaml:"direction,omitempty"`
	Justify                string   `toml:"justify,omitempty" yaml:"justify,omitempty"`
	Align                  string   `toml:"align,omitempty" yaml:"align,omitempty"`
	Spacing                any      `toml:"spacing,omitempty" yaml:"spacing,omitempty"`
	TextDirection          string   `toml:"text_direction,omitempty" yaml:"text_direction,omitempty"`
	SafeArea               any      `toml:"safe_area,omitempty" yaml:"safe_area,omitempty"`
	ChildrenIgnoreSafeArea []string `toml:"children_ignore_safe_area,omitempty" yaml:"children_ignore_safe_area,omitempty"`

	// Sizing
	Width       any    `toml:"width,omitempty" yaml:"width,omitempty"`
	Height      any    `toml:"height,omitempty" yaml:"height,omitempty"`
	MinWidth    any    `toml:"min_width,omitempty" yaml:"min_width,omitempty"`
	MinHeight   any    `toml:"min_height,omitempty" yaml:"min_height,omitempty"`
	MaxWidth    any    `toml:"max_width,omitempty" yaml:"max_width,omitempty"`
	MaxHeight   any    `toml:"max_height,omitempty" yaml:"max_height,omitempty"`
	MatchParent string `toml:"match_parent,omitempty" yaml:"match_parent,omitempty"`
	Padding     any    `toml:"padding,omitempty" yaml:"padding,omitempty"`
	Margin      any    `toml:"margin,omitempty" yaml:"margin,omitempty"`

	// Flex item
	Grow      any    `toml:"grow,omitempty" yaml:"grow,omitempty"`
	Shrink    any    `toml:"shrink,omitempty" yaml:"shrink,omitempty"`
	Basis     any    `toml:"basis,omitempty" yaml:"basis,omitempty"`
	AlignSelf string `toml:"align_self,omitempty" yaml:"align_self,omitempty"`
	Priority  int    `toml:"priority,omitempty" yaml:"priority,omitempty"`
	Weight    any    `toml:"weight,omitempty" yaml:"weight,omitempty"`

	// Flow
	Visibility     string   `toml:"visibility,omitempty" yaml:"visibility,omitempty"`
	Absolute       bool     `toml:"absolute,omitempty" yaml:"absolute,omitempty"`
	IgnoreSafeArea []string `toml:"ignore_safe_area,omitempty" yaml:"ignore_safe_area,omitempty"`

	// Leaf content
	Intrinsic any `toml:"intrinsic,omitempty" yaml:"intrinsic,omitempty"`
	Baseline  any `toml:"baseline,omitempty" yaml:"baseline,omitempty"`

	Children []Node `toml:"children,omitempty" yaml:"children,omitempty"`
}

// Decoder is satisfied by the TOML and YAML stream decoders.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a Decoder reading from r.
type DecoderFunc func(r io.Reader) Decoder

func decoderFor(f Format) (DecoderFunc, error) {
	switch f {
	case FormatTOML:
		return func(r io.Reader) Decoder {
			return toml.NewDecoder(r).DisallowUnknownFields()
		}, nil
	case FormatYAML:
		return func(r io.Reader) Decoder {
			d := yaml.NewDecoder(r)
			d.KnownFields(true)
			return d
		}, nil
	default:
		return nil, fmt.Errorf("format %q: %w", f, ErrUnsupportedFormat)
	}
}

// Decode reads one document in the given format. Unknown keys are errors.
func Decode(r io.Reader, f Format) (*Document, error) {
	newDecoder, err := decoderFor(f)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := newDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f, err)
	}
	return &doc, nil
}

// Load reads the fixture at path, choosing the format from its extension.
// An unnamed document takes the file name without extension.
func Load(path string) (*Document, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	defer fp.Close()

	doc, err := Decode(bufio.NewReader(fp), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Name == "" {
		base := filepath.Base(path)
		doc.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return doc, nil
}
