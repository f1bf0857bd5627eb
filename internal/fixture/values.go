package fixture

import (
	"fmt"
	"strconv"
	"strings"

	flex "github.com/grindlemire/go-flex"
)

// number converts a decoded scalar to float32. TOML yields int64 and
// float64, YAML yields int and float64.
func number(v any) (float32, error) {
	switch n := v.(type) {
	case int:
		return float32(n), nil
	case int64:
		return float32(n), nil
	case uint64:
		return float32(n), nil
	case float32:
		return n, nil
	case float64:
		return float32(n), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 32)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", n, ErrBadNumber)
		}
		return float32(f), nil
	default:
		return 0, fmt.Errorf("%v: %w", v, ErrBadNumber)
	}
}

// length parses a dimension: a bare number is pixels, a string may be
// "auto", "12", "12px" or "50%". A missing value is auto.
func length(v any) (flex.Dimension, error) {
	s, ok := v.(string)
	if !ok {
		if v == nil {
			return flex.Auto(), nil
		}
		n, err := number(v)
		if err != nil {
			return flex.Dimension{}, fmt.Errorf("%v: %w", v, ErrBadLength)
		}
		return flex.Px(n), nil
	}

	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "auto":
		return flex.Auto(), nil
	case strings.HasSuffix(s, "%"):
		n, err := number(strings.TrimSuffix(s, "%"))
		if err != nil {
			return flex.Dimension{}, fmt.Errorf("%q: %w", s, ErrBadLength)
		}
		return flex.Percent(n), nil
	default:
		n, err := number(strings.TrimSuffix(s, "px"))
		if err != nil {
			return flex.Dimension{}, fmt.Errorf("%q: %w", s, ErrBadLength)
		}
		return flex.Px(n), nil
	}
}

// numbers converts a decoded list to float32s.
func numbers(v any) ([]float32, error) {
	list, ok := v.([]any)
	if !ok {
		n, err := number(v)
		if err != nil {
			return nil, err
		}
		return []float32{n}, nil
	}
	out := make([]float32, 0, len(list))
	for _, item := range list {
		n, err := number(item)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// edges parses CSS-style shorthand: all sides, [vertical horizontal] or
// [top right bottom left].
func edges(v any) (flex.Edges, error) {
	ns, err := numbers(v)
	if err != nil {
		return flex.Edges{}, err
	}
	switch len(ns) {
	case 1:
		return flex.EdgeAll(ns[0]), nil
	case 2:
		return flex.EdgeSymmetric(ns[0], ns[1]), nil
	case 4:
		return flex.EdgeTRBL(ns[0], ns[1], ns[2], ns[3]), nil
	default:
		return flex.Edges{}, fmt.Errorf("%v: %w", v, ErrBadEdges)
	}
}

func pair(v any) (float32, float32, error) {
	ns, err := numbers(v)
	if err != nil {
		return 0, 0, err
	}
	if len(ns) != 2 {
		return 0, 0, fmt.Errorf("%v: %w", v, ErrBadPair)
	}
	return ns[0], ns[1], nil
}

func rect(v any) (flex.Rect, error) {
	ns, err := numbers(v)
	if err != nil {
		return flex.Rect{}, err
	}
	if len(ns) != 4 {
		return flex.Rect{}, fmt.Errorf("%v: %w", v, ErrBadRect)
	}
	return flex.NewRect(ns[0], ns[1], ns[2], ns[3]), nil
}

var (
	directions = map[string]flex.Direction{
		"row":            flex.Row,
		"row-reverse":    flex.RowReverse,
		"column":         flex.Column,
		"column-reverse": flex.ColumnReverse,
	}
	justifies = map[string]flex.Justify{
		"start":         flex.JustifyStart,
		"end":           flex.JustifyEnd,
		"center":        flex.JustifyCenter,
		"space-between": flex.JustifySpaceBetween,
		"space-around":  flex.JustifySpaceAround,
		"space-evenly":  flex.JustifySpaceEvenly,
	}
	aligns = map[string]flex.Align{
		"auto":     flex.AlignAuto,
		"start":    flex.AlignStart,
		"end":      flex.AlignEnd,
		"center":   flex.AlignCenter,
		"stretch":  flex.AlignStretch,
		"baseline": flex.AlignBaseline,
	}
	textDirections = map[string]flex.TextDirection{
		"auto": flex.TextAuto,
		"ltr":  flex.TextLTR,
		"rtl":  flex.TextRTL,
	}
	visibilities = map[string]flex.Visibility{
		"visible":   flex.Visible,
		"hidden":    flex.Hidden,
		"collapsed": flex.Collapsed,
	}
	safeEdges = map[string]flex.SafeAreaEdges{
		"top":    flex.SafeEdgeTop,
		"bottom": flex.SafeEdgeBottom,
		"start":  flex.SafeEdgeStart,
		"end":    flex.SafeEdgeEnd,
		"all":    flex.SafeEdgeAll,
	}
)

// lookup resolves a keyword from table, case-insensitively.
func lookup[T any](table map[string]T, s string, unknown error) (T, error) {
	v, ok := table[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%q: %w", s, unknown)
	}
	return v, nil
}

func edgeSet(names []string) (flex.SafeAreaEdges, error) {
	var set flex.SafeAreaEdges
	for _, name := range names {
		e, err := lookup(safeEdges, name, ErrUnknownEdge)
		if err != nil {
			return 0, err
		}
		set |= e
	}
	return set, nil
}
