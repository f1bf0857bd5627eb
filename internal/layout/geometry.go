package layout

import "github.com/chewxy/math32"

// epsilon is the tolerance used for float comparisons during a pass.
const epsilon float32 = 0.001

func nearZero(v float32) bool { return math32.Abs(v) <= epsilon }

func nearEqual(a, b float32) bool {
	if isInfinite(a) || isInfinite(b) {
		return a == b
	}
	return nearZero(a - b)
}

func greatNotEqual(a, b float32) bool { return a-b > epsilon }

func lessNotEqual(a, b float32) bool { return b-a > epsilon }

func isInfinite(v float32) bool { return math32.IsInf(v, 0) }

// nonNegative clamps v to zero. NaN also clamps to zero.
func nonNegative(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	return v
}

// SizeF is a width/height pair.
type SizeF struct {
	Width, Height float32
}

// Add returns the component-wise sum.
func (s SizeF) Add(other SizeF) SizeF {
	return SizeF{Width: s.Width + other.Width, Height: s.Height + other.Height}
}

// Constrain clamps s between lo and hi. If lo > hi on an axis, lo wins.
func (s SizeF) Constrain(lo, hi SizeF) SizeF {
	return SizeF{
		Width:  clamp(s.Width, lo.Width, hi.Width),
		Height: clamp(s.Height, lo.Height, hi.Height),
	}
}

// IsInfinite reports whether either axis is unbounded.
func (s SizeF) IsInfinite() bool {
	return isInfinite(s.Width) || isInfinite(s.Height)
}

// OffsetF is an (X, Y) position relative to the parent's frame.
type OffsetF struct {
	X, Y float32
}

// Add returns a new OffsetF offset by other.
func (o OffsetF) Add(other OffsetF) OffsetF {
	return OffsetF{X: o.X + other.X, Y: o.Y + other.Y}
}

// Sub returns a new OffsetF with other subtracted.
func (o OffsetF) Sub(other OffsetF) OffsetF {
	return OffsetF{X: o.X - other.X, Y: o.Y - other.Y}
}

// Rect is a frame: an offset and a size.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.Height }

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// The left and top edges are inside; the right and bottom edges are outside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a new Rect inset by the given Edges.
// Positive values shrink the rectangle; negative values expand it.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  nonNegative(r.Width - edges.Horizontal()),
		Height: nonNegative(r.Height - edges.Vertical()),
	}
}

// Outset returns a new Rect expanded outward by the given Edges.
func (r Rect) Outset(edges Edges) Rect {
	return Rect{
		X:      r.X - edges.Left,
		Y:      r.Y - edges.Top,
		Width:  r.Width + edges.Horizontal(),
		Height: r.Height + edges.Vertical(),
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float32
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v float32) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float32) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float32) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float32 { return e.Left + e.Right }

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float32 { return e.Top + e.Bottom }

// Size returns the total extent the edges take on both axes.
func (e Edges) Size() SizeF {
	return SizeF{Width: e.Horizontal(), Height: e.Vertical()}
}

// Add returns the per-side sum of e and other.
func (e Edges) Add(other Edges) Edges {
	return Edges{
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
		Left:   e.Left + other.Left,
	}
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}

// OptionalSize is a size whose axes may individually be unset.
type OptionalSize struct {
	Width, Height       float32
	HasWidth, HasHeight bool
}

// SetWidth returns a copy with the width set.
func (o OptionalSize) SetWidth(w float32) OptionalSize {
	o.Width, o.HasWidth = w, true
	return o
}

// SetHeight returns a copy with the height set.
func (o OptionalSize) SetHeight(h float32) OptionalSize {
	o.Height, o.HasHeight = h, true
	return o
}

// clamp restricts v to the range [lo, hi].
// If lo > hi, lo wins (matches CSS behavior).
func clamp(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
