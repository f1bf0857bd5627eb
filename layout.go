// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row           = layout.Row
	RowReverse    = layout.RowReverse
	Column        = layout.Column
	ColumnReverse = layout.ColumnReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignAuto     = layout.AlignAuto
	AlignStart    = layout.AlignStart
	AlignEnd      = layout.AlignEnd
	AlignCenter   = layout.AlignCenter
	AlignStretch  = layout.AlignStretch
	AlignBaseline = layout.AlignBaseline
)

// TextDirection resolves start and end on horizontal axes.
type TextDirection = layout.TextDirection

const (
	TextAuto = layout.TextAuto
	TextLTR  = layout.TextLTR
	TextRTL  = layout.TextRTL
)

// Visibility controls whether an element takes part in layout.
type Visibility = layout.Visibility

const (
	Visible   = layout.Visible
	Hidden    = layout.Hidden
	Collapsed = layout.Collapsed
)

// LayoutPolicy overrides how an element sizes itself along one axis.
type LayoutPolicy = layout.LayoutPolicy

const (
	PolicyNone        = layout.PolicyNone
	PolicyMatchParent = layout.PolicyMatchParent
)

// SafeAreaEdges is a set of container edges an element may extend into.
type SafeAreaEdges = layout.SafeAreaEdges

const (
	SafeEdgeNone   = layout.SafeEdgeNone
	SafeEdgeTop    = layout.SafeEdgeTop
	SafeEdgeBottom = layout.SafeEdgeBottom
	SafeEdgeStart  = layout.SafeEdgeStart
	SafeEdgeEnd    = layout.SafeEdgeEnd
	SafeEdgeAll    = layout.SafeEdgeAll
)

// HostKind tags the flex host variant of a container.
type HostKind = layout.HostKind

const (
	HostFlex   = layout.HostFlex
	HostLinear = layout.HostLinear
)

// Dimension represents a length (px, percent, or auto).
type Dimension = layout.Dimension

// Unit specifies how a Dimension is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitPx      = layout.UnitPx
	UnitPercent = layout.UnitPercent
)

// Size represents a width/height pair.
type Size = layout.SizeF

// Offset represents a position relative to a parent's frame.
type Offset = layout.OffsetF

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Constraint is what a parent hands a child to measure against.
type Constraint = layout.Constraint

// LayoutProps is the element-level layout declaration.
type LayoutProps = layout.LayoutProps

// FlexItem is the per-child flex declaration.
type FlexItem = layout.FlexItem

// ContainerStyle holds the properties a container declares for its children.
type ContainerStyle = layout.ContainerStyle

// Layoutable is the interface that nodes must implement for layout calculation.
type Layoutable = layout.Layoutable

// Container is a Layoutable that lays out its children.
type Container = layout.Container

// FlexHost is the capability a container brings to the engine.
type FlexHost = layout.FlexHost

// Px creates a Dimension with an absolute length.
func Px(v float32) Dimension {
	return layout.Px(v)
}

// Percent creates a Dimension representing a percentage of the reference.
func Percent(p float32) Dimension {
	return layout.Percent(p)
}

// Auto creates a Dimension that sizes to content.
func Auto() Dimension {
	return layout.Auto()
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v float32) Edges {
	return layout.EdgeAll(v)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h float32) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float32) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float32) Rect {
	return layout.NewRect(x, y, width, height)
}

// Unbounded returns a constraint with no upper limit on either axis.
func Unbounded() Constraint {
	return layout.Unbounded()
}

// Bounded returns a constraint capped at size.
func Bounded(size Size) Constraint {
	return layout.Bounded(size)
}

// Exact returns a constraint that pins both axes to size.
func Exact(size Size) Constraint {
	return layout.Exact(size)
}

// DefaultContainerStyle returns the style of a plain row.
func DefaultContainerStyle() ContainerStyle {
	return layout.DefaultContainerStyle()
}

// Float returns a pointer to v, for FlexItem.Shrink.
func Float(v float32) *float32 {
	return layout.Float(v)
}
