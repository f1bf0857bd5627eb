package layout

// Layoutable is the interface for anything that can participate in a flex
// pass as a child. The engine works entirely with this interface, enabling
// custom implementations.
type Layoutable interface {
	// LayoutProps returns the node-level layout declaration, or nil.
	LayoutProps() *LayoutProps

	// FlexItem returns the flex item declaration, or nil.
	FlexItem() *FlexItem

	// Measure sizes the node under c, stores the result and returns it.
	// Containers run their own flex pass here.
	Measure(c Constraint) SizeF

	// MeasuredSize returns the size stored by the last Measure, or zero
	// while inactive.
	MeasuredSize() SizeF

	// IntrinsicSize returns the natural content-based size of the node.
	IntrinsicSize() SizeF

	// Baseline returns the distance from the top of the frame to the first
	// text baseline. ok is false when the node has no baseline.
	Baseline() (distance float32, ok bool)

	// SetActive marks the node as taking part in the current frame.
	// An inactive node has a zero measured size.
	SetActive(active bool)
	IsActive() bool

	// SetOffset stores the node's position relative to its parent's frame.
	SetOffset(OffsetF)
	Offset() OffsetF

	// Layout positions the node's own children. Called after SetOffset.
	Layout()

	// IsPlaceholder marks stretchable filler elements (spacers, blanks)
	// that take leftover space rather than a natural size.
	IsPlaceholder() bool
}

// Container is a Layoutable that lays out children with a flex pass.
type Container interface {
	Layoutable

	// LayoutChildren returns the children to be laid out, in document order.
	LayoutChildren() []Layoutable

	// Host returns the container's flex host variant.
	Host() FlexHost

	// SetMeasuredSize commits the container's own size for this pass.
	SetMeasuredSize(SizeF)
}

// Frame returns the rect a node occupies in its parent's coordinate space.
func Frame(n Layoutable) Rect {
	off, size := n.Offset(), n.MeasuredSize()
	return Rect{X: off.X, Y: off.Y, Width: size.Width, Height: size.Height}
}
