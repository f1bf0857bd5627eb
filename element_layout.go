package flex

import "github.com/grindlemire/go-flex/internal/layout"

// --- Implement Layoutable and Container ---

// LayoutProps returns the element-level layout declaration.
func (e *Element) LayoutProps() *LayoutProps {
	return &e.props
}

// FlexItem returns the element's flex item declaration.
func (e *Element) FlexItem() *FlexItem {
	return &e.item
}

// LayoutChildren returns the children to be laid out.
func (e *Element) LayoutChildren() []Layoutable {
	result := make([]Layoutable, len(e.children))
	for i, child := range e.children {
		result[i] = child
	}
	return result
}

// Host returns the flex host variant for this element's children.
func (e *Element) Host() FlexHost {
	if e.host == HostLinear {
		return layout.LinearLayoutHost{Style: e.style}
	}
	return layout.FlexContainerHost{Style: e.style}
}

// IsContainer reports whether the element runs a flex pass.
func (e *Element) IsContainer() bool {
	return e.container || len(e.children) > 0
}

// Measure sizes the element under c. A clean element measured again with
// the same constraint returns its previous size.
func (e *Element) Measure(c Constraint) Size {
	if e.cached && !e.dirty && c == e.lastConstraint {
		return e.size
	}
	e.measures++

	if e.IsContainer() {
		e.algo.Measure(e, c)
	} else {
		natural := e.intrinsic.Add(e.props.Padding.Size())
		e.size = c.Apply(&e.props).Resolve(natural)
	}

	e.lastConstraint = c
	e.cached = true
	e.dirty = false
	return e.size
}

// SetMeasuredSize is called by the engine to commit a container's size.
func (e *Element) SetMeasuredSize(s Size) {
	e.size = s
}

// MeasuredSize returns the last measured size, or zero while inactive.
func (e *Element) MeasuredSize() Size {
	if e.inactive {
		return Size{}
	}
	return e.size
}

// IntrinsicSize returns the natural content size declared for this element.
func (e *Element) IntrinsicSize() Size {
	return e.intrinsic
}

// Baseline returns the distance from the top of the frame to the first
// baseline. Containers report the shared baseline of their children.
func (e *Element) Baseline() (float32, bool) {
	if e.IsContainer() {
		return e.algo.Baseline()
	}
	if !e.hasBaseline {
		return 0, false
	}
	return e.props.Padding.Top + e.baseline, true
}

// SetActive is called by the engine when the element enters or leaves
// display for the current pass.
func (e *Element) SetActive(active bool) {
	e.inactive = !active
}

// IsActive reports whether the element was displayed by the last pass.
func (e *Element) IsActive() bool {
	return !e.inactive
}

// SetOffset stores the element's position relative to its parent.
func (e *Element) SetOffset(o Offset) {
	e.offset = o
}

// Offset returns the element's position relative to its parent.
func (e *Element) Offset() Offset {
	return e.offset
}

// Layout positions the element's children.
func (e *Element) Layout() {
	if e.IsContainer() {
		e.algo.Layout(e)
	}
}

// IsPlaceholder reports whether the element is a stretchable spacer.
func (e *Element) IsPlaceholder() bool {
	return e.placeholder
}

// --- Element's own layout API ---

// Calculate lays out root against a width x height viewport. The root is
// pinned to the viewport and placed at the origin.
func Calculate(root *Element, width, height float32) {
	root.SetActive(true)
	root.Measure(Exact(Size{Width: width, Height: height}))
	root.SetOffset(Offset{})
	root.Layout()
}

// Calculate lays out this element and all descendants. See Calculate.
func (e *Element) Calculate(width, height float32) {
	Calculate(e, width, height)
}

// Frame returns the element's rect relative to its parent.
func (e *Element) Frame() Rect {
	return layout.Frame(e)
}

// AbsoluteFrame returns the element's rect relative to the root.
func (e *Element) AbsoluteFrame() Rect {
	r := e.Frame()
	for p := e.parent; p != nil; p = p.parent {
		r = r.Translate(p.offset.X, p.offset.Y)
	}
	return r
}

// IsDirty returns whether this element needs to be measured again.
func (e *Element) IsDirty() bool {
	return e.dirty
}

// MarkDirty marks this element and its ancestors as needing measurement.
// Collapsed children are never measured and stay dirty under a clean
// parent, so the walk always reaches the root.
func (e *Element) MarkDirty() {
	for elem := e; elem != nil; elem = elem.parent {
		elem.dirty = true
	}
}
