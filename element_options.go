package flex

// Option configures an Element.
type Option func(*Element)

// WithName sets the element's name.
func WithName(name string) Option {
	return func(e *Element) {
		e.name = name
	}
}

// --- Dimension Options ---

// WithWidth sets a fixed width.
func WithWidth(v float32) Option {
	return func(e *Element) {
		e.props.Width = Px(v)
	}
}

// WithWidthPercent sets width as a percentage of the parent's content width.
func WithWidthPercent(percent float32) Option {
	return func(e *Element) {
		e.props.Width = Percent(percent)
	}
}

// WithHeight sets a fixed height.
func WithHeight(v float32) Option {
	return func(e *Element) {
		e.props.Height = Px(v)
	}
}

// WithHeightPercent sets height as a percentage of the parent's content height.
func WithHeightPercent(percent float32) Option {
	return func(e *Element) {
		e.props.Height = Percent(percent)
	}
}

// WithSize sets both width and height.
func WithSize(width, height float32) Option {
	return func(e *Element) {
		e.props.Width = Px(width)
		e.props.Height = Px(height)
	}
}

// WithMinWidth sets the minimum width.
func WithMinWidth(v float32) Option {
	return func(e *Element) {
		e.props.MinWidth = Px(v)
	}
}

// WithMinHeight sets the minimum height.
func WithMinHeight(v float32) Option {
	return func(e *Element) {
		e.props.MinHeight = Px(v)
	}
}

// WithMaxWidth sets the maximum width.
func WithMaxWidth(v float32) Option {
	return func(e *Element) {
		e.props.MaxWidth = Px(v)
	}
}

// WithMaxHeight sets the maximum height.
func WithMaxHeight(v float32) Option {
	return func(e *Element) {
		e.props.MaxHeight = Px(v)
	}
}

// WithMatchParent makes the element fill its parent's content box on the
// given axes. Such an element is sized after its flow siblings.
func WithMatchParent(width, height bool) Option {
	return func(e *Element) {
		e.props.WidthPolicy = PolicyNone
		e.props.HeightPolicy = PolicyNone
		if width {
			e.props.WidthPolicy = PolicyMatchParent
		}
		if height {
			e.props.HeightPolicy = PolicyMatchParent
		}
	}
}

// --- Container Options ---

// WithDirection sets the main axis for children.
func WithDirection(d Direction) Option {
	return func(e *Element) {
		e.style.Direction = d
	}
}

// WithJustify sets main-axis distribution.
func WithJustify(j Justify) Option {
	return func(e *Element) {
		e.style.Justify = j
	}
}

// WithAlign sets cross-axis alignment for children.
func WithAlign(a Align) Option {
	return func(e *Element) {
		e.style.AlignItems = a
	}
}

// WithSpacing sets a fixed space between consecutive children.
func WithSpacing(v float32) Option {
	return func(e *Element) {
		e.style.Spacing = Px(v)
	}
}

// WithSpacingPercent sets the space between children as a percentage of
// the container's main-axis content size.
func WithSpacingPercent(percent float32) Option {
	return func(e *Element) {
		e.style.Spacing = Percent(percent)
	}
}

// WithTextDirection sets how start and end resolve on horizontal axes.
func WithTextDirection(td TextDirection) Option {
	return func(e *Element) {
		e.style.TextDirection = td
	}
}

// WithSafeArea reserves an inset inside the padding for system chrome.
func WithSafeArea(inset Edges) Option {
	return func(e *Element) {
		e.style.SafeArea = inset
	}
}

// WithChildrenIgnoreSafeArea lets every child extend into the given
// safe-area edges.
func WithChildrenIgnoreSafeArea(edges SafeAreaEdges) Option {
	return func(e *Element) {
		e.style.IgnoreSafeArea = edges
	}
}

// WithHost overrides the element's host variant.
func WithHost(kind HostKind) Option {
	return func(e *Element) {
		e.host = kind
	}
}

// --- Flex Item Options ---

// WithFlexGrow sets how much of the free space this element takes.
func WithFlexGrow(grow float32) Option {
	return func(e *Element) {
		e.item.Grow = grow
	}
}

// WithFlexShrink sets how much this element gives up when space runs short.
func WithFlexShrink(shrink float32) Option {
	return func(e *Element) {
		e.item.Shrink = Float(shrink)
	}
}

// WithFlexBasis sets the element's main-axis starting size.
func WithFlexBasis(basis Dimension) Option {
	return func(e *Element) {
		e.item.Basis = basis
	}
}

// WithAlignSelf overrides the container's cross alignment for this element.
func WithAlignSelf(a Align) Option {
	return func(e *Element) {
		e.item.AlignSelf = a
	}
}

// WithDisplayPriority ranks the element for priority dropping. 1 is kept
// longest; larger values are dropped first.
func WithDisplayPriority(rank int) Option {
	return func(e *Element) {
		e.item.DisplayPriority = rank
	}
}

// WithLayoutWeight splits the container's main axis by weight.
func WithLayoutWeight(weight float32) Option {
	return func(e *Element) {
		e.props.LayoutWeight = weight
	}
}

// --- Spacing Options ---

// WithPadding sets equal padding on all sides.
func WithPadding(v float32) Option {
	return func(e *Element) {
		e.props.Padding = EdgeAll(v)
	}
}

// WithPaddingTRBL sets padding for each side (top, right, bottom, left).
func WithPaddingTRBL(top, right, bottom, left float32) Option {
	return func(e *Element) {
		e.props.Padding = EdgeTRBL(top, right, bottom, left)
	}
}

// WithMargin sets equal margin on all sides.
func WithMargin(v float32) Option {
	return func(e *Element) {
		e.props.Margin = EdgeAll(v)
	}
}

// WithMarginTRBL sets margin for each side (top, right, bottom, left).
func WithMarginTRBL(top, right, bottom, left float32) Option {
	return func(e *Element) {
		e.props.Margin = EdgeTRBL(top, right, bottom, left)
	}
}

// --- Flow Options ---

// WithVisibility sets whether the element is shown, hidden (keeps its
// space) or collapsed (takes no space).
func WithVisibility(v Visibility) Option {
	return func(e *Element) {
		e.props.Visibility = v
	}
}

// WithIgnoreSafeArea lets the element extend into the given safe-area edges.
func WithIgnoreSafeArea(edges SafeAreaEdges) Option {
	return func(e *Element) {
		e.props.IgnoreSafeArea = edges
	}
}

// WithPositionAbsolute takes the element out of flex flow. It is measured
// against the parent's content box and placed at the origin.
func WithPositionAbsolute() Option {
	return func(e *Element) {
		e.props.PositionAbsolute = true
	}
}

// --- Content Options ---

// WithIntrinsicSize sets the natural content size of a leaf.
func WithIntrinsicSize(width, height float32) Option {
	return func(e *Element) {
		e.intrinsic = Size{Width: width, Height: height}
	}
}

// WithBaseline sets the distance from the top of the content box to the
// leaf's first baseline.
func WithBaseline(distance float32) Option {
	return func(e *Element) {
		e.baseline = distance
		e.hasBaseline = true
	}
}
