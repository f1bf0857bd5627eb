package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row           Direction = iota // Children laid out start-to-end horizontally
	RowReverse                     // Children laid out end-to-start horizontally
	Column                         // Children laid out top-to-bottom
	ColumnReverse                  // Children laid out bottom-to-top
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// isSpaceMode reports whether spacing is computed from free space rather
// than taken from the container's declared spacing.
func (j Justify) isSpaceMode() bool {
	return j == JustifySpaceBetween || j == JustifySpaceAround || j == JustifySpaceEvenly
}

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignAuto     Align = iota // Inherit the container's AlignItems (align-self only)
	AlignStart                 // Align to start of cross axis
	AlignEnd                   // Align to end of cross axis
	AlignCenter                // Center on cross axis
	AlignStretch               // Stretch to fill cross axis
	AlignBaseline              // Align text baselines (row directions only)
)

// TextDirection resolves start/end for horizontal axes.
type TextDirection uint8

const (
	TextAuto TextDirection = iota // Resolves to TextLTR
	TextLTR
	TextRTL
)

// Visibility controls whether a node takes part in layout.
type Visibility uint8

const (
	Visible   Visibility = iota
	Hidden                       // Occupies space, not painted
	Collapsed                    // Occupies no space
)

// LayoutPolicy overrides how a node sizes itself along one axis.
type LayoutPolicy uint8

const (
	PolicyNone        LayoutPolicy = iota
	PolicyMatchParent              // Take the parent's final content size
)

// SafeAreaEdges is a set of container edges whose safe-area inset a child
// may extend into.
type SafeAreaEdges uint8

const (
	SafeEdgeTop SafeAreaEdges = 1 << iota
	SafeEdgeBottom
	SafeEdgeStart
	SafeEdgeEnd

	SafeEdgeNone SafeAreaEdges = 0
	SafeEdgeAll  SafeAreaEdges = SafeEdgeTop | SafeEdgeBottom | SafeEdgeStart | SafeEdgeEnd
)

// Has reports whether all edges in other are set.
func (s SafeAreaEdges) Has(other SafeAreaEdges) bool {
	return other != 0 && s&other == other
}

// LayoutProps is the node-level layout declaration. Any node may return nil
// from Layoutable.LayoutProps, which means all defaults.
type LayoutProps struct {
	Visibility Visibility

	// Sizing. Auto leaves the axis to content or the parent.
	Width     Dimension
	Height    Dimension
	MinWidth  Dimension
	MinHeight Dimension
	MaxWidth  Dimension
	MaxHeight Dimension

	WidthPolicy  LayoutPolicy
	HeightPolicy LayoutPolicy

	Margin  Edges
	Padding Edges

	// LayoutWeight splits the container's main-axis space by weight instead
	// of natural size. Zero means unweighted.
	LayoutWeight float32

	// PositionAbsolute takes the node out of flex flow.
	PositionAbsolute bool

	// IgnoreSafeArea lists container safe-area edges this node extends into.
	IgnoreSafeArea SafeAreaEdges
}

// FlexItem is the per-child flex declaration. A nil FlexItem means all
// defaults: grow 0, host default shrink, auto basis, align auto, priority 1.
type FlexItem struct {
	Grow float32

	// Shrink is nil when unset; the host decides the default.
	Shrink *float32

	Basis     Dimension
	AlignSelf Align

	// DisplayPriority ranks how important the child is when space runs out.
	// 1 is the most important and is kept longest; larger values are dropped
	// first. Values below 1 are treated as 1.
	DisplayPriority int
}

// ContainerStyle holds the properties a container declares for its children.
type ContainerStyle struct {
	Direction     Direction
	Justify       Justify
	AlignItems    Align
	Spacing       Dimension
	TextDirection TextDirection

	// SafeArea is the inset reserved for system chrome inside the
	// container's padding.
	SafeArea Edges

	// IgnoreSafeArea applies to every child in addition to its own flags.
	IgnoreSafeArea SafeAreaEdges
}

// DefaultContainerStyle returns a ContainerStyle with sensible defaults.
func DefaultContainerStyle() ContainerStyle {
	return ContainerStyle{
		Direction:     Row,
		Justify:       JustifyStart,
		AlignItems:    AlignStart,
		Spacing:       Px(0),
		TextDirection: TextLTR,
	}
}

// Float returns a pointer to v, for FlexItem.Shrink.
func Float(v float32) *float32 {
	return &v
}

func flexGrow(item *FlexItem) float32 {
	if item == nil {
		return 0
	}
	return nonNegative(item.Grow)
}

func flexShrink(item *FlexItem, fallback float32) float32 {
	if item == nil || item.Shrink == nil {
		return fallback
	}
	return nonNegative(*item.Shrink)
}

func flexBasis(item *FlexItem) Dimension {
	if item == nil {
		return Auto()
	}
	return item.Basis
}

func displayPriority(item *FlexItem) int {
	if item == nil || item.DisplayPriority < 1 {
		return 1
	}
	return item.DisplayPriority
}

func alignSelf(item *FlexItem, fallback Align) Align {
	if item == nil || item.AlignSelf == AlignAuto {
		return fallback
	}
	return item.AlignSelf
}

func layoutWeight(props *LayoutProps) float32 {
	if props == nil {
		return 0
	}
	return nonNegative(props.LayoutWeight)
}

func margins(props *LayoutProps) Edges {
	if props == nil {
		return Edges{}
	}
	return props.Margin
}

func padding(props *LayoutProps) Edges {
	if props == nil {
		return Edges{}
	}
	return props.Padding
}

func visibility(props *LayoutProps) Visibility {
	if props == nil {
		return Visible
	}
	return props.Visibility
}

func isOutOfLayout(props *LayoutProps) bool {
	return props != nil && props.PositionAbsolute
}

func isMatchParent(props *LayoutProps) bool {
	return props != nil && (props.WidthPolicy == PolicyMatchParent || props.HeightPolicy == PolicyMatchParent)
}
