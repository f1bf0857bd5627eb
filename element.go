package flex

import "github.com/grindlemire/go-flex/internal/layout"

// Element is a box in a layout tree. An element with children, or one
// created by NewRow, NewColumn or NewFlex, is a container and runs a flex
// pass over its children; any other element is a leaf sized from its
// intrinsic content size.
type Element struct {
	name string

	// Tree structure
	children []*Element
	parent   *Element

	// Declared layout properties
	props     LayoutProps
	item      FlexItem
	style     ContainerStyle
	host      HostKind
	container bool

	// Leaf content
	intrinsic   Size
	baseline    float32
	hasBaseline bool
	placeholder bool

	// Pass results
	algo     layout.Algorithm
	size     Size
	offset   Offset
	inactive bool

	// Measure cache
	dirty          bool
	cached         bool
	lastConstraint Constraint
	measures       int
}

// Compile-time check that Element implements Container
var _ Container = (*Element)(nil)

// New creates a new Element with the given options.
// By default an Element is an auto-sized leaf in a generic flex host.
func New(opts ...Option) *Element {
	e := &Element{
		style: DefaultContainerStyle(),
		host:  HostFlex,
		dirty: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewFlex creates a generic flex container. Its children shrink by default.
func NewFlex(opts ...Option) *Element {
	e := New(opts...)
	e.container = true
	return e
}

// NewRow creates a linear row. Its children keep their natural size
// unless they opt into shrinking.
func NewRow(opts ...Option) *Element {
	e := New(append([]Option{WithDirection(Row)}, opts...)...)
	e.container = true
	e.host = HostLinear
	return e
}

// NewColumn creates a linear column.
func NewColumn(opts ...Option) *Element {
	e := New(append([]Option{WithDirection(Column)}, opts...)...)
	e.container = true
	e.host = HostLinear
	return e
}

// NewSpacer creates a stretchable placeholder that takes the leftover
// main-axis space of its container.
func NewSpacer(opts ...Option) *Element {
	e := New(append([]Option{WithFlexGrow(1)}, opts...)...)
	e.placeholder = true
	return e
}

// Update applies opts to an existing element and marks it dirty.
func (e *Element) Update(opts ...Option) {
	for _, opt := range opts {
		opt(e)
	}
	e.MarkDirty()
}
