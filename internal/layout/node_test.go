package layout

// testNode is a minimal Layoutable used across the engine tests. A node
// with a host is a container and runs its own flex pass.
type testNode struct {
	name        string
	props       LayoutProps
	item        *FlexItem
	host        FlexHost
	children    []*testNode
	intrinsic   SizeF
	baseline    float32
	hasBaseline bool
	placeholder bool

	algo     Algorithm
	size     SizeF
	offset   OffsetF
	inactive bool
	measures int
}

func newTestNode(w, h float32) *testNode {
	return &testNode{intrinsic: SizeF{Width: w, Height: h}}
}

func newTestFlex(style ContainerStyle, children ...*testNode) *testNode {
	return &testNode{host: FlexContainerHost{Style: style}, children: children}
}

func newTestLinear(style ContainerStyle, children ...*testNode) *testNode {
	return &testNode{host: LinearLayoutHost{Style: style}, children: children}
}

func newTestSpacer() *testNode {
	return &testNode{placeholder: true, item: &FlexItem{Grow: 1}}
}

func rowStyle() ContainerStyle {
	return DefaultContainerStyle()
}

func columnStyle() ContainerStyle {
	s := DefaultContainerStyle()
	s.Direction = Column
	return s
}

func (n *testNode) fixed(w, h float32) *testNode {
	n.props.Width, n.props.Height = Px(w), Px(h)
	return n
}

func (n *testNode) flex(item FlexItem) *testNode {
	n.item = &item
	return n
}

func (n *testNode) LayoutProps() *LayoutProps { return &n.props }
func (n *testNode) FlexItem() *FlexItem       { return n.item }
func (n *testNode) IntrinsicSize() SizeF      { return n.intrinsic }
func (n *testNode) IsPlaceholder() bool       { return n.placeholder }
func (n *testNode) SetActive(a bool)          { n.inactive = !a }
func (n *testNode) IsActive() bool            { return !n.inactive }
func (n *testNode) SetOffset(o OffsetF)       { n.offset = o }
func (n *testNode) Offset() OffsetF           { return n.offset }
func (n *testNode) Host() FlexHost            { return n.host }
func (n *testNode) SetMeasuredSize(s SizeF)   { n.size = s }

func (n *testNode) MeasuredSize() SizeF {
	if n.inactive {
		return SizeF{}
	}
	return n.size
}

func (n *testNode) Measure(c Constraint) SizeF {
	n.measures++
	if n.host != nil {
		return n.algo.Measure(n, c)
	}
	n.size = c.Apply(&n.props).Resolve(n.intrinsic)
	return n.size
}

func (n *testNode) Baseline() (float32, bool) {
	if n.host != nil {
		return n.algo.Baseline()
	}
	return n.baseline, n.hasBaseline
}

func (n *testNode) Layout() {
	if n.host != nil {
		n.algo.Layout(n)
	}
}

func (n *testNode) LayoutChildren() []Layoutable {
	out := make([]Layoutable, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

var _ Container = (*testNode)(nil)

// run measures root against an exact viewport and lays it out.
func run(root *testNode, w, h float32) {
	root.Measure(Exact(SizeF{Width: w, Height: h}))
	root.Layout()
}

// flipDirection returns d with its main axis reversed.
func flipDirection(d Direction) Direction {
	switch d {
	case Row:
		return RowReverse
	case RowReverse:
		return Row
	case Column:
		return ColumnReverse
	default:
		return Column
	}
}

// mirrorAlign swaps start and end cross alignment.
func mirrorAlign(a Align) Align {
	switch a {
	case AlignStart:
		return AlignEnd
	case AlignEnd:
		return AlignStart
	default:
		return a
	}
}

