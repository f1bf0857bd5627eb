package layout

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-flex/internal/debug"
)

func TestPlacement_ColumnSpaceBetween(t *testing.T) {
	style := columnStyle()
	style.Justify = JustifySpaceBetween

	root := newTestFlex(style,
		newTestNode(0, 0).fixed(20, 50),
		newTestNode(0, 0).fixed(20, 50),
		newTestNode(0, 0).fixed(20, 50),
	)
	run(root, 100, 500)

	want := []float32{0, 225, 450}
	for i, child := range root.children {
		assert.InDelta(t, want[i], child.Offset().Y, 0.01, "child %d", i)
	}
}

func TestPlacement_Justify(t *testing.T) {
	type tc struct {
		justify  Justify
		spacing  float32
		expected []float32
	}

	// three 60-wide children in a 300-wide row
	tests := map[string]tc{
		"start": {
			justify:  JustifyStart,
			expected: []float32{0, 60, 120},
		},
		"start with spacing": {
			justify:  JustifyStart,
			spacing:  10,
			expected: []float32{0, 70, 140},
		},
		"end": {
			justify:  JustifyEnd,
			expected: []float32{120, 180, 240},
		},
		"end with spacing": {
			justify:  JustifyEnd,
			spacing:  10,
			expected: []float32{100, 170, 240},
		},
		"center": {
			justify:  JustifyCenter,
			expected: []float32{60, 120, 180},
		},
		"space between": {
			justify:  JustifySpaceBetween,
			expected: []float32{0, 120, 240},
		},
		"space between ignores spacing": {
			justify:  JustifySpaceBetween,
			spacing:  10,
			expected: []float32{0, 120, 240},
		},
		"space around": {
			justify:  JustifySpaceAround,
			expected: []float32{20, 120, 220},
		},
		"space evenly": {
			justify:  JustifySpaceEvenly,
			expected: []float32{30, 120, 210},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			style := rowStyle()
			style.Justify = tt.justify
			style.Spacing = Px(tt.spacing)
			root := newTestLinear(style,
				newTestNode(0, 0).fixed(60, 10),
				newTestNode(0, 0).fixed(60, 10),
				newTestNode(0, 0).fixed(60, 10),
			)
			run(root, 300, 10)

			for i, child := range root.children {
				assert.InDelta(t, tt.expected[i], child.Offset().X, 0.01, "child %d", i)
			}
		})
	}
}

func TestPlacement_SingleChildSpaceModes(t *testing.T) {
	type tc struct {
		justify  Justify
		expected float32
	}

	tests := map[string]tc{
		"space between packs at start": {JustifySpaceBetween, 0},
		"space around centers":         {JustifySpaceAround, 70},
		"space evenly centers":         {JustifySpaceEvenly, 70},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			style := rowStyle()
			style.Justify = tt.justify
			child := newTestNode(0, 0).fixed(60, 10)
			root := newTestLinear(style, child)
			run(root, 200, 10)

			assert.InDelta(t, tt.expected, child.Offset().X, 0.01)
		})
	}
}

func TestPlacement_CrossAlignment(t *testing.T) {
	type tc struct {
		align    Align
		self     Align
		expected float32
	}

	// 20-tall child in a 100-tall row
	tests := map[string]tc{
		"start":               {align: AlignStart, expected: 0},
		"end":                 {align: AlignEnd, expected: 80},
		"center":              {align: AlignCenter, expected: 40},
		"auto falls to start": {align: AlignAuto, expected: 0},
		"align self wins":     {align: AlignStart, self: AlignEnd, expected: 80},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			style := rowStyle()
			style.AlignItems = tt.align
			child := newTestNode(0, 0).fixed(30, 20).flex(FlexItem{AlignSelf: tt.self})
			root := newTestFlex(style, child)
			run(root, 200, 100)

			assert.InDelta(t, tt.expected, child.Offset().Y, 0.01)
		})
	}
}

func TestPlacement_CrossMargins(t *testing.T) {
	style := rowStyle()
	style.AlignItems = AlignEnd
	child := newTestNode(0, 0).fixed(30, 20)
	child.props.Margin = EdgeTRBL(0, 0, 5, 7)

	root := newTestFlex(style, child)
	run(root, 200, 100)

	assert.Equal(t, OffsetF{X: 7, Y: 75}, child.Offset())
}

func TestPlacement_ReverseDirections(t *testing.T) {
	type tc struct {
		direction Direction
		text      TextDirection
		expected  []OffsetF
	}

	// children 40x10 and 60x20 in a 200x100 container
	tests := map[string]tc{
		"row": {
			direction: Row,
			expected:  []OffsetF{{X: 0}, {X: 40}},
		},
		"row reverse": {
			direction: RowReverse,
			expected:  []OffsetF{{X: 160}, {X: 100}},
		},
		"row rtl": {
			direction: Row,
			text:      TextRTL,
			expected:  []OffsetF{{X: 160}, {X: 100}},
		},
		"row reverse rtl": {
			direction: RowReverse,
			text:      TextRTL,
			expected:  []OffsetF{{X: 0}, {X: 40}},
		},
		"column": {
			direction: Column,
			expected:  []OffsetF{{Y: 0}, {Y: 10}},
		},
		"column reverse": {
			direction: ColumnReverse,
			expected:  []OffsetF{{Y: 90}, {Y: 70}},
		},
		"column rtl": {
			direction: Column,
			text:      TextRTL,
			expected:  []OffsetF{{X: 160, Y: 0}, {X: 140, Y: 10}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			style := rowStyle()
			style.Direction = tt.direction
			style.TextDirection = tt.text
			root := newTestLinear(style,
				newTestNode(0, 0).fixed(40, 10),
				newTestNode(0, 0).fixed(60, 20),
			)
			run(root, 200, 100)

			for i, child := range root.children {
				assert.InDelta(t, tt.expected[i].X, child.Offset().X, 0.01, "child %d x", i)
				assert.InDelta(t, tt.expected[i].Y, child.Offset().Y, 0.01, "child %d y", i)
			}
		})
	}
}

func TestPlacement_RTLMirrorsRow(t *testing.T) {
	justifies := []Justify{
		JustifyStart, JustifyEnd, JustifyCenter,
		JustifySpaceBetween, JustifySpaceAround, JustifySpaceEvenly,
	}
	const width = 360

	for _, j := range justifies {
		build := func(td TextDirection) *testNode {
			style := rowStyle()
			style.Justify = j
			style.Spacing = Px(8)
			style.TextDirection = td
			root := newTestFlex(style,
				newTestNode(0, 0).fixed(50, 10),
				newTestNode(0, 0).fixed(70, 10),
				newTestNode(0, 0).fixed(30, 10),
			)
			run(root, width, 10)
			return root
		}

		ltr, rtl := build(TextLTR), build(TextRTL)
		for i := range ltr.children {
			l, r := Frame(ltr.children[i]), Frame(rtl.children[i])
			assert.InDelta(t, width-l.Right(), r.X, 0.01, "justify %d child %d", j, i)
			assert.InDelta(t, l.Y, r.Y, 0.01, "justify %d child %d", j, i)
		}
	}
}

func TestPlacement_RTLMirrorsColumnCrossAxis(t *testing.T) {
	aligns := []Align{AlignStart, AlignEnd, AlignCenter}
	const width = 200

	for _, a := range aligns {
		build := func(td TextDirection, align Align) *testNode {
			style := columnStyle()
			style.AlignItems = align
			style.TextDirection = td
			root := newTestFlex(style,
				newTestNode(0, 0).fixed(50, 10),
				newTestNode(0, 0).fixed(120, 10),
			)
			run(root, width, 100)
			return root
		}

		ltr := build(TextLTR, a)
		rtl := build(TextRTL, a)
		mirrored := build(TextLTR, mirrorAlign(a))
		for i := range ltr.children {
			l := Frame(ltr.children[i])
			assert.InDelta(t, width-l.Right(), Frame(rtl.children[i]).X, 0.01, "align %d child %d", a, i)
			assert.InDelta(t, width-l.Right(), Frame(mirrored.children[i]).X, 0.01, "align %d child %d", a, i)
		}
	}
}

func TestPlacement_DoubleFlipIsIdentity(t *testing.T) {
	for _, d := range []Direction{Row, RowReverse} {
		build := func(dir Direction, td TextDirection) *testNode {
			style := rowStyle()
			style.Direction = dir
			style.TextDirection = td
			style.Justify = JustifyCenter
			root := newTestFlex(style,
				newTestNode(0, 0).fixed(50, 10),
				newTestNode(0, 0).fixed(70, 10),
			)
			run(root, 300, 10)
			return root
		}

		plain := build(d, TextLTR)
		flipped := build(flipDirection(d), TextRTL)
		for i := range plain.children {
			assert.Equal(t, plain.children[i].Offset(), flipped.children[i].Offset(), "direction %d child %d", d, i)
		}
	}
}

func TestPlacement_Baseline(t *testing.T) {
	style := rowStyle()
	style.AlignItems = AlignBaseline

	big := newTestNode(0, 0).fixed(40, 40)
	big.baseline, big.hasBaseline = 30, true
	small := newTestNode(0, 0).fixed(40, 20)
	small.baseline, small.hasBaseline = 10, true
	noBaseline := newTestNode(0, 0).fixed(40, 15)

	row := newTestFlex(style, big, small, noBaseline)
	got := row.Measure(Bounded(SizeF{Width: 300, Height: 300}))
	row.Layout()

	assert.InDelta(t, 0, big.Offset().Y, 0.01)
	assert.InDelta(t, 20, small.Offset().Y, 0.01)
	assert.InDelta(t, 15, noBaseline.Offset().Y, 0.01)
	assert.InDelta(t, 40, got.Height, 0.01)

	baseline, ok := row.Baseline()
	require.True(t, ok)
	assert.InDelta(t, 30, baseline, 0.01)
}

func TestPlacement_BaselineGrowsCrossSize(t *testing.T) {
	style := rowStyle()
	style.AlignItems = AlignBaseline

	// baselines at 5 and 25 on 30-tall children: 25 above + 25 below
	a := newTestNode(0, 0).fixed(10, 30)
	a.baseline, a.hasBaseline = 5, true
	b := newTestNode(0, 0).fixed(10, 30)
	b.baseline, b.hasBaseline = 25, true

	row := newTestFlex(style, a, b)
	got := row.Measure(Bounded(SizeF{Width: 300, Height: 300}))
	row.Layout()

	assert.InDelta(t, 50, got.Height, 0.01)
	assert.InDelta(t, 20, a.Offset().Y, 0.01)
	assert.InDelta(t, 0, b.Offset().Y, 0.01)
}

func TestPlacement_BaselineInColumnIsStart(t *testing.T) {
	style := columnStyle()
	style.AlignItems = AlignBaseline
	child := newTestNode(0, 0).fixed(40, 40)
	child.baseline, child.hasBaseline = 30, true

	col := newTestFlex(style, child)
	run(col, 200, 200)

	assert.Equal(t, OffsetF{}, child.Offset())
	_, ok := col.Baseline()
	assert.False(t, ok)
}

func TestPlacement_SafeArea(t *testing.T) {
	type tc struct {
		style  func() ContainerStyle
		flags  SafeAreaEdges
		first  OffsetF
		second OffsetF
	}

	tests := map[string]tc{
		"no flags stays inside the inset": {
			style: func() ContainerStyle {
				s := rowStyle()
				s.SafeArea = EdgeTRBL(8, 0, 0, 20)
				return s
			},
			first:  OffsetF{X: 20, Y: 8},
			second: OffsetF{X: 70, Y: 8},
		},
		"start and top expand first child only": {
			style: func() ContainerStyle {
				s := rowStyle()
				s.SafeArea = EdgeTRBL(8, 0, 0, 20)
				return s
			},
			flags:  SafeEdgeStart | SafeEdgeTop,
			first:  OffsetF{X: 0, Y: 0},
			second: OffsetF{X: 70, Y: 8},
		},
		"no main expansion when not flush": {
			style: func() ContainerStyle {
				s := rowStyle()
				s.SafeArea = EdgeTRBL(0, 0, 0, 20)
				s.Justify = JustifyEnd
				return s
			},
			flags:  SafeEdgeAll,
			first:  OffsetF{X: 120, Y: 0},
			second: OffsetF{X: 170, Y: 0},
		},
		"container wide flags": {
			style: func() ContainerStyle {
				s := rowStyle()
				s.SafeArea = EdgeTRBL(0, 0, 0, 20)
				s.IgnoreSafeArea = SafeEdgeStart
				return s
			},
			first:  OffsetF{X: 0, Y: 0},
			second: OffsetF{X: 70, Y: 0},
		},
		"rtl start is the right edge": {
			style: func() ContainerStyle {
				s := rowStyle()
				s.SafeArea = EdgeTRBL(0, 20, 0, 0)
				s.TextDirection = TextRTL
				return s
			},
			flags:  SafeEdgeStart,
			first:  OffsetF{X: 170, Y: 0},
			second: OffsetF{X: 100, Y: 0},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := newTestNode(0, 0).fixed(50, 10)
			a.props.IgnoreSafeArea = tt.flags
			b := newTestNode(0, 0).fixed(50, 10)
			b.props.IgnoreSafeArea = tt.flags

			root := newTestLinear(tt.style(), a, b)
			run(root, 220, 40)

			assert.Equal(t, tt.first, a.Offset(), "first")
			assert.Equal(t, tt.second, b.Offset(), "second")
		})
	}
}

func TestPlacement_SafeAreaReducesContent(t *testing.T) {
	style := rowStyle()
	style.SafeArea = EdgeTRBL(0, 0, 0, 20)
	grow := newTestNode(0, 0).fixed(0, 10).flex(FlexItem{Grow: 1})

	root := newTestFlex(style, grow)
	run(root, 220, 40)

	assert.InDelta(t, 200, grow.MeasuredSize().Width, 0.01)
	assert.InDelta(t, 200, root.algo.Pass().MainAxisSize(), 0.01)
}

func TestPlacement_PhaseAdvances(t *testing.T) {
	root := newTestFlex(rowStyle(), newTestNode(10, 10))
	assert.Equal(t, "idle", root.algo.Phase())

	root.Measure(Exact(SizeF{Width: 100, Height: 10}))
	assert.Equal(t, "idle", root.algo.Phase())

	root.Layout()
	assert.Equal(t, "done", root.algo.Phase())
}

func TestPlacement_LayoutBeforeMeasure(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	t.Cleanup(func() { debug.SetOutput(nil) })

	child := newTestNode(10, 10)
	child.offset = OffsetF{X: 3, Y: 3}
	root := newTestFlex(rowStyle(), child)
	root.Layout()

	assert.Equal(t, OffsetF{X: 3, Y: 3}, child.Offset())
	assert.Contains(t, buf.String(), "layout called before measure")
}

func TestPlacement_InactiveChildrenAtOrigin(t *testing.T) {
	first := newTestNode(0, 0).fixed(300, 10).flex(FlexItem{DisplayPriority: 1})
	dropped := newTestNode(0, 0).fixed(300, 10).flex(FlexItem{DisplayPriority: 2})
	dropped.offset = OffsetF{X: 99, Y: 99}

	root := newTestFlex(rowStyle(), first, dropped)
	run(root, 400, 10)

	assert.Equal(t, OffsetF{}, dropped.Offset())
	assert.Equal(t, 1, dropped.measures)
}
