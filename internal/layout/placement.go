package layout

import "github.com/grindlemire/go-flex/internal/debug"

// Layout positions the children measured by the last Measure and recurses
// into each of them. It does nothing if Measure has not run.
func (a *Algorithm) Layout(c Container) {
	s := a.pass
	if s == nil || !s.measured {
		debug.Log("flex: layout called before measure")
		return
	}
	s.phase = phaseIdle

	s.computeSpacing()
	s.positionChildren()

	for _, slot := range s.slots {
		if slot.rec != nil && !slot.rec.isIncluded() {
			continue
		}
		if slot.rec == nil && !slot.node.IsActive() {
			continue
		}
		slot.node.Layout()
	}
	s.phase = phaseDone
}

// Baseline returns the container's own baseline from the top of its frame:
// the shared baseline of its baseline-aligned children.
func (a *Algorithm) Baseline() (float32, bool) {
	s := a.pass
	if s == nil || s.baseline.participants == 0 {
		return 0, false
	}
	return s.padding.Top + s.baseline.maxDistanceAboveBaseline, true
}

// Phase reports where the placement state machine stopped.
func (a *Algorithm) Phase() string {
	if a.pass == nil {
		return phaseIdle.String()
	}
	return a.pass.phase.String()
}

// remainMainAxisSpace is the free main-axis space placement hands out.
func (s *FlexPassState) remainMainAxisSpace() float32 {
	return nonNegative(s.mainAxisSize - s.AllocatedSize())
}

// computeSpacing resolves the space before the first child and between
// consecutive children for the container's justify mode.
func (s *FlexPassState) computeSpacing() {
	remain := s.remainMainAxisSpace()
	n := float32(s.validSizeCount)

	switch s.justify {
	case JustifyEnd:
		s.frontSpace, s.betweenSpace = remain, s.spacing
	case JustifyCenter:
		s.frontSpace, s.betweenSpace = remain/2, s.spacing
	case JustifySpaceBetween:
		s.frontSpace, s.betweenSpace = 0, 0
		if n > 1 {
			s.betweenSpace = remain / (n - 1)
		}
	case JustifySpaceAround:
		s.frontSpace, s.betweenSpace = 0, 0
		if n > 0 {
			s.betweenSpace = remain / n
			s.frontSpace = s.betweenSpace / 2
		}
	case JustifySpaceEvenly:
		s.betweenSpace = remain / (n + 1)
		s.frontSpace = s.betweenSpace
	default:
		s.frontSpace, s.betweenSpace = 0, s.spacing
	}
	s.phase = phaseSpacingComputed
}

// positionChildren walks the children in document order and sets every
// offset. Offsets are relative to the container's frame.
func (s *FlexPassState) positionChildren() {
	d := s.direction
	reversed := isMainReversed(d, s.textDirection)
	contentStart := mainLeading(s.padding, d)

	cursor := contentStart + s.frontSpace
	if reversed {
		cursor = contentStart + s.mainAxisSize - s.frontSpace
	}

	first := true
	for _, slot := range s.slots {
		switch slot.kind {
		case slotOutOfLayout:
			slot.node.SetOffset(OffsetF{})
			continue
		case slotMatchParent:
			if slot.node.IsActive() {
				s.positionMatchParent(slot.node, reversed)
			} else {
				slot.node.SetOffset(OffsetF{})
			}
			continue
		}

		rec := slot.rec
		if !rec.isIncluded() {
			rec.node.SetOffset(OffsetF{})
			continue
		}

		m := margins(rec.node.LayoutProps())
		size := rec.node.MeasuredSize()
		outer := mainSizeOf(size, d) + mainMargin(m, d)

		var main float32
		if reversed {
			cursor -= outer
			main = cursor + mainLeading(m, d)
			cursor -= s.betweenSpace
		} else {
			main = cursor + mainLeading(m, d)
			cursor += outer + s.betweenSpace
		}

		align := s.effectiveAlign(rec.node.FlexItem())
		cross := s.crossPosition(rec.node, align)

		if first {
			main, cross = s.expandSafeArea(rec.node, align, main, cross, reversed)
			first = false
		}
		rec.node.SetOffset(offsetFromAxes(main, cross, d))
	}
	s.phase = phaseChildrenPositioned
}

// crossPosition returns a child's frame position on the cross axis.
func (s *FlexPassState) crossPosition(node Layoutable, align Align) float32 {
	d := s.direction
	m := margins(node.LayoutProps())
	childCross := crossSizeOf(node.MeasuredSize(), d)
	free := s.crossAxisSize - childCross - crossMargin(m, d)
	start := crossLeading(s.padding, d)
	reversed := isCrossReversed(d, s.textDirection)

	var pos float32
	switch align {
	case AlignEnd:
		pos = free
		if reversed {
			pos = 0
		}
	case AlignCenter:
		pos = free / 2
	case AlignBaseline:
		distance, ok := node.Baseline()
		if !ok {
			distance = childCross
		}
		pos = s.baseline.maxDistanceAboveBaseline - (m.Top + distance)
	default:
		// start and stretch
		if reversed {
			pos = free
		}
	}
	return start + pos + crossLeading(m, d)
}

// positionMatchParent places a match-parent child at the content start on
// the main axis and aligns it on the cross axis.
func (s *FlexPassState) positionMatchParent(node Layoutable, reversed bool) {
	d := s.direction
	m := margins(node.LayoutProps())
	start := mainLeading(s.padding, d)
	main := start + mainLeading(m, d)
	if reversed {
		outer := mainSizeOf(node.MeasuredSize(), d) + mainMargin(m, d)
		main = start + s.mainAxisSize - outer + mainLeading(m, d)
	}
	cross := s.crossPosition(node, s.effectiveAlign(node.FlexItem()))
	node.SetOffset(offsetFromAxes(main, cross, d))
}

// expandSafeArea moves the first positioned child into the safe-area inset
// along each edge the child (or container) ignores. The main axis expands
// only when the child sits flush with the start edge.
func (s *FlexPassState) expandSafeArea(node Layoutable, align Align, main, cross float32, reversed bool) (float32, float32) {
	var flags SafeAreaEdges
	if props := node.LayoutProps(); props != nil {
		flags = props.IgnoreSafeArea
	}
	flags |= s.ignoreSafe
	if flags == SafeEdgeNone || s.safeArea.IsZero() {
		return main, cross
	}

	d, td := s.direction, s.textDirection
	if inset, edge := safeAreaMainStart(s.safeArea, d, td); flags.Has(edge) && nearZero(s.frontSpace) {
		if reversed {
			main += inset
		} else {
			main -= inset
		}
	}
	if align == AlignStart || align == AlignStretch {
		if inset, edge := safeAreaCrossStart(s.safeArea, d, td); flags.Has(edge) {
			if isCrossReversed(d, td) {
				cross += inset
			} else {
				cross -= inset
			}
		}
	}
	return main, cross
}
