package layout

// isHorizontal reports whether the main axis runs left/right.
func isHorizontal(d Direction) bool {
	return d == Row || d == RowReverse
}

// resolveTextDirection turns TextAuto into a concrete direction.
func resolveTextDirection(td TextDirection) TextDirection {
	if td == TextRTL {
		return TextRTL
	}
	return TextLTR
}

// mainSizeOf returns the main-axis component of s.
func mainSizeOf(s SizeF, d Direction) float32 {
	if isHorizontal(d) {
		return s.Width
	}
	return s.Height
}

// crossSizeOf returns the cross-axis component of s.
func crossSizeOf(s SizeF, d Direction) float32 {
	if isHorizontal(d) {
		return s.Height
	}
	return s.Width
}

// sizeFromAxes builds a SizeF from a (main, cross) pair.
func sizeFromAxes(main, cross float32, d Direction) SizeF {
	if isHorizontal(d) {
		return SizeF{Width: main, Height: cross}
	}
	return SizeF{Width: cross, Height: main}
}

// offsetFromAxes builds an OffsetF from a (main, cross) pair.
func offsetFromAxes(main, cross float32, d Direction) OffsetF {
	if isHorizontal(d) {
		return OffsetF{X: main, Y: cross}
	}
	return OffsetF{X: cross, Y: main}
}

// optionalMain returns the main-axis component of an OptionalSize.
func optionalMain(o OptionalSize, d Direction) (float32, bool) {
	if isHorizontal(d) {
		return o.Width, o.HasWidth
	}
	return o.Height, o.HasHeight
}

// optionalCross returns the cross-axis component of an OptionalSize.
func optionalCross(o OptionalSize, d Direction) (float32, bool) {
	if isHorizontal(d) {
		return o.Height, o.HasHeight
	}
	return o.Width, o.HasWidth
}

// setOptionalMain pins the main-axis component of an OptionalSize.
func setOptionalMain(o OptionalSize, v float32, d Direction) OptionalSize {
	if isHorizontal(d) {
		return o.SetWidth(v)
	}
	return o.SetHeight(v)
}

// setOptionalCross pins the cross-axis component of an OptionalSize.
func setOptionalCross(o OptionalSize, v float32, d Direction) OptionalSize {
	if isHorizontal(d) {
		return o.SetHeight(v)
	}
	return o.SetWidth(v)
}

// mainMargin returns the total margin along the main axis.
func mainMargin(e Edges, d Direction) float32 {
	if isHorizontal(d) {
		return e.Horizontal()
	}
	return e.Vertical()
}

// crossMargin returns the total margin along the cross axis.
func crossMargin(e Edges, d Direction) float32 {
	if isHorizontal(d) {
		return e.Vertical()
	}
	return e.Horizontal()
}

// mainLeading returns the physical left/top edge on the main axis.
func mainLeading(e Edges, d Direction) float32 {
	if isHorizontal(d) {
		return e.Left
	}
	return e.Top
}

// crossLeading returns the physical left/top edge on the cross axis.
func crossLeading(e Edges, d Direction) float32 {
	if isHorizontal(d) {
		return e.Top
	}
	return e.Left
}

// isMainReversed reports whether the resolved main start is not the
// physical left/top edge, so the placement cursor runs backwards.
func isMainReversed(d Direction, td TextDirection) bool {
	rtl := resolveTextDirection(td) == TextRTL
	switch d {
	case Row:
		return rtl
	case RowReverse:
		return !rtl
	case ColumnReverse:
		return true
	default:
		return false
	}
}

// isCrossReversed reports whether cross start is the physical right edge.
// Only column directions have a horizontal cross axis that RTL can flip.
func isCrossReversed(d Direction, td TextDirection) bool {
	return !isHorizontal(d) && resolveTextDirection(td) == TextRTL
}

// safeAreaMainStart returns the safe-area inset at the main-axis start edge
// and the flag a child needs to extend into it.
func safeAreaMainStart(safe Edges, d Direction, td TextDirection) (float32, SafeAreaEdges) {
	if isHorizontal(d) {
		if isMainReversed(d, td) {
			return safe.Right, physicalRightFlag(td)
		}
		return safe.Left, physicalLeftFlag(td)
	}
	if isMainReversed(d, td) {
		return safe.Bottom, SafeEdgeBottom
	}
	return safe.Top, SafeEdgeTop
}

// safeAreaCrossStart is safeAreaMainStart for the cross axis.
func safeAreaCrossStart(safe Edges, d Direction, td TextDirection) (float32, SafeAreaEdges) {
	if isHorizontal(d) {
		return safe.Top, SafeEdgeTop
	}
	if isCrossReversed(d, td) {
		return safe.Right, physicalRightFlag(td)
	}
	return safe.Left, physicalLeftFlag(td)
}

func physicalLeftFlag(td TextDirection) SafeAreaEdges {
	if resolveTextDirection(td) == TextRTL {
		return SafeEdgeEnd
	}
	return SafeEdgeStart
}

func physicalRightFlag(td TextDirection) SafeAreaEdges {
	if resolveTextDirection(td) == TextRTL {
		return SafeEdgeStart
	}
	return SafeEdgeEnd
}
