package layout

import (
	"github.com/chewxy/math32"

	"github.com/grindlemire/go-flex/internal/debug"
)

// measureMode is the primary solving mode chosen for a pass.
type measureMode uint8

const (
	modeDefault measureMode = iota
	modeWeighted
	modePriority
)

func (m measureMode) String() string {
	switch m {
	case modeWeighted:
		return "weighted"
	case modePriority:
		return "priority"
	default:
		return "default"
	}
}

// Algorithm runs flex passes for one container. The zero value is ready to
// use. An Algorithm must not be used by two passes at once; nested
// containers each own their own.
type Algorithm struct {
	pass *FlexPassState
	mode measureMode
}

// Pass returns the state of the last Measure, or nil.
func (a *Algorithm) Pass() *FlexPassState {
	return a.pass
}

// Mode returns the measure mode the last Measure chose.
func (a *Algorithm) Mode() string {
	return a.mode.String()
}

// Measure sizes the container and its children under constraint, commits
// the container's size and keeps the pass state for Layout.
func (a *Algorithm) Measure(c Container, constraint Constraint) SizeF {
	host := c.Host()
	s := newPassState(host)
	a.pass = s
	a.mode = modeDefault

	props := c.LayoutProps()
	s.padding = padding(props).Add(s.safeArea)
	s.ownConstraint = constraint.Apply(props)
	s.initAxes()

	children := c.LayoutChildren()
	s.classify(children)

	if len(s.records) > 0 {
		a.mode = s.selectMode()
		switch a.mode {
		case modeWeighted:
			a.measureInWeightMode(s)
		case modePriority:
			a.measureInPriorityMode(s)
		default:
			a.measureInDefaultMode(s)
		}

		// Weighted children already split all free space between them.
		if a.mode != modeWeighted && !s.isInfiniteLayout {
			a.redistribute(s)
		}
	}

	a.resolveFinalSize(s)
	c.SetMeasuredSize(s.frameSize)
	s.measured = true
	return s.frameSize
}

// initAxes resolves the container's content box along both axes.
func (s *FlexPassState) initAxes() {
	content := s.ownConstraint.Deflate(s.padding)
	d := s.direction

	s.selfIdealMain, s.hasIdealMain = optionalMain(content.SelfIdealSize, d)
	s.selfIdealCross, s.hasIdealCross = optionalCross(content.SelfIdealSize, d)

	if s.hasIdealMain {
		s.mainAxisSize = clamp(s.selfIdealMain, mainSizeOf(content.MinSize, d), mainSizeOf(content.MaxSize, d))
	} else {
		s.mainAxisSize = mainSizeOf(content.MaxSize, d)
	}
	if s.hasIdealCross {
		s.crossAxisSize = clamp(s.selfIdealCross, crossSizeOf(content.MinSize, d), crossSizeOf(content.MaxSize, d))
	} else {
		s.crossAxisSize = crossSizeOf(content.MaxSize, d)
	}
	s.isInfiniteLayout = isInfinite(s.mainAxisSize)
	s.selfAdaptive = !s.hasIdealMain

	s.spacing = 0
	if v, ok := s.spacingDecl.Resolve(s.mainAxisSize); ok {
		s.spacing = nonNegative(v)
	}

	maxSize := sizeFromAxes(s.mainAxisSize, s.crossAxisSize, d)
	s.childBase = Constraint{
		MaxSize:          maxSize,
		PercentReference: maxSize,
	}
}

// selectMode picks exactly one primary solving mode.
func (s *FlexPassState) selectMode() measureMode {
	if s.isInfiniteLayout {
		return modeDefault
	}
	if greatNotEqual(s.totalFlexWeight, 0) {
		return modeWeighted
	}
	if len(s.buckets) > 1 {
		return modePriority
	}
	return modeDefault
}

// checkBuckets reports whether the bucket work-list still has the length it
// had when an iteration started. Nothing in a pass resizes the list after
// classify, so a false result means a caller broke that contract.
func (s *FlexPassState) checkBuckets(want int, where string) bool {
	if len(s.buckets) != want {
		debug.Log("flex: bucket count changed during %s: %d -> %d", where, want, len(s.buckets))
		return false
	}
	return true
}

// measureChild runs the child's own measurement with its pass constraint.
func measureChild(rec *measureRecord) {
	if !rec.isIncluded() {
		return
	}
	rec.node.Measure(rec.constraint)
}

// spacePerWeight divides the main-axis space left after unweighted
// children, weighted margins and spacing by the total weight.
func (s *FlexPassState) spacePerWeight() float32 {
	if nearZero(s.totalFlexWeight) {
		return 0
	}
	var used float32
	n := 0
	for _, rec := range s.records {
		if !rec.isIncluded() {
			continue
		}
		n++
		if rec.weight > 0 {
			used += mainMargin(margins(rec.node.LayoutProps()), s.direction)
		} else {
			used += s.outerMain(rec)
		}
	}
	if n > 1 && !s.justify.isSpaceMode() {
		used += float32(n-1) * s.spacing
	}
	return nonNegative(s.mainAxisSize-used) / s.totalFlexWeight
}

// measureInWeightMode splits the main axis between weighted children after
// unweighted children take their natural size.
func (a *Algorithm) measureInWeightMode(s *FlexPassState) {
	buckets := len(s.buckets)

	// Stage 1: unweighted children at natural size; drop the least
	// important buckets while they alone overflow.
	for _, b := range s.buckets {
		for _, rec := range b.records {
			if rec.weight > 0 {
				continue
			}
			measureChild(rec)
			s.accumulate(rec)
		}
	}
	for greatNotEqual(s.AllocatedSize(), s.mainAxisSize) && s.activeBucketCount() > 1 {
		if !s.checkBuckets(buckets, "weight mode stage 1") {
			return
		}
		s.dropBucket(s.lowestActiveBucket())
	}

	// Stage 2: check each weighted child's share against its minimum.
	spw := s.spacePerWeight()
	for i := 0; i < len(s.buckets); {
		if !s.checkBuckets(buckets, "weight mode stage 2") {
			return
		}
		b := s.buckets[i]
		if b.removed {
			i++
			continue
		}
		overflow := false
		for _, rec := range b.records {
			if !rec.isIncluded() || rec.weight <= 0 {
				continue
			}
			if greatNotEqual(s.minMain(rec), spw*rec.weight) {
				overflow = true
				break
			}
		}
		if overflow && s.activeBucketCount() > 1 {
			s.dropBucket(s.lowestActiveBucket())
			spw = s.spacePerWeight()
			i = 0
			continue
		}
		i++
	}

	// Stage 3: measure everything still included with its final constraint.
	s.resetAllocation()
	for _, b := range s.buckets {
		if b.removed {
			continue
		}
		for _, rec := range b.records {
			if !rec.isIncluded() {
				continue
			}
			if rec.weight > 0 {
				rec.constraint.SelfIdealSize = setOptionalMain(rec.constraint.SelfIdealSize, spw*rec.weight, s.direction)
			}
			measureChild(rec)
			s.accumulate(rec)
			s.updateChildCross(rec.node)
		}
	}
}

// measureInPriorityMode measures buckets from the most important down and
// drops the first bucket that overflows along with every bucket after it.
// The most important bucket is never dropped.
func (a *Algorithm) measureInPriorityMode(s *FlexPassState) {
	buckets := len(s.buckets)
	for i, b := range s.buckets {
		if !s.checkBuckets(buckets, "priority mode") {
			return
		}
		for _, rec := range b.records {
			measureChild(rec)
			s.accumulate(rec)
		}
		if greatNotEqual(s.AllocatedSize(), s.mainAxisSize) {
			start := i
			if start == 0 {
				start = 1
			}
			for _, lower := range s.buckets[start:] {
				s.dropBucket(lower)
			}
			break
		}
	}
	for _, rec := range s.records {
		if rec.isIncluded() {
			s.updateChildCross(rec.node)
		}
	}
}

// measureInDefaultMode measures every child once. Placeholders in a
// container with a fixed main size start at zero so redistribution hands
// them the real leftover space.
func (a *Algorithm) measureInDefaultMode(s *FlexPassState) {
	d := s.direction
	mainRef := mainSizeOf(s.childBase.PercentReference, d)
	for _, rec := range s.records {
		if !rec.isIncluded() {
			continue
		}
		basis := flexBasis(rec.node.FlexItem())
		if basis.IsValid() {
			if v, ok := basis.Resolve(mainRef); ok {
				rec.constraint.SelfIdealSize = setOptionalMain(rec.constraint.SelfIdealSize, v, d)
			}
		}
		if rec.placeholder && !s.selfAdaptive {
			rec.constraint.SelfIdealSize = setOptionalMain(rec.constraint.SelfIdealSize, 0, d)
		}
		measureChild(rec)
		if rec.placeholder && greatNotEqual(mainSizeOf(rec.node.MeasuredSize(), d), 0) && !s.selfAdaptive {
			rec.keepMinSize = true
		}
		s.accumulate(rec)
		s.updateChildCross(rec.node)
	}
}

// resolveFinalSize settles the container's content size, runs the
// measurements that depend on it and computes the frame size.
func (a *Algorithm) resolveFinalSize(s *FlexPassState) {
	d := s.direction
	content := s.ownConstraint.Deflate(s.padding)
	minMain, maxMain := mainSizeOf(content.MinSize, d), mainSizeOf(content.MaxSize, d)
	minCross, maxCross := crossSizeOf(content.MinSize, d), crossSizeOf(content.MaxSize, d)

	switch {
	case s.hasIdealMain:
		// already resolved in initAxes
	case s.isInfiniteLayout:
		s.mainAxisSize = math32.Max(s.AllocatedSize(), minMain)
	default:
		s.mainAxisSize = clamp(s.AllocatedSize(), minMain, maxMain)
	}

	s.computeBaseline()
	if s.baseline.participants > 0 {
		extent := s.baseline.maxDistanceAboveBaseline + s.baseline.maxDistanceBelowBaseline
		s.childCrossMax = math32.Max(s.childCrossMax, extent)
	}
	if !s.hasIdealCross {
		s.crossAxisSize = clamp(s.childCrossMax, minCross, maxCross)
	}

	a.stretchChildren(s)
	a.measureMatchParent(s)
	a.measureOutOfLayout(s)

	frame := sizeFromAxes(s.mainAxisSize, s.crossAxisSize, d).Add(s.padding.Size())
	s.frameSize = frame.Constrain(s.ownConstraint.MinSize, s.ownConstraint.MaxSize)
}

// computeBaseline aggregates baseline extents over included children.
func (s *FlexPassState) computeBaseline() {
	s.baseline = baselineAggregate{}
	for _, rec := range s.records {
		if !rec.isIncluded() || s.effectiveAlign(rec.node.FlexItem()) != AlignBaseline {
			continue
		}
		size := rec.node.MeasuredSize()
		m := margins(rec.node.LayoutProps())
		distance, ok := rec.node.Baseline()
		if !ok {
			distance = size.Height
		}
		above := m.Top + distance
		below := size.Height + m.Vertical() - above

		agg := &s.baseline
		agg.maxBaselineDistance = math32.Max(agg.maxBaselineDistance, distance)
		agg.maxDistanceAboveBaseline = math32.Max(agg.maxDistanceAboveBaseline, above)
		agg.maxDistanceBelowBaseline = math32.Max(agg.maxDistanceBelowBaseline, below)
		agg.participants++
	}
}

// stretchChildren re-measures stretch-aligned children against the final
// cross size, keeping their main size.
func (a *Algorithm) stretchChildren(s *FlexPassState) {
	d := s.direction
	cross := s.crossAxisSize
	if s.hasIdealCross {
		cross = math32.Max(s.selfIdealCross, s.childCrossMax)
	}
	if isInfinite(cross) {
		return
	}
	for _, rec := range s.records {
		if !rec.isIncluded() || s.effectiveAlign(rec.node.FlexItem()) != AlignStretch {
			continue
		}
		props := rec.node.LayoutProps()
		if !s.declaredCrossIsAuto(props) {
			continue
		}
		target := nonNegative(cross - crossMargin(margins(props), d))
		if nearEqual(crossSizeOf(rec.node.MeasuredSize(), d), target) {
			continue
		}
		rec.constraint.SelfIdealSize = setOptionalMain(rec.constraint.SelfIdealSize, mainSizeOf(rec.node.MeasuredSize(), d), d)
		rec.constraint.SelfIdealSize = setOptionalCross(rec.constraint.SelfIdealSize, target, d)
		rec.constraint.MaxSize = sizeFromAxes(mainSizeOf(rec.constraint.MaxSize, d), math32.Max(target, crossSizeOf(rec.constraint.MaxSize, d)), d)
		rec.node.Measure(rec.constraint)
	}
}

// contentSize is the container's resolved content box.
func (s *FlexPassState) contentSize() SizeF {
	return sizeFromAxes(s.mainAxisSize, s.crossAxisSize, s.direction)
}

// measureMatchParent sizes match-parent children against the final content
// box along their match-parent axes.
func (a *Algorithm) measureMatchParent(s *FlexPassState) {
	content := s.contentSize()
	for _, child := range s.matchParent {
		if !child.IsActive() {
			continue
		}
		props := child.LayoutProps()
		c := Bounded(content)
		if props.WidthPolicy == PolicyMatchParent {
			c.SelfIdealSize = c.SelfIdealSize.SetWidth(nonNegative(content.Width - props.Margin.Horizontal()))
		}
		if props.HeightPolicy == PolicyMatchParent {
			c.SelfIdealSize = c.SelfIdealSize.SetHeight(nonNegative(content.Height - props.Margin.Vertical()))
		}
		child.Measure(c)
	}
}

// measureOutOfLayout sizes absolutely positioned children against the
// content box. The embedding framework positions them.
func (a *Algorithm) measureOutOfLayout(s *FlexPassState) {
	c := Bounded(s.contentSize())
	for _, child := range s.outOfLayout {
		if child.IsActive() {
			child.Measure(c)
		}
	}
}
