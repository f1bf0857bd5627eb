package layout

import "github.com/chewxy/math32"

// placementPhase tracks the placement state machine. Phases only move
// forward within a pass; a new Measure resets to phaseIdle.
type placementPhase uint8

const (
	phaseIdle placementPhase = iota
	phaseSpacingComputed
	phaseChildrenPositioned
	phaseDone
)

func (p placementPhase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseSpacingComputed:
		return "spacing-computed"
	case phaseChildrenPositioned:
		return "children-positioned"
	case phaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// slotKind says which classifier set a child landed in.
type slotKind uint8

const (
	slotFlow        slotKind = iota // In a priority bucket
	slotOutOfLayout                 // Absolutely positioned
	slotMatchParent                 // Sized against the final container size
)

// childSlot keeps document order across the classifier's sets.
type childSlot struct {
	kind slotKind
	node Layoutable
	rec  *measureRecord // nil unless kind == slotFlow
}

// measureRecord is the per-pass state of one in-flow child.
type measureRecord struct {
	node       Layoutable
	constraint Constraint

	weight float32 // layout weight
	grow   float32
	shrink float32

	placeholder bool
	collapsed   bool // Visibility == Collapsed
	inactive    bool // dropped with its bucket or eliminated by shrinking
	counted     bool // contributes to allocation and flex totals

	// mainSize is the main-axis frame size the allocation currently holds.
	mainSize float32
	// proposed is the redistribution target for mainSize.
	proposed float32

	needSecondMeasure bool
	keepMinSize       bool
	frozen            bool // pinned at its minimum, out of redistribution
}

func (r *measureRecord) isIncluded() bool {
	return !r.collapsed && !r.inactive
}

// priorityBucket groups children that share a display priority. Buckets are
// never removed from the work-list; dropping sets the removed tombstone.
type priorityBucket struct {
	priority int
	records  []*measureRecord
	weight   float32
	removed  bool
}

// flexWeightTotals are running sums over counted children.
type flexWeightTotals struct {
	totalGrow   float32
	totalShrink float32 // Σ shrink × (outer main − main margin)
	lastGrow    *measureRecord
	lastShrink  *measureRecord
}

// baselineAggregate collects the extents of baseline-aligned children.
// Distances are measured from the top of each child's margin box.
type baselineAggregate struct {
	maxBaselineDistance      float32
	maxDistanceAboveBaseline float32
	maxDistanceBelowBaseline float32
	participants             int
}

// FlexPassState is everything one Measure+Layout pass of a container knows.
// It is built fresh at the top of Measure and handed through classification,
// measurement, redistribution and placement.
type FlexPassState struct {
	host          HostKind
	direction     Direction
	justify       Justify
	alignItems    Align
	textDirection TextDirection
	spacingDecl   Dimension
	spacing       float32
	safeArea      Edges
	ignoreSafe    SafeAreaEdges
	defaultShrink float32

	padding        Edges
	ownConstraint  Constraint
	childBase      Constraint
	selfIdealMain  float32
	hasIdealMain   bool
	selfIdealCross float32
	hasIdealCross  bool

	mainAxisSize     float32
	crossAxisSize    float32
	childCrossMax    float32
	isInfiniteLayout bool
	selfAdaptive     bool

	totalFlexWeight    float32
	maxDisplayPriority int
	validSizeCount     int

	// allocation: Σ counted outer main sizes, and how many are counted
	allocatedChildren float32
	allocatedCount    int

	slots       []childSlot
	records     []*measureRecord // in-flow children in document order
	outOfLayout []Layoutable
	matchParent []Layoutable
	buckets     []*priorityBucket // most important first
	weights     flexWeightTotals
	baseline    baselineAggregate

	frameSize    SizeF
	measured     bool
	phase        placementPhase
	frontSpace   float32
	betweenSpace float32
}

// newPassState snapshots the host's declared properties.
func newPassState(host FlexHost) *FlexPassState {
	style := host.ContainerStyle()
	s := &FlexPassState{
		host:          host.Kind(),
		direction:     style.Direction,
		justify:       style.Justify,
		alignItems:    style.AlignItems,
		textDirection: resolveTextDirection(style.TextDirection),
		spacingDecl:   style.Spacing,
		safeArea:      style.SafeArea,
		ignoreSafe:    style.IgnoreSafeArea,
		defaultShrink: 1,
	}
	if s.alignItems == AlignAuto {
		s.alignItems = AlignStart
	}
	host.ApplyPatternOperation(s)
	return s
}

// AllocatedSize is the main-axis space claimed by counted children,
// including declared spacing outside the space-* justify modes.
func (s *FlexPassState) AllocatedSize() float32 {
	total := s.allocatedChildren
	if s.allocatedCount > 1 && !s.justify.isSpaceMode() {
		total += float32(s.allocatedCount-1) * s.spacing
	}
	return total
}

// MainAxisSize is the container's content size along the main axis.
func (s *FlexPassState) MainAxisSize() float32 { return s.mainAxisSize }

// CrossAxisSize is the container's content size along the cross axis.
func (s *FlexPassState) CrossAxisSize() float32 { return s.crossAxisSize }

// ValidCount is the number of children that take part in spacing.
func (s *FlexPassState) ValidCount() int { return s.validSizeCount }

// TotalFlexWeight is the layout weight of children still included.
func (s *FlexPassState) TotalFlexWeight() float32 { return s.totalFlexWeight }

// MaxDisplayPriority is the largest display priority seen by the classifier.
func (s *FlexPassState) MaxDisplayPriority() int { return s.maxDisplayPriority }

// BucketCount returns the number of priority buckets, including dropped ones.
func (s *FlexPassState) BucketCount() int { return len(s.buckets) }

// DefaultShrink is the flex-shrink used for children that declare none.
func (s *FlexPassState) DefaultShrink() float32 { return s.defaultShrink }

// SetDefaultShrink lets a host change the flex-shrink default.
func (s *FlexPassState) SetDefaultShrink(v float32) { s.defaultShrink = nonNegative(v) }

// Host returns the variant of the host that built this state.
func (s *FlexPassState) Host() HostKind { return s.host }

// activeBucketCount returns the number of buckets not dropped.
func (s *FlexPassState) activeBucketCount() int {
	n := 0
	for _, b := range s.buckets {
		if !b.removed {
			n++
		}
	}
	return n
}

// lowestActiveBucket returns the least important bucket not yet dropped.
func (s *FlexPassState) lowestActiveBucket() *priorityBucket {
	for i := len(s.buckets) - 1; i >= 0; i-- {
		if !s.buckets[i].removed {
			return s.buckets[i]
		}
	}
	return nil
}

// dropBucket takes every child of b out of display.
func (s *FlexPassState) dropBucket(b *priorityBucket) {
	if b.removed {
		return
	}
	b.removed = true
	s.totalFlexWeight = nonNegative(s.totalFlexWeight - b.weight)
	for _, rec := range b.records {
		s.deactivate(rec)
	}
}

// deactivate collapses rec to zero size and removes it from every total.
func (s *FlexPassState) deactivate(rec *measureRecord) {
	if rec.collapsed || rec.inactive {
		return
	}
	s.release(rec)
	rec.inactive = true
	rec.node.SetActive(false)
	s.validSizeCount--
}

// outerMain returns a child's main size plus its main-axis margin.
func (s *FlexPassState) outerMain(rec *measureRecord) float32 {
	return rec.mainSize + mainMargin(margins(rec.node.LayoutProps()), s.direction)
}

// accumulate adds rec's measured size to the allocation and flex totals.
func (s *FlexPassState) accumulate(rec *measureRecord) {
	if rec.counted || !rec.isIncluded() {
		return
	}
	size := rec.node.MeasuredSize()
	rec.mainSize = mainSizeOf(size, s.direction)
	rec.proposed = rec.mainSize
	rec.counted = true

	s.allocatedChildren += s.outerMain(rec)
	s.allocatedCount++

	if rec.grow > 0 {
		s.weights.totalGrow += rec.grow
		s.weights.lastGrow = rec
	}
	if rec.shrink > 0 {
		s.weights.totalShrink += rec.shrink * rec.mainSize
		s.weights.lastShrink = rec
	}
}

// release is the inverse of accumulate.
func (s *FlexPassState) release(rec *measureRecord) {
	if !rec.counted {
		return
	}
	rec.counted = false
	s.allocatedChildren -= s.outerMain(rec)
	s.allocatedCount--
	s.dropFlexContribution(rec)
}

// dropFlexContribution subtracts rec's grow and shrink weight.
func (s *FlexPassState) dropFlexContribution(rec *measureRecord) {
	if rec.grow > 0 && !rec.frozen {
		s.weights.totalGrow = nonNegative(s.weights.totalGrow - rec.grow)
	}
	if rec.shrink > 0 && !rec.frozen {
		s.weights.totalShrink = nonNegative(s.weights.totalShrink - rec.shrink*rec.mainSize)
	}
	if s.weights.lastGrow == rec || s.weights.lastShrink == rec {
		s.refreshLast(rec)
	}
}

// refreshLast moves the last-grow/last-shrink markers off gone.
func (s *FlexPassState) refreshLast(gone *measureRecord) {
	if s.weights.lastGrow == gone {
		s.weights.lastGrow = nil
	}
	if s.weights.lastShrink == gone {
		s.weights.lastShrink = nil
	}
	for i := len(s.records) - 1; i >= 0; i-- {
		rec := s.records[i]
		if rec == gone || !rec.counted || rec.frozen {
			continue
		}
		if s.weights.lastGrow == nil && rec.grow > 0 && gone.grow > 0 {
			s.weights.lastGrow = rec
		}
		if s.weights.lastShrink == nil && rec.shrink > 0 && gone.shrink > 0 {
			s.weights.lastShrink = rec
		}
	}
}

// resetAllocation clears the allocation so a final pass can re-accumulate.
func (s *FlexPassState) resetAllocation() {
	s.allocatedChildren = 0
	s.allocatedCount = 0
	s.weights = flexWeightTotals{}
	for _, rec := range s.records {
		rec.counted = false
	}
}

// minMain resolves a child's declared minimum along the main axis.
func (s *FlexPassState) minMain(rec *measureRecord) float32 {
	props := rec.node.LayoutProps()
	if props == nil {
		return 0
	}
	ref := mainSizeOf(s.childBase.PercentReference, s.direction)
	if isHorizontal(s.direction) {
		return nonNegative(props.MinWidth.ResolveOr(ref, 0))
	}
	return nonNegative(props.MinHeight.ResolveOr(ref, 0))
}

// declaredCrossIsAuto reports whether the child leaves its cross size open.
func (s *FlexPassState) declaredCrossIsAuto(props *LayoutProps) bool {
	if props == nil {
		return true
	}
	if isHorizontal(s.direction) {
		return props.Height.IsAuto() && props.HeightPolicy == PolicyNone
	}
	return props.Width.IsAuto() && props.WidthPolicy == PolicyNone
}

// effectiveAlign resolves align-self against the container, falling back to
// start where an alignment cannot apply.
func (s *FlexPassState) effectiveAlign(item *FlexItem) Align {
	align := alignSelf(item, s.alignItems)
	if align == AlignAuto {
		align = AlignStart
	}
	if align == AlignBaseline && !isHorizontal(s.direction) {
		align = AlignStart
	}
	return align
}

// updateChildCross grows the running cross-axis maximum with rec's frame.
func (s *FlexPassState) updateChildCross(node Layoutable) {
	outer := crossSizeOf(node.MeasuredSize(), s.direction) + crossMargin(margins(node.LayoutProps()), s.direction)
	s.childCrossMax = math32.Max(s.childCrossMax, outer)
}
