package layout

import (
	"github.com/chewxy/math32"

	"github.com/grindlemire/go-flex/internal/debug"
)

// redistribute hands the free main-axis space to children with flex-grow,
// or takes the overflow from children with flex-shrink. A child whose share
// would cross its minimum (or maximum) is frozen there and the pass starts
// over; a child shrunk to nothing is eliminated.
func (a *Algorithm) redistribute(s *FlexPassState) {
	if s.allocatedCount == 0 {
		return
	}
	grow := !lessNotEqual(s.mainAxisSize-s.AllocatedSize(), 0) || len(s.buckets) > 1

	limit := 2*len(s.records) + 1
	for iter := 0; ; iter++ {
		if iter > limit {
			debug.Log("flex: redistribution did not settle after %d rounds", limit)
			break
		}
		remaining := s.mainAxisSize - s.AllocatedSize()
		if grow && !greatNotEqual(remaining, 0) {
			break
		}
		if !grow && !lessNotEqual(remaining, 0) {
			break
		}

		participants := s.participants(grow)
		if len(participants) == 0 {
			break
		}
		s.propose(participants, remaining, grow)
		if s.resolveViolation(participants, grow) {
			continue
		}
		s.commitProposals(participants)
		break
	}
	s.remeasureChanged()
}

// participants returns the counted, unfrozen records that take part in the
// current grow or shrink round.
func (s *FlexPassState) participants(grow bool) []*measureRecord {
	var out []*measureRecord
	for _, rec := range s.records {
		if !rec.counted || rec.frozen || !rec.isIncluded() {
			continue
		}
		if grow && rec.grow > 0 {
			out = append(out, rec)
		}
		if !grow && rec.shrink > 0 && greatNotEqual(rec.mainSize, 0) {
			out = append(out, rec)
		}
	}
	return out
}

// propose sets each participant's target main size. The last participant
// takes whatever rounding left over so the shares sum to remaining exactly.
func (s *FlexPassState) propose(participants []*measureRecord, remaining float32, grow bool) {
	last := participants[len(participants)-1]
	marker := s.weights.lastShrink
	if grow {
		marker = s.weights.lastGrow
	}
	for _, rec := range participants {
		if rec == marker {
			last = rec
			break
		}
	}

	total := s.weights.totalShrink
	if grow {
		total = s.weights.totalGrow
	}
	if !greatNotEqual(total, 0) {
		for _, rec := range participants {
			rec.proposed = rec.mainSize
		}
		return
	}

	var given float32
	for _, rec := range participants {
		if rec == last {
			continue
		}
		var delta float32
		if grow {
			delta = remaining * rec.grow / total
		} else {
			delta = remaining * rec.shrink * rec.mainSize / total
		}
		rec.proposed = rec.mainSize + delta
		given += delta
	}
	last.proposed = last.mainSize + (remaining - given)
}

// resolveViolation fixes the first proposal that breaks a child's bounds
// and reports whether it changed anything.
func (s *FlexPassState) resolveViolation(participants []*measureRecord, grow bool) bool {
	for _, rec := range participants {
		lo := s.minMain(rec)
		if !grow && !greatNotEqual(rec.proposed, 0) {
			if rec.placeholder && (rec.keepMinSize || greatNotEqual(lo, 0)) {
				s.freeze(rec, lo)
				return true
			}
			s.deactivate(rec)
			return true
		}
		if lessNotEqual(rec.proposed, lo) {
			s.freeze(rec, lo)
			return true
		}
		if hi := s.maxMain(rec); greatNotEqual(rec.proposed, hi) {
			s.freeze(rec, hi)
			return true
		}
	}
	return false
}

// freeze pins rec at size and takes it out of further redistribution.
func (s *FlexPassState) freeze(rec *measureRecord, size float32) {
	s.dropFlexContribution(rec)
	rec.frozen = true
	rec.keepMinSize = true
	s.allocatedChildren += size - rec.mainSize
	if !nearEqual(size, rec.mainSize) {
		rec.needSecondMeasure = true
	}
	rec.mainSize = size
	rec.proposed = size
}

// commitProposals moves the allocation to the proposed sizes.
func (s *FlexPassState) commitProposals(participants []*measureRecord) {
	for _, rec := range participants {
		if nearEqual(rec.proposed, rec.mainSize) {
			continue
		}
		s.allocatedChildren += rec.proposed - rec.mainSize
		rec.mainSize = rec.proposed
		rec.needSecondMeasure = true
	}
}

// remeasureChanged measures every child whose main size moved with that
// size pinned. Cross sizes only grow the running maximum.
func (s *FlexPassState) remeasureChanged() {
	for _, rec := range s.records {
		if !rec.needSecondMeasure || !rec.isIncluded() {
			continue
		}
		rec.needSecondMeasure = false
		rec.constraint.SelfIdealSize = setOptionalMain(rec.constraint.SelfIdealSize, rec.mainSize, s.direction)
		rec.node.Measure(rec.constraint)
		s.updateChildCross(rec.node)
	}
}

// maxMain resolves a child's declared maximum along the main axis.
func (s *FlexPassState) maxMain(rec *measureRecord) float32 {
	props := rec.node.LayoutProps()
	if props == nil {
		return math32.Inf(1)
	}
	ref := mainSizeOf(s.childBase.PercentReference, s.direction)
	if isHorizontal(s.direction) {
		return props.MaxWidth.ResolveOr(ref, math32.Inf(1))
	}
	return props.MaxHeight.ResolveOr(ref, math32.Inf(1))
}
