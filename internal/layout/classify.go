package layout

import (
	"cmp"
	"slices"
)

// classify walks the children once and sorts them into the out-of-layout
// set, the match-parent set and the priority buckets. Collapsed children
// keep their bucket slot but count toward nothing.
func (s *FlexPassState) classify(children []Layoutable) {
	byPriority := make(map[int]*priorityBucket)

	for _, child := range children {
		props := child.LayoutProps()

		if isOutOfLayout(props) {
			child.SetActive(visibility(props) != Collapsed)
			s.outOfLayout = append(s.outOfLayout, child)
			s.slots = append(s.slots, childSlot{kind: slotOutOfLayout, node: child})
			continue
		}
		if isMatchParent(props) {
			child.SetActive(visibility(props) != Collapsed)
			s.matchParent = append(s.matchParent, child)
			s.slots = append(s.slots, childSlot{kind: slotMatchParent, node: child})
			continue
		}

		item := child.FlexItem()
		rec := &measureRecord{
			node:        child,
			constraint:  s.childBase,
			weight:      layoutWeight(props),
			grow:        flexGrow(item),
			shrink:      flexShrink(item, s.defaultShrink),
			placeholder: child.IsPlaceholder(),
			collapsed:   visibility(props) == Collapsed,
		}

		priority := displayPriority(item)
		bucket, ok := byPriority[priority]
		if !ok {
			bucket = &priorityBucket{priority: priority}
			byPriority[priority] = bucket
			s.buckets = append(s.buckets, bucket)
		}
		bucket.records = append(bucket.records, rec)
		s.records = append(s.records, rec)
		s.slots = append(s.slots, childSlot{kind: slotFlow, node: child, rec: rec})

		if rec.collapsed {
			child.SetActive(false)
			continue
		}
		child.SetActive(true)

		bucket.weight += rec.weight
		s.totalFlexWeight += rec.weight
		s.maxDisplayPriority = max(s.maxDisplayPriority, priority)
		s.validSizeCount++
	}

	slices.SortStableFunc(s.buckets, func(a, b *priorityBucket) int {
		return cmp.Compare(a.priority, b.priority)
	})
}
