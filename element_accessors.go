package flex

// Name returns the element's name, used in dumps and lookups.
func (e *Element) Name() string {
	return e.name
}

// SetName updates the element's name.
func (e *Element) SetName(name string) {
	e.name = name
}

// Props returns a copy of the element's layout properties.
func (e *Element) Props() LayoutProps {
	return e.props
}

// SetProps replaces the layout properties and marks the element dirty.
func (e *Element) SetProps(props LayoutProps) {
	e.props = props
	e.MarkDirty()
}

// Item returns a copy of the element's flex item declaration.
func (e *Element) Item() FlexItem {
	return e.item
}

// SetItem replaces the flex item declaration and marks the element dirty.
func (e *Element) SetItem(item FlexItem) {
	e.item = item
	e.MarkDirty()
}

// Style returns the container style applied to this element's children.
func (e *Element) Style() ContainerStyle {
	return e.style
}

// SetStyle updates the container style and marks the element dirty.
func (e *Element) SetStyle(style ContainerStyle) {
	e.style = style
	e.MarkDirty()
}

// Kind returns the element's host variant.
func (e *Element) Kind() HostKind {
	return e.host
}

// SetIntrinsicSize updates the natural content size of a leaf.
func (e *Element) SetIntrinsicSize(s Size) {
	e.intrinsic = s
	e.MarkDirty()
}

// MeasureCount returns how many times the element actually ran a measure,
// not counting cache hits.
func (e *Element) MeasureCount() int {
	return e.measures
}

// Mode returns the measure mode chosen by the element's last pass:
// "default", "weighted" or "priority". Leaves return "".
func (e *Element) Mode() string {
	if !e.IsContainer() || e.algo.Pass() == nil {
		return ""
	}
	return e.algo.Mode()
}

// Phase returns where the element's last placement stopped.
func (e *Element) Phase() string {
	return e.algo.Phase()
}
