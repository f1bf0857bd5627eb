package flex

// --- Element's own API ---

// AddChild appends children to this Element and marks it dirty.
// A child already attached elsewhere is moved.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		if child.parent != nil {
			child.parent.RemoveChild(child)
		}
		child.parent = e
		e.children = append(e.children, child)
	}
	e.MarkDirty()
}

// RemoveChild removes a child from this Element, keeping the order of the
// remaining children. Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			e.MarkDirty()
			return true
		}
	}
	return false
}

// RemoveAllChildren removes all children from this Element.
// Automatically marks dirty.
func (e *Element) RemoveAllChildren() {
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
	e.MarkDirty()
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Walk calls fn for this element and every descendant in document order,
// with the depth below this element. Returning false skips the subtree.
func (e *Element) Walk(fn func(elem *Element, depth int) bool) {
	e.walk(fn, 0)
}

func (e *Element) walk(fn func(*Element, int) bool, depth int) {
	if !fn(e, depth) {
		return
	}
	for _, child := range e.children {
		child.walk(fn, depth+1)
	}
}

// Find returns the first element in the subtree with the given name.
func (e *Element) Find(name string) *Element {
	var found *Element
	e.Walk(func(elem *Element, _ int) bool {
		if found != nil {
			return false
		}
		if elem.name == name {
			found = elem
			return false
		}
		return true
	})
	return found
}
