package layout

import "github.com/chewxy/math32"

// Constraint is what a parent hands a child to measure against.
type Constraint struct {
	MinSize SizeF
	MaxSize SizeF

	// PercentReference is the size percentages resolve against.
	PercentReference SizeF

	// SelfIdealSize, when set on an axis, is the size the parent wants the
	// child to take on that axis. It still yields to MinSize/MaxSize.
	SelfIdealSize OptionalSize
}

// Unbounded returns a constraint with no upper limit on either axis.
func Unbounded() Constraint {
	inf := math32.Inf(1)
	return Constraint{
		MaxSize:          SizeF{Width: inf, Height: inf},
		PercentReference: SizeF{Width: inf, Height: inf},
	}
}

// Bounded returns a constraint with max and percent reference set to size.
func Bounded(size SizeF) Constraint {
	return Constraint{MaxSize: size, PercentReference: size}
}

// Exact returns a constraint that pins both axes to size.
func Exact(size SizeF) Constraint {
	c := Bounded(size)
	c.SelfIdealSize = OptionalSize{}.SetWidth(size.Width).SetHeight(size.Height)
	return c
}

// Deflate shrinks the constraint by the given edges, as when moving from a
// node's frame to its content box.
func (c Constraint) Deflate(e Edges) Constraint {
	h, v := e.Horizontal(), e.Vertical()
	c.MinSize.Width = nonNegative(c.MinSize.Width - h)
	c.MinSize.Height = nonNegative(c.MinSize.Height - v)
	c.MaxSize.Width = nonNegative(c.MaxSize.Width - h)
	c.MaxSize.Height = nonNegative(c.MaxSize.Height - v)
	if c.SelfIdealSize.HasWidth {
		c.SelfIdealSize.Width = nonNegative(c.SelfIdealSize.Width - h)
	}
	if c.SelfIdealSize.HasHeight {
		c.SelfIdealSize.Height = nonNegative(c.SelfIdealSize.Height - v)
	}
	return c
}

// Apply resolves a node's declared properties against the constraint and
// returns the tightened constraint the node actually lays out under:
// declared min/max narrow the range and a declared Width/Height becomes the
// self ideal size unless the parent already pinned that axis.
func (c Constraint) Apply(props *LayoutProps) Constraint {
	if props == nil {
		return c
	}
	ref := c.PercentReference
	if v, ok := props.MinWidth.Resolve(ref.Width); ok {
		c.MinSize.Width = math32.Max(c.MinSize.Width, v)
	}
	if v, ok := props.MinHeight.Resolve(ref.Height); ok {
		c.MinSize.Height = math32.Max(c.MinSize.Height, v)
	}
	if v, ok := props.MaxWidth.Resolve(ref.Width); ok {
		c.MaxSize.Width = math32.Max(math32.Min(c.MaxSize.Width, v), c.MinSize.Width)
	}
	if v, ok := props.MaxHeight.Resolve(ref.Height); ok {
		c.MaxSize.Height = math32.Max(math32.Min(c.MaxSize.Height, v), c.MinSize.Height)
	}
	if !c.SelfIdealSize.HasWidth {
		if v, ok := props.Width.Resolve(ref.Width); ok {
			c.SelfIdealSize = c.SelfIdealSize.SetWidth(v)
		}
	}
	if !c.SelfIdealSize.HasHeight {
		if v, ok := props.Height.Resolve(ref.Height); ok {
			c.SelfIdealSize = c.SelfIdealSize.SetHeight(v)
		}
	}
	return c
}

// Resolve picks the final size for a node whose content wants natural:
// self ideal axes override natural, then everything is clamped to range.
func (c Constraint) Resolve(natural SizeF) SizeF {
	if c.SelfIdealSize.HasWidth {
		natural.Width = c.SelfIdealSize.Width
	}
	if c.SelfIdealSize.HasHeight {
		natural.Height = c.SelfIdealSize.Height
	}
	return natural.Constrain(c.MinSize, c.MaxSize)
}
