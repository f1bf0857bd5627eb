package fixture

import (
	"errors"
	"fmt"

	flex "github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/internal/debug"
)

// Build turns the document's root node into an element tree. Every problem
// found is reported, joined into one error.
func Build(doc *Document) (*flex.Element, error) {
	if _, _, err := doc.viewport(); err != nil {
		return nil, err
	}
	b := &builder{}
	root := b.node(&doc.Root, "root")
	if err := errors.Join(b.errs...); err != nil {
		return nil, err
	}
	debug.Log("fixture: built %q with %d elements", doc.Name, b.count)
	return root, nil
}

// Validate builds the tree without laying it out and checks that every
// expectation is a rect.
func Validate(doc *Document) error {
	_, err := Build(doc)
	if err != nil {
		return err
	}
	for name, v := range doc.Expect {
		if _, err := rect(v); err != nil {
			return fmt.Errorf("expect %s: %w", name, err)
		}
	}
	return nil
}

func (d *Document) viewport() (float32, float32, error) {
	w, err := number(d.Viewport.Width)
	if err != nil {
		return 0, 0, fmt.Errorf("viewport width: %w", err)
	}
	h, err := number(d.Viewport.Height)
	if err != nil {
		return 0, 0, fmt.Errorf("viewport height: %w", err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%vx%v: %w", w, h, ErrBadViewport)
	}
	return w, h, nil
}

type builder struct {
	errs  []error
	count int
}

func (b *builder) fail(path, field string, err error) {
	b.errs = append(b.errs, fmt.Errorf("%s.%s: %w", path, field, err))
}

func (b *builder) node(n *Node, path string) *flex.Element {
	b.count++
	name := n.Name
	if name == "" {
		name = path
	}

	var e *flex.Element
	switch n.Kind {
	case "", "leaf":
		e = flex.New()
	case "flex":
		e = flex.NewFlex()
	case "row":
		e = flex.NewRow()
	case "column":
		e = flex.NewColumn()
	case "spacer":
		e = flex.NewSpacer()
		if len(n.Children) > 0 {
			b.fail(path, "children", ErrSpacerChildren)
		}
	default:
		b.fail(path, "kind", fmt.Errorf("%q: %w", n.Kind, ErrUnknownKind))
		e = flex.New()
	}
	e.SetName(name)

	e.SetStyle(b.style(n, path, e.Style()))
	e.SetProps(b.props(n, path, e.Props()))
	e.SetItem(b.item(n, path, e.Item()))
	b.content(n, path, e)

	for i := range n.Children {
		e.AddChild(b.node(&n.Children[i], fmt.Sprintf("%s.children[%d]", path, i)))
	}
	return e
}

func (b *builder) style(n *Node, path string, style flex.ContainerStyle) flex.ContainerStyle {
	if n.Direction != "" {
		if v, err := lookup(directions, n.Direction, ErrUnknownDirection); err != nil {
			b.fail(path, "direction", err)
		} else {
			style.Direction = v
		}
	}
	if n.Justify != "" {
		if v, err := lookup(justifies, n.Justify, ErrUnknownJustify); err != nil {
			b.fail(path, "justify", err)
		} else {
			style.Justify = v
		}
	}
	if n.Align != "" {
		if v, err := lookup(aligns, n.Align, ErrUnknownAlign); err != nil {
			b.fail(path, "align", err)
		} else {
			style.AlignItems = v
		}
	}
	if n.TextDirection != "" {
		if v, err := lookup(textDirections, n.TextDirection, ErrUnknownText); err != nil {
			b.fail(path, "text_direction", err)
		} else {
			style.TextDirection = v
		}
	}
	if n.Spacing != nil {
		if v, err := length(n.Spacing); err != nil {
			b.fail(path, "spacing", err)
		} else {
			style.Spacing = v
		}
	}
	if n.SafeArea != nil {
		if v, err := edges(n.SafeArea); err != nil {
			b.fail(path, "safe_area", err)
		} else {
			style.SafeArea = v
		}
	}
	if v, err := edgeSet(n.ChildrenIgnoreSafeArea); err != nil {
		b.fail(path, "children_ignore_safe_area", err)
	} else {
		style.IgnoreSafeArea = v
	}
	return style
}

func (b *builder) props(n *Node, path string, props flex.LayoutProps) flex.LayoutProps {
	lengths := []struct {
		field string
		value any
		dst   *flex.Dimension
	}{
		{"width", n.Width, &props.Width},
		{"height", n.Height, &props.Height},
		{"min_width", n.MinWidth, &props.MinWidth},
		{"min_height", n.MinHeight, &props.MinHeight},
		{"max_width", n.MaxWidth, &props.MaxWidth},
		{"max_height", n.MaxHeight, &props.MaxHeight},
	}
	for _, l := range lengths {
		if l.value == nil {
			continue
		}
		v, err := length(l.value)
		if err != nil {
			b.fail(path, l.field, err)
			continue
		}
		*l.dst = v
	}

	switch n.MatchParent {
	case "":
	case "width":
		props.WidthPolicy = flex.PolicyMatchParent
	case "height":
		props.HeightPolicy = flex.PolicyMatchParent
	case "both":
		props.WidthPolicy = flex.PolicyMatchParent
		props.HeightPolicy = flex.PolicyMatchParent
	default:
		b.fail(path, "match_parent", fmt.Errorf("%q: %w", n.MatchParent, ErrUnknownAxis))
	}

	if n.Padding != nil {
		if v, err := edges(n.Padding); err != nil {
			b.fail(path, "padding", err)
		} else {
			props.Padding = v
		}
	}
	if n.Margin != nil {
		if v, err := edges(n.Margin); err != nil {
			b.fail(path, "margin", err)
		} else {
			props.Margin = v
		}
	}
	if n.Weight != nil {
		if v, err := number(n.Weight); err != nil {
			b.fail(path, "weight", err)
		} else {
			props.LayoutWeight = v
		}
	}
	if n.Visibility != "" {
		if v, err := lookup(visibilities, n.Visibility, ErrUnknownVisibility); err != nil {
			b.fail(path, "visibility", err)
		} else {
			props.Visibility = v
		}
	}
	if v, err := edgeSet(n.IgnoreSafeArea); err != nil {
		b.fail(path, "ignore_safe_area", err)
	} else {
		props.IgnoreSafeArea = v
	}
	props.PositionAbsolute = n.Absolute
	return props
}

func (b *builder) item(n *Node, path string, item flex.FlexItem) flex.FlexItem {
	if n.Grow != nil {
		if v, err := number(n.Grow); err != nil {
			b.fail(path, "grow", err)
		} else {
			item.Grow = v
		}
	}
	if n.Shrink != nil {
		if v, err := number(n.Shrink); err != nil {
			b.fail(path, "shrink", err)
		} else {
			item.Shrink = flex.Float(v)
		}
	}
	if n.Basis != nil {
		if v, err := length(n.Basis); err != nil {
			b.fail(path, "basis", err)
		} else {
			item.Basis = v
		}
	}
	if n.AlignSelf != "" {
		if v, err := lookup(aligns, n.AlignSelf, ErrUnknownAlign); err != nil {
			b.fail(path, "align_self", err)
		} else {
			item.AlignSelf = v
		}
	}
	if n.Priority != 0 {
		item.DisplayPriority = n.Priority
	}
	return item
}

func (b *builder) content(n *Node, path string, e *flex.Element) {
	if n.Intrinsic != nil {
		w, h, err := pair(n.Intrinsic)
		if err != nil {
			b.fail(path, "intrinsic", err)
		} else {
			e.SetIntrinsicSize(flex.Size{Width: w, Height: h})
		}
	}
	if n.Baseline != nil {
		v, err := number(n.Baseline)
		if err != nil {
			b.fail(path, "baseline", err)
		} else {
			e.Update(flex.WithBaseline(v))
		}
	}
}
