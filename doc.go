// Package flex provides a flex-box layout engine for trees of boxes.
//
// Users import this single package for the public API: element
// construction, layout types and the Calculate entry point. Elements are
// built with functional options:
//
//	root := flex.NewRow(flex.WithJustify(flex.JustifySpaceBetween))
//	root.AddChild(
//		flex.New(flex.WithSize(100, 40)),
//		flex.NewSpacer(),
//		flex.New(flex.WithSize(100, 40), flex.WithDisplayPriority(2)),
//	)
//	flex.Calculate(root, 500, 40)
//
// After Calculate every element reports its frame relative to its parent
// through Frame, and relative to the root through AbsoluteFrame.
package flex
