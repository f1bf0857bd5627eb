// Package layout implements a single-pass flex layout engine.
//
// A container hands the engine its children as [Layoutable] values. The
// engine classifies them, measures them in one of three modes (weighted,
// priority-drop or default), redistributes leftover or overflowing main-axis
// space by grow and shrink factors, resolves the container's own size, and
// finally positions every child along the main and cross axes.
//
// Types are re-exported through the root flex package for public consumption.
//
// The entry points are [Algorithm.Measure] and [Algorithm.Layout]. Each
// container owns one [Algorithm]; the state of a pass lives in a
// [FlexPassState] created fresh at the top of every Measure.
package layout
