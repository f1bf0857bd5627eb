package layout

// Unit specifies how a Dimension is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitPx                  // Absolute length
	UnitPercent             // Percentage of the percent reference
)

// Dimension represents a length that can be absolute, percentage, or auto.
type Dimension struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Dimension that should be computed from content/flex.
func Auto() Dimension {
	return Dimension{Unit: UnitAuto}
}

// Px returns a Dimension representing an absolute length.
func Px(v float32) Dimension {
	return Dimension{Amount: v, Unit: UnitPx}
}

// Percent returns a Dimension representing a percentage of the reference.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Dimension {
	return Dimension{Amount: p, Unit: UnitPercent}
}

// Resolve computes the length against reference.
// The second result is false for UnitAuto, and for percentages of an
// unbounded reference.
func (d Dimension) Resolve(reference float32) (float32, bool) {
	switch d.Unit {
	case UnitPx:
		return d.Amount, true
	case UnitPercent:
		if isInfinite(reference) {
			return 0, false
		}
		return reference * d.Amount / 100.0, true
	default:
		return 0, false
	}
}

// ResolveOr is Resolve with a fallback for unresolvable values.
func (d Dimension) ResolveOr(reference, fallback float32) float32 {
	if v, ok := d.Resolve(reference); ok {
		return v
	}
	return fallback
}

// IsAuto returns true if this value should be computed from content/flex.
func (d Dimension) IsAuto() bool {
	return d.Unit == UnitAuto
}

// IsValid reports whether the dimension carries a usable length.
// Auto and negative lengths are not valid.
func (d Dimension) IsValid() bool {
	return d.Unit != UnitAuto && d.Amount >= 0
}
