package heartbutton

import "math"

// MeasureMode says how a parent constrains one dimension.
type MeasureMode uint8

const (
	MeasureUnspecified MeasureMode = iota // no constraint
	MeasureAtMost                         // Size is an upper bound
	MeasureExactly                        // Size is mandatory
)

// MeasureSpec is one dimension's constraint.
type MeasureSpec struct {
	Mode MeasureMode
	Size int
}

// Unspecified returns a spec with no constraint.
func Unspecified() MeasureSpec { return MeasureSpec{Mode: MeasureUnspecified} }

// AtMost returns a spec bounded by size.
func AtMost(size int) MeasureSpec { return MeasureSpec{Mode: MeasureAtMost, Size: size} }

// Exactly returns a spec that forces size.
func Exactly(size int) MeasureSpec { return MeasureSpec{Mode: MeasureExactly, Size: size} }

// PreferredSize is the edge length the button asks for: the logical box
// scaled by density.
func (b *Button) PreferredSize() int {
	return int(math.Round(LogicalSize * b.cfg.Density))
}

// Measure resolves the button size under the given constraints. Exact sizes
// are honored even when not square; the artwork then scales non-uniformly.
func (b *Button) Measure(width, height MeasureSpec) (int, int) {
	def := b.PreferredSize()
	return resolveSize(def, width), resolveSize(def, height)
}

// resolveSize applies one spec to the preferred size. Negative constraints
// resolve to zero.
func resolveSize(def int, spec MeasureSpec) int {
	switch spec.Mode {
	case MeasureExactly:
		return max(spec.Size, 0)
	case MeasureAtMost:
		return max(min(def, spec.Size), 0)
	default:
		return def
	}
}
