package placement

import (
	"math"

	"github.com/philipparndt/gostack/pkg/geometry"
)

// DefaultGridSize is the snapping granularity used for dragging and nudging.
const DefaultGridSize = 10.0

// Grid snaps horizontal positions to multiples of Size.
type Grid struct {
	Size float64
}

// NewGrid returns a grid with the given spacing, falling back to DefaultGridSize
// for values that are not positive and finite.
func NewGrid(size float64) Grid {
	if !(size > 0) || math.IsInf(size, 1) {
		size = DefaultGridSize
	}
	return Grid{Size: size}
}

// Snap rounds v to the nearest grid line. Exact halves round towards +Inf,
// so -15 snaps to -10 and 15 snaps to 20.
func (g Grid) Snap(v float64) float64 {
	return math.Floor(v/g.Size+0.5) * g.Size
}

// SnapXZ snaps the horizontal components of p and leaves Y untouched.
func (g Grid) SnapXZ(p geometry.Vector3) geometry.Vector3 {
	return geometry.Vector3{X: g.Snap(p.X), Y: p.Y, Z: g.Snap(p.Z)}
}
