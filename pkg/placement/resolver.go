// Package placement decides where a box comes to rest when it is moved on
// the ground grid: snapped to the grid horizontally and stacked on top of the
// tallest box whose footprint it overlaps.
package placement

import "github.com/philipparndt/gostack/pkg/geometry"

// RestingHeight returns the center height for a box with half-extents half whose
// footprint is centered at (x, z). Without any overlapping box it rests on the
// floor (y = half.Y); otherwise it sits on the highest top face among the
// boxes in others that overlap it on both x and z.
func RestingHeight(half geometry.Vector3, x, z float64, others []geometry.Box) float64 {
	candidate := geometry.Box{Center: geometry.Vector3{X: x, Z: z}, Half: half}

	height := half.Y
	for _, other := range others {
		if !candidate.OverlapsXZ(other) {
			continue
		}
		if h := other.Top() + half.Y; h > height {
			height = h
		}
	}
	return height
}

// Resolve snaps the horizontal part of target to the grid and computes the
// resting height there. The vertical component of target is ignored.
// others must not contain the box being placed.
func Resolve(grid Grid, half, target geometry.Vector3, others []geometry.Box) geometry.Vector3 {
	x := grid.Snap(target.X)
	z := grid.Snap(target.Z)
	return geometry.Vector3{X: x, Y: RestingHeight(half, x, z, others), Z: z}
}
