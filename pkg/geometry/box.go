package geometry

import "math"

// Box is an axis-aligned box described by its center and half-extents.
type Box struct {
	Center Vector3
	Half   Vector3
}

// NewBox creates a box from a center point and full size dimensions
func NewBox(center, size Vector3) Box {
	return Box{Center: center, Half: size.Mul(0.5)}
}

// Min returns the minimum corner
func (b Box) Min() Vector3 {
	return b.Center.Sub(b.Half)
}

// Max returns the maximum corner
func (b Box) Max() Vector3 {
	return b.Center.Add(b.Half)
}

// Size returns the full dimensions of the box
func (b Box) Size() Vector3 {
	return b.Half.Mul(2)
}

// Top returns the height of the upper face
func (b Box) Top() float64 {
	return b.Center.Y + b.Half.Y
}

// Bottom returns the height of the lower face
func (b Box) Bottom() float64 {
	return b.Center.Y - b.Half.Y
}

// OverlapsXZ reports whether the footprints of a and b overlap on the ground plane.
// Boxes whose faces only touch do not overlap.
func (b Box) OverlapsXZ(other Box) bool {
	dx := math.Abs(b.Center.X - other.Center.X)
	dz := math.Abs(b.Center.Z - other.Center.Z)
	return dx < b.Half.X+other.Half.X && dz < b.Half.Z+other.Half.Z
}

// Corners returns the eight corners, bottom face first (counter-clockwise seen from above),
// then the top face in the same order.
func (b Box) Corners() [8]Vector3 {
	lo, hi := b.Min(), b.Max()
	return [8]Vector3{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
	}
}

// boxEdges lists the twelve edges as pairs of corner indices
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Edges returns the twelve edges as pairs of end points
func (b Box) Edges() [12][2]Vector3 {
	corners := b.Corners()
	var edges [12][2]Vector3
	for i, e := range boxEdges {
		edges[i] = [2]Vector3{corners[e[0]], corners[e[1]]}
	}
	return edges
}

// Grow returns the box enlarged by d on every side
func (b Box) Grow(d float64) Box {
	return Box{Center: b.Center, Half: b.Half.Add(Vector3{X: d, Y: d, Z: d})}
}

// Face is one side of a box. Corners are wound counter-clockwise when seen from
// outside, so (c1-c0)x(c2-c0) points along Normal.
type Face struct {
	Normal  Vector3
	Corners [4]Vector3
}

var faceLayout = [6]struct {
	normal  Vector3
	corners [4]int
}{
	{Vector3{Y: -1}, [4]int{0, 3, 2, 1}},
	{Vector3{Y: 1}, [4]int{4, 5, 6, 7}},
	{Vector3{X: -1}, [4]int{0, 1, 5, 4}},
	{Vector3{X: 1}, [4]int{3, 7, 6, 2}},
	{Vector3{Z: -1}, [4]int{0, 4, 7, 3}},
	{Vector3{Z: 1}, [4]int{1, 2, 6, 5}},
}

// Faces returns the six sides of the box
func (b Box) Faces() [6]Face {
	corners := b.Corners()
	var faces [6]Face
	for i, layout := range faceLayout {
		f := Face{Normal: layout.normal}
		for j, idx := range layout.corners {
			f.Corners[j] = corners[idx]
		}
		edge1 := f.Corners[1].Sub(f.Corners[0])
		edge2 := f.Corners[2].Sub(f.Corners[0])
		if edge1.Cross(edge2).Dot(f.Normal) < 0 {
			f.Corners[1], f.Corners[3] = f.Corners[3], f.Corners[1]
		}
		faces[i] = f
	}
	return faces
}
