// Package viewer renders scenes in software: a pinhole camera, a depth-buffered
// triangle rasterizer and a painter for floor, pad and shapes.
package viewer

import (
	"math"

	"github.com/philipparndt/gostack/pkg/geometry"
)

// Camera is a perspective pinhole camera in world units
type Camera struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	FOV      float64 // vertical field of view in radians
}

// NewCamera creates a camera looking from position at target.
// fovy is the vertical field of view in degrees.
func NewCamera(position, target, up geometry.Vector3, fovy float64) *Camera {
	return &Camera{
		Position: position,
		Target:   target,
		Up:       up,
		FOV:      fovy * math.Pi / 180,
	}
}

// basis returns the camera's forward, right and up axes
func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project projects a 3D point to screen coordinates. The third value is the
// depth along the viewing direction; points at or behind the camera have depth <= 0.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	// Transform to camera space
	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)
	if z <= 0 {
		return 0, 0, z
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// Unproject converts screen coordinates into a world-space picking ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) geometry.Ray {
	// Normalized device coordinates (-1 to 1)
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.basis()
	direction := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))

	return geometry.Ray{Origin: c.Position, Direction: direction.Normalize()}
}
