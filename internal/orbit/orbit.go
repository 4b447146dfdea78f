// Package orbit implements damped orbit and pan camera controls around a target point.
// Rotation and panning are fed from pointer deltas in pixels and applied gradually
// on every Update, so the camera keeps gliding briefly after the pointer stops.
package orbit

import (
	"math"

	"github.com/philipparndt/gostack/pkg/geometry"
)

const (
	// DefaultDampingFactor is the share of the pending motion applied per frame.
	DefaultDampingFactor = 0.05
	polarEpsilon         = 1e-6
	settleThreshold      = 1e-9
)

// Controls holds the camera pose and the motion still to be applied.
type Controls struct {
	Position geometry.Vector3
	Target   geometry.Vector3
	Up       geometry.Vector3
	Fovy     float64 // vertical field of view in degrees

	Enabled       bool
	EnableRotate  bool
	EnablePan     bool
	EnableZoom    bool
	EnableDamping bool
	DampingFactor float64
	RotateSpeed   float64
	PanSpeed      float64
	MinDistance   float64
	MaxDistance   float64
	MinPolarAngle float64
	MaxPolarAngle float64

	deltaTheta float64
	deltaPhi   float64
	scale      float64
	panOffset  geometry.Vector3
}

// New returns controls looking from position at target with damping enabled and zoom disabled.
func New(position, target geometry.Vector3, fovy float64) *Controls {
	return &Controls{
		Position:      position,
		Target:        target,
		Up:            geometry.Up,
		Fovy:          fovy,
		Enabled:       true,
		EnableRotate:  true,
		EnablePan:     true,
		EnableDamping: true,
		DampingFactor: DefaultDampingFactor,
		RotateSpeed:   1,
		PanSpeed:      1,
		MinDistance:   0,
		MaxDistance:   math.Inf(1),
		MinPolarAngle: 0,
		MaxPolarAngle: math.Pi,
		scale:         1,
	}
}

// Forward returns the unit viewing direction.
func (c *Controls) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}

// CameraUp returns the up vector used to orient the camera.
func (c *Controls) CameraUp() geometry.Vector3 {
	return c.Up
}

// Right returns the camera's screen-right direction in world space.
func (c *Controls) Right() geometry.Vector3 {
	return c.Forward().Cross(c.Up).Normalize()
}

// ScreenUp returns the camera's screen-up direction in world space.
func (c *Controls) ScreenUp() geometry.Vector3 {
	return c.Right().Cross(c.Forward()).Normalize()
}

// Distance returns the distance from the camera to the target.
func (c *Controls) Distance() float64 {
	return c.Position.Distance(c.Target)
}

// Rotate queues an orbit by a pointer movement of (dx, dy) pixels in a viewport
// viewportHeight pixels tall. A drag over the full height turns a full circle.
func (c *Controls) Rotate(dx, dy, viewportHeight float64) {
	if !c.Enabled || !c.EnableRotate || viewportHeight <= 0 {
		return
	}
	c.deltaTheta -= 2 * math.Pi * dx / viewportHeight * c.RotateSpeed
	c.deltaPhi -= 2 * math.Pi * dy / viewportHeight * c.RotateSpeed
}

// Pan queues a translation of camera and target so that the point under the
// pointer follows it across the screen.
func (c *Controls) Pan(dx, dy, viewportHeight float64) {
	if !c.Enabled || !c.EnablePan || viewportHeight <= 0 {
		return
	}

	// Half the visible height at the target's depth.
	halfHeight := c.Distance() * math.Tan(c.Fovy/2*math.Pi/180)
	left := c.Right().Mul(-2 * dx * halfHeight / viewportHeight * c.PanSpeed)
	up := c.ScreenUp().Mul(2 * dy * halfHeight / viewportHeight * c.PanSpeed)
	c.panOffset = c.panOffset.Add(left).Add(up)
}

// Zoom scales the distance to the target; wheel > 0 moves closer.
func (c *Controls) Zoom(wheel float64) {
	if !c.Enabled || !c.EnableZoom || wheel == 0 {
		return
	}
	c.scale *= math.Pow(0.95, wheel)
}

// Moving reports whether queued motion is still being applied.
func (c *Controls) Moving() bool {
	return math.Abs(c.deltaTheta) > settleThreshold ||
		math.Abs(c.deltaPhi) > settleThreshold ||
		c.panOffset.Length() > settleThreshold ||
		c.scale != 1
}

// Update applies queued motion and returns true when the camera moved.
// Call it once per frame.
func (c *Controls) Update() bool {
	offset := c.Position.Sub(c.Target)
	radius := offset.Length()
	if radius == 0 {
		return false
	}

	theta := math.Atan2(offset.X, offset.Z)
	phi := math.Acos(math.Max(-1, math.Min(1, offset.Y/radius)))

	factor := 1.0
	if c.EnableDamping {
		factor = c.DampingFactor
	}

	theta += c.deltaTheta * factor
	phi += c.deltaPhi * factor
	phi = math.Max(c.MinPolarAngle, math.Min(c.MaxPolarAngle, phi))
	phi = math.Max(polarEpsilon, math.Min(math.Pi-polarEpsilon, phi))

	radius = math.Max(c.MinDistance, math.Min(c.MaxDistance, radius*c.scale))

	target := c.Target.Add(c.panOffset.Mul(factor))
	sinPhi := math.Sin(phi)
	position := target.Add(geometry.Vector3{
		X: radius * sinPhi * math.Sin(theta),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Cos(theta),
	})

	moved := position.Distance(c.Position) > settleThreshold || target.Distance(c.Target) > settleThreshold
	c.Position = position
	c.Target = target

	if c.EnableDamping {
		c.deltaTheta *= 1 - c.DampingFactor
		c.deltaPhi *= 1 - c.DampingFactor
		c.panOffset = c.panOffset.Mul(1 - c.DampingFactor)
	} else {
		c.deltaTheta = 0
		c.deltaPhi = 0
		c.panOffset = geometry.Vector3{}
	}
	c.scale = 1

	return moved
}

// Stop drops any queued motion.
func (c *Controls) Stop() {
	c.deltaTheta = 0
	c.deltaPhi = 0
	c.panOffset = geometry.Vector3{}
	c.scale = 1
}
