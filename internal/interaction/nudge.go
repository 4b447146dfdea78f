package interaction

import "github.com/philipparndt/gostack/pkg/geometry"

// Nudger turns a directional key into a horizontal displacement of length step.
type Nudger interface {
	Step(key Key, step float64) (geometry.Vector3, bool)
}

// AxisNudger moves along the fixed world axes: left/right on x, up/down on z
// with up pointing away from the default camera.
type AxisNudger struct{}

// Step implements Nudger
func (AxisNudger) Step(key Key, step float64) (geometry.Vector3, bool) {
	switch key {
	case KeyLeft:
		return geometry.Vector3{X: -step}, true
	case KeyRight:
		return geometry.Vector3{X: step}, true
	case KeyUp:
		return geometry.Vector3{Z: -step}, true
	case KeyDown:
		return geometry.Vector3{Z: step}, true
	}
	return geometry.Vector3{}, false
}

// View reports where the camera is looking.
type View interface {
	// Forward is the viewing direction in world space.
	Forward() geometry.Vector3
	// CameraUp is the camera's up vector.
	CameraUp() geometry.Vector3
}

// CameraNudger moves relative to the camera, projected onto the ground plane.
// Up goes along the flattened view direction and Left along up x forward.
type CameraNudger struct {
	View View
}

// Step implements Nudger
func (n CameraNudger) Step(key Key, step float64) (geometry.Vector3, bool) {
	forward := n.View.Forward().Flatten().Normalize()
	left := n.View.CameraUp().Cross(forward).Normalize()

	switch key {
	case KeyUp:
		return forward.Mul(step), true
	case KeyDown:
		return forward.Mul(-step), true
	case KeyLeft:
		return left.Mul(step), true
	case KeyRight:
		return left.Mul(-step), true
	}
	return geometry.Vector3{}, false
}
