package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostack/internal/orbit"
	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/pkg/geometry"
)

// renderScale converts world units to render units. raylib clips everything
// beyond 1000 render units, while the scene spans several thousand world units.
const renderScale geometry.Scale = 0.01

func toRender(v geometry.Vector3) rl.Vector3 {
	r := renderScale.ToRender(v)
	return rl.NewVector3(float32(r.X), float32(r.Y), float32(r.Z))
}

func fromRL(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(v.Y), float64(v.Z))
}

// worldRay converts a raylib picking ray into world space
func worldRay(ray rl.Ray) geometry.Ray {
	return renderScale.WorldRay(fromRL(ray.Position), fromRL(ray.Direction))
}

// newCameraControls sets up the controls for the layout's variant.
// The fixed variant keeps the pose and ignores camera input.
func newCameraControls(layout scene.Layout) *orbit.Controls {
	controls := orbit.New(layout.Camera.Position, layout.Camera.Target, layout.Camera.Fovy)
	controls.EnableZoom = false
	if layout.Variant != scene.VariantOrbit {
		controls.Enabled = false
		controls.EnableDamping = false
	}
	return controls
}

// resetCamera moves the camera back to the layout's start pose
func (app *App) resetCamera() {
	app.Camera.controls = newCameraControls(app.Scene.session.Layout())
	app.Camera.orbiting = false
	app.Camera.panning = false
	app.updateCamera()
}

// updateCamera advances damped motion and copies the pose into the raylib camera
func (app *App) updateCamera() {
	controls := app.Camera.controls
	controls.Update()

	app.Camera.camera = rl.Camera3D{
		Position:   toRender(controls.Position),
		Target:     toRender(controls.Target),
		Up:         rl.NewVector3(float32(controls.Up.X), float32(controls.Up.Y), float32(controls.Up.Z)),
		Fovy:       float32(controls.Fovy),
		Projection: rl.CameraPerspective,
	}
}

// doOrbit rotates the camera by a mouse delta
func (app *App) doOrbit(delta rl.Vector2) {
	app.Camera.controls.Rotate(float64(delta.X), float64(delta.Y), float64(rl.GetScreenHeight()))
}

// doPan pans the camera by a mouse delta
func (app *App) doPan(delta rl.Vector2) {
	app.Camera.controls.Pan(float64(delta.X), float64(delta.Y), float64(rl.GetScreenHeight()))
}

// cameraView exposes the current camera orientation to the keyboard nudger.
// It reads through app so it stays valid when the controls are replaced.
type cameraView struct {
	app *App
}

func (v cameraView) Forward() geometry.Vector3 {
	return v.app.Camera.controls.Forward()
}

func (v cameraView) CameraUp() geometry.Vector3 {
	return v.app.Camera.controls.CameraUp()
}
