package gui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gostack/internal/interaction"
	"github.com/philipparndt/gostack/internal/orbit"
	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/internal/session"
	"github.com/philipparndt/gostack/pkg/geometry"
	"github.com/philipparndt/gostack/pkg/viewer"
)

var pointerButtons = map[desktop.MouseButton]interaction.Button{
	desktop.MouseButtonPrimary:   interaction.ButtonLeft,
	desktop.MouseButtonSecondary: interaction.ButtonRight,
	desktop.MouseButtonTertiary:  interaction.ButtonMiddle,
}

var nudgeKeys = map[fyne.KeyName]interaction.Key{
	fyne.KeyUp:    interaction.KeyUp,
	fyne.KeyDown:  interaction.KeyDown,
	fyne.KeyLeft:  interaction.KeyLeft,
	fyne.KeyRight: interaction.KeyRight,
}

// SceneView renders a session's scene in software and feeds pointer and
// keyboard input into its controller. All methods run on the fyne main goroutine.
type SceneView struct {
	widget.BaseWidget
	session  *session.Session
	controls *orbit.Controls
	image    *canvas.Image
	width    float64
	height   float64
	lastPos  fyne.Position
	panning  bool
	orbiting bool
	hovered  *scene.Shape
	onChange func()
}

// NewSceneView creates an empty view. The session is attached with SetSession
// because it takes the view's camera (see View) for camera-relative nudges.
func NewSceneView() *SceneView {
	v := &SceneView{
		image: canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1))),
	}
	v.image.FillMode = canvas.ImageFillStretch
	v.ResetCamera()
	v.ExtendBaseWidget(v)
	return v
}

// SetSession attaches the session whose scene is shown
func (v *SceneView) SetSession(s *session.Session) {
	v.session = s
	v.ResetCamera()
}

// SetOnChange sets the callback run after the scene or selection changed
func (v *SceneView) SetOnChange(callback func()) {
	v.onChange = callback
}

// View adapts the view's camera to interaction.View
func (v *SceneView) View() interaction.View {
	return cameraView{v}
}

// Hovered returns the shape under the pointer, or nil
func (v *SceneView) Hovered() *scene.Shape {
	return v.hovered
}

// ResetCamera moves the camera back to the layout's start pose.
// The fixed variant keeps the pose and ignores camera input.
func (v *SceneView) ResetCamera() {
	if v.session == nil {
		v.controls = orbit.New(geometry.NewVector3(0, 600, 800), geometry.Vector3{}, 75)
		return
	}
	pose := v.session.Layout().Camera
	v.controls = orbit.New(pose.Position, pose.Target, pose.Fovy)
	v.controls.EnableZoom = false
	if v.session.Variant() != scene.VariantOrbit {
		v.controls.Enabled = false
		v.controls.EnableDamping = false
	}
	v.panning = false
	v.orbiting = false
	v.Render()
}

// Reload re-reads the session's layout file and refreshes the view
func (v *SceneView) Reload() error {
	change, err := v.session.Reload()
	if err != nil {
		return err
	}
	v.hovered = nil
	if change.Variant || change.Camera {
		v.ResetCamera()
	}
	v.changed()
	return nil
}

// Tick advances damped camera motion. Call it once per frame.
func (v *SceneView) Tick() {
	if v.controls.Update() {
		v.Render()
	}
}

func (v *SceneView) camera() *viewer.Camera {
	c := v.controls
	return viewer.NewCamera(c.Position, c.Target, c.Up, c.Fovy)
}

func (v *SceneView) ray(pos fyne.Position) geometry.Ray {
	return v.camera().Unproject(float64(pos.X), float64(pos.Y), v.width, v.height)
}

// Render paints the scene at the current widget size
func (v *SceneView) Render() {
	if v.session == nil || v.width < 1 || v.height < 1 {
		return
	}

	layout := v.session.Layout()
	bg := layout.Background
	frame := viewer.NewFrame(int(v.width), int(v.height), color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255})
	viewer.Paint(frame, v.camera(), viewer.Snapshot{
		Layout:   layout,
		Shapes:   v.session.Scene().Shapes,
		Selected: v.session.Controller().LastSelected(),
		Hovered:  v.hovered,
	})

	v.image.Image = frame.Image
	v.image.Refresh()
}

func (v *SceneView) changed() {
	v.Render()
	if v.onChange != nil {
		v.onChange()
	}
}

// MouseDown picks a shape, or starts panning or orbiting over empty space in the orbit variant
func (v *SceneView) MouseDown(event *desktop.MouseEvent) {
	button, ok := pointerButtons[event.Button]
	if !ok {
		return
	}
	v.lastPos = event.Position

	ctrl := v.session.Controller()
	ctrl.PointerDown(v.ray(event.Position), button)

	orbitVariant := v.session.Variant() == scene.VariantOrbit
	if !ctrl.Dragging() && orbitVariant {
		switch button {
		case interaction.ButtonLeft:
			v.panning = true
		case interaction.ButtonRight:
			v.orbiting = true
		}
	}
	// The camera ignores input while a shape is being dragged.
	v.controls.Enabled = orbitVariant && !ctrl.Dragging()
	v.changed()
}

// MouseUp ends a drag, pan or orbit
func (v *SceneView) MouseUp(event *desktop.MouseEvent) {
	button, ok := pointerButtons[event.Button]
	if !ok {
		return
	}
	v.session.Controller().PointerUp()
	switch button {
	case interaction.ButtonLeft:
		v.panning = false
	case interaction.ButtonRight:
		v.orbiting = false
	}
	v.controls.Enabled = v.session.Variant() == scene.VariantOrbit
	v.changed()
}

// MouseIn is called when the pointer enters the view
func (v *SceneView) MouseIn(event *desktop.MouseEvent) {
	v.lastPos = event.Position
}

// MouseMoved forwards pointer movement
func (v *SceneView) MouseMoved(event *desktop.MouseEvent) {
	v.pointerMoved(event.Position)
}

// MouseOut clears the hover highlight
func (v *SceneView) MouseOut() {
	if v.hovered != nil {
		v.hovered = nil
		v.Render()
	}
}

// Dragged forwards pointer movement while a button is held
func (v *SceneView) Dragged(event *fyne.DragEvent) {
	v.pointerMoved(event.Position)
}

// DragEnd ends a drag, pan or orbit
func (v *SceneView) DragEnd() {
	v.session.Controller().PointerUp()
	v.panning = false
	v.orbiting = false
	v.controls.Enabled = v.session.Variant() == scene.VariantOrbit
	v.changed()
}

func (v *SceneView) pointerMoved(pos fyne.Position) {
	if pos == v.lastPos {
		return
	}
	dx := float64(pos.X - v.lastPos.X)
	dy := float64(pos.Y - v.lastPos.Y)
	v.lastPos = pos

	ctrl := v.session.Controller()
	ray := v.ray(pos)
	if ctrl.Dragging() {
		ctrl.PointerMove(ray)
		v.changed()
		return
	}

	if v.panning {
		v.controls.Pan(dx, dy, v.height)
	}
	if v.orbiting {
		v.controls.Rotate(dx, dy, v.height)
	}

	hovered, _ := v.session.Scene().Pick(ray)
	if hovered != v.hovered {
		v.hovered = hovered
		v.Render()
	}
}

// TypedKey nudges the last selected shape with the arrow keys; Home resets the camera
func (v *SceneView) TypedKey(event *fyne.KeyEvent) {
	if event.Name == fyne.KeyHome {
		v.ResetCamera()
		return
	}
	key, ok := nudgeKeys[event.Name]
	if !ok {
		return
	}
	v.session.Controller().KeyDown(key)
	v.changed()
}

// CreateRenderer creates the renderer for the widget
func (v *SceneView) CreateRenderer() fyne.WidgetRenderer {
	return &sceneViewRenderer{view: v}
}

// cameraView reads through the view so it stays valid when the controls are replaced
type cameraView struct {
	view *SceneView
}

func (c cameraView) Forward() geometry.Vector3 {
	return c.view.controls.Forward()
}

func (c cameraView) CameraUp() geometry.Vector3 {
	return c.view.controls.CameraUp()
}

// sceneViewRenderer implements fyne.WidgetRenderer
type sceneViewRenderer struct {
	view *SceneView
}

func (r *sceneViewRenderer) Layout(size fyne.Size) {
	r.view.image.Resize(size)
	r.view.width = float64(size.Width)
	r.view.height = float64(size.Height)
	r.view.Render()
}

func (r *sceneViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *sceneViewRenderer) Refresh() {
	r.view.image.Refresh()
}

func (r *sceneViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.image}
}

func (r *sceneViewRenderer) Destroy() {}
