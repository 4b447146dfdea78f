package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostack/internal/interaction"
	"github.com/philipparndt/gostack/internal/scene"
)

var pointerButtons = []struct {
	raylib rl.MouseButton
	button interaction.Button
}{
	{rl.MouseLeftButton, interaction.ButtonLeft},
	{rl.MouseRightButton, interaction.ButtonRight},
	{rl.MouseMiddleButton, interaction.ButtonMiddle},
}

var nudgeKeys = []struct {
	raylib int32
	key    interaction.Key
}{
	{rl.KeyUp, interaction.KeyUp},
	{rl.KeyDown, interaction.KeyDown},
	{rl.KeyLeft, interaction.KeyLeft},
	{rl.KeyRight, interaction.KeyRight},
}

// handleInput polls raylib once per frame and forwards the events to the controller
func (app *App) handleInput() {
	ctrl := app.Scene.session.Controller()
	orbitVariant := app.Scene.session.Variant() == scene.VariantOrbit

	mousePos := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	ray := worldRay(rl.GetMouseRay(mousePos, app.Camera.camera))
	app.Interaction.lastMousePos = mousePos

	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCamera()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}

	for _, b := range pointerButtons {
		if !rl.IsMouseButtonPressed(b.raylib) {
			continue
		}
		ctrl.PointerDown(ray, b.button)
		if ctrl.Dragging() || !orbitVariant {
			continue
		}
		switch b.button {
		case interaction.ButtonLeft:
			app.Camera.panning = true
		case interaction.ButtonRight:
			app.Camera.orbiting = true
		}
	}

	// The camera ignores input while a shape is being dragged.
	app.Camera.controls.Enabled = orbitVariant && !ctrl.Dragging()

	if delta.X != 0 || delta.Y != 0 {
		ctrl.PointerMove(ray)
		if app.Camera.panning {
			app.doPan(delta)
		}
		if app.Camera.orbiting {
			app.doOrbit(delta)
		}
	}

	for _, b := range pointerButtons {
		if !rl.IsMouseButtonReleased(b.raylib) {
			continue
		}
		ctrl.PointerUp()
		switch b.button {
		case interaction.ButtonLeft:
			app.Camera.panning = false
		case interaction.ButtonRight:
			app.Camera.orbiting = false
		}
	}

	for _, k := range nudgeKeys {
		if rl.IsKeyPressed(k.raylib) || rl.IsKeyPressedRepeat(k.raylib) {
			ctrl.KeyDown(k.key)
		}
	}

	app.Interaction.hovered = nil
	if !ctrl.Dragging() {
		if shape, ok := app.Scene.session.Scene().Pick(ray); ok {
			app.Interaction.hovered = shape
		}
	}
}
