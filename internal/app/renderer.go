package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/pkg/geometry"
)

// padLift keeps the pad above the floor to avoid z-fighting
const padLift = 0.1

func rlColor(c scene.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

// drawBox draws a lit box face by face. The light is baked per face.
func drawBox(b geometry.Box, c scene.Color, light scene.Light) {
	for _, f := range b.Faces() {
		color := rlColor(light.Shade(c, f.Normal))
		v0 := toRender(f.Corners[0])
		v1 := toRender(f.Corners[1])
		v2 := toRender(f.Corners[2])
		v3 := toRender(f.Corners[3])
		rl.DrawTriangle3D(v0, v1, v2, color)
		rl.DrawTriangle3D(v0, v2, v3, color)
	}
}

// drawScene renders floor, pad and shapes. Must be called between BeginMode3D and EndMode3D.
func (app *App) drawScene() {
	layout := app.Scene.session.Layout()

	drawBox(layout.Floor.Bounds(), layout.Floor.Color, layout.Light)

	if layout.Pad != nil {
		half := layout.Pad.Size / 2
		pad := geometry.Box{
			Center: geometry.Vector3{Y: padLift / 2},
			Half:   geometry.Vector3{X: half, Y: padLift / 2, Z: half},
		}
		drawBox(pad, layout.Pad.Color, layout.Light)
	}

	for _, shape := range app.Scene.session.Scene().Shapes {
		drawBox(shape.Bounds(), shape.Color, layout.Light)
	}

	if hovered := app.Interaction.hovered; hovered != nil {
		drawWireframe(hovered.Bounds(), rl.Fade(rl.White, 0.5))
	}
	if last := app.Scene.session.Controller().LastSelected(); last != nil {
		drawWireframe(last.Bounds(), rl.Yellow)
	}
}
