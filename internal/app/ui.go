package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostack/internal/scene"
	"github.com/philipparndt/gostack/version"
)

// drawUI draws the HUD on top of the 3D view
func (app *App) drawUI() {
	x := int32(10)
	y := int32(10)
	lineHeight := int32(20)

	s := app.Scene.session
	layout := s.Layout()
	rl.DrawText(fmt.Sprintf("gostack %s - %s", version.GetVersion(), layout.Variant), x, y, 16, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("Shapes: %d   Grid: %.0f", len(s.Scene().Shapes), s.Scene().Grid.Size), x, y, 16, rl.White)
	y += lineHeight * 2

	if last := s.Controller().LastSelected(); last != nil {
		label := last.Label(s.Scene().Index(last))
		rl.DrawText(fmt.Sprintf("Selected: %s", label), x, y, 16, rl.Yellow)
		y += lineHeight
		p := last.Position
		rl.DrawText(fmt.Sprintf("  Position: (%.0f, %.0f, %.0f)", p.X, p.Y, p.Z), x, y, 16, rl.White)
		y += lineHeight
		s := last.Size
		rl.DrawText(fmt.Sprintf("  Size: %.0f x %.0f x %.0f", s.X, s.Y, s.Z), x, y, 16, rl.White)
		y += lineHeight
		if s.Controller().Dragging() {
			rl.DrawText("  dragging", x, y, 16, rl.Green)
			y += lineHeight
		}
		y += lineHeight
	}

	if app.UI.showHelp {
		rl.DrawText("Controls:", x, y, 16, rl.Yellow)
		y += lineHeight
		for _, line := range helpLines(layout.Variant) {
			rl.DrawText(line, x, y, 14, rl.LightGray)
			y += lineHeight
		}
	}

	screenHeight := int32(rl.GetScreenHeight())
	if msg := app.LayoutWatch.lastError; msg != "" {
		rl.DrawText("Layout reload failed: "+msg, x, screenHeight-60, 16, rl.Red)
	}

	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), x, screenHeight-30, 20, rl.Lime)
}

func helpLines(v scene.Variant) []string {
	if v == scene.VariantOrbit {
		return []string{
			"  Left Drag on shape: Move shape",
			"  Left Drag: Pan view",
			"  Right Drag: Rotate view",
			"  Arrows: Nudge selection (camera relative)",
			"  Home: Reset view",
			"  H: Toggle help",
		}
	}
	return []string{
		"  Drag shape: Move shape",
		"  Arrows: Nudge selection",
		"  H: Toggle help",
	}
}
